package repository

import (
	"context"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userProfileItem struct {
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	FullName  string `dynamodbav:"full_name,omitempty"`
	Role      string `dynamodbav:"role"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists user profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserProfileItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.UserProfile, error) {
	users := make([]entities.UserProfile, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it userProfileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserProfileItem(it))
		}
	}
	return users, nil
}

func (r *UserDynamoRepository) Save(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(toUserProfileItem(p))
	if err != nil {
		return entities.UserProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}

func (r *UserDynamoRepository) UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.UserProfile, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #role = :role"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#role": "role",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.UserProfile{}, nil
		}
		return entities.UserProfile{}, err
	}

	var it userProfileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserProfileItem(it), nil
}

func toUserProfileItem(p entities.UserProfile) userProfileItem {
	return userProfileItem{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromUserProfileItem(it userProfileItem) entities.UserProfile {
	return entities.UserProfile{
		ID:        it.ID,
		Email:     it.Email,
		FullName:  it.FullName,
		Role:      entities.UserRole(it.Role),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
