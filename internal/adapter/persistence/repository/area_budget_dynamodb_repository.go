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

type areaBudgetItem struct {
	Area        string  `dynamodbav:"area"`
	TotalBudget float64 `dynamodbav:"total_budget"`
	UsedBudget  float64 `dynamodbav:"used_budget"`
}

// AreaBudgetDynamoRepository persists AreaBudget entities in DynamoDB.
//
// Table requirements:
//   - PK: area (string)
//
// used_budget is incremented by BudgetDynamoRepository.ApproveAndCharge inside
// the approval transaction.
type AreaBudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAreaBudgetRepository = (*AreaBudgetDynamoRepository)(nil)

func NewAreaBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *AreaBudgetDynamoRepository {
	return &AreaBudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AreaBudgetDynamoRepository) Get(ctx context.Context, area string) (entities.AreaBudget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"area": &types.AttributeValueMemberS{Value: area},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AreaBudget{}, err
	}
	if len(out.Item) == 0 {
		return entities.AreaBudget{}, nil
	}

	var it areaBudgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AreaBudget{}, err
	}
	return entities.AreaBudget(it), nil
}

func (r *AreaBudgetDynamoRepository) List(ctx context.Context) ([]entities.AreaBudget, error) {
	areas := make([]entities.AreaBudget, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it areaBudgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			areas = append(areas, entities.AreaBudget(it))
		}
	}
	return areas, nil
}

func (r *AreaBudgetDynamoRepository) SetTotalBudget(ctx context.Context, area string, total float64) (entities.AreaBudget, error) {
	return r.update(ctx, area,
		"SET #total = :total, #used = if_not_exists(#used, :zero)",
		map[string]types.AttributeValue{
			":total": &types.AttributeValueMemberN{Value: floatToString(total)},
			":zero":  &types.AttributeValueMemberN{Value: "0"},
		},
	)
}

func (r *AreaBudgetDynamoRepository) update(ctx context.Context, area, updateExpr string, values map[string]types.AttributeValue) (entities.AreaBudget, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"area": &types.AttributeValueMemberS{Value: area},
		},
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#total": "total_budget",
			"#used":  "used_budget",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.AreaBudget{}, err
	}
	var it areaBudgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AreaBudget{}, err
	}
	return entities.AreaBudget(it), nil
}
