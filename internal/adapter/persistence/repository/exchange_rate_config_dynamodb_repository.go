package repository

import (
	"context"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type exchangeRateConfigItem struct {
	CurrencyCode string `dynamodbav:"currency_code"`
	APIURL       string `dynamodbav:"api_url"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ExchangeRateConfigDynamoRepository persists live rate sources in DynamoDB.
//
// Table requirements:
//   - PK: currency_code (string)
type ExchangeRateConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExchangeRateConfigRepository = (*ExchangeRateConfigDynamoRepository)(nil)

func NewExchangeRateConfigDynamoRepository(ddb *dynamodb.Client, tableName string) *ExchangeRateConfigDynamoRepository {
	return &ExchangeRateConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ExchangeRateConfigDynamoRepository) List(ctx context.Context) ([]entities.ExchangeRateConfig, error) {
	configs := make([]entities.ExchangeRateConfig, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it exchangeRateConfigItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			configs = append(configs, entities.ExchangeRateConfig{
				Currency:  entities.Currency(it.CurrencyCode),
				APIURL:    it.APIURL,
				UpdatedAt: parseTime(it.UpdatedAt),
			})
		}
	}
	return configs, nil
}

// Save overwrites the source of the currency.
func (r *ExchangeRateConfigDynamoRepository) Save(ctx context.Context, cfg entities.ExchangeRateConfig) (entities.ExchangeRateConfig, error) {
	av, err := attributevalue.MarshalMap(exchangeRateConfigItem{
		CurrencyCode: string(cfg.Currency),
		APIURL:       cfg.APIURL,
		UpdatedAt:    formatTime(cfg.UpdatedAt),
	})
	if err != nil {
		return entities.ExchangeRateConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ExchangeRateConfig{}, err
	}
	return cfg, nil
}
