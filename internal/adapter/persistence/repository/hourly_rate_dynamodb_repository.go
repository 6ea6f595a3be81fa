package repository

import (
	"context"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultHourlyRatesTableName = "hourly_rates"

type hourlyRateItem struct {
	ID        string `dynamodbav:"id"`
	RateValue int64  `dynamodbav:"rate_value"`
	VATValue  string `dynamodbav:"vat_value"` // decimal percentage, e.g. "19.5"
}

// HourlyRateDynamoRepository reads hourly-rate reference data from
// DynamoDB. The engine never writes this table.
//
// Table requirements:
//   - PK: id (string)

type HourlyRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHourlyRateRepository = (*HourlyRateDynamoRepository)(nil)

func NewHourlyRateDynamoRepository(ddb *dynamodb.Client) *HourlyRateDynamoRepository {
	return &HourlyRateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOURLY_RATES_TABLE", defaultHourlyRatesTableName),
	}
}

func (r *HourlyRateDynamoRepository) GetByID(ctx context.Context, id string) (entities.HourlyRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.HourlyRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.HourlyRate{}, nil
	}

	var it hourlyRateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HourlyRate{}, err
	}

	vat, err := decimal.NewFromString(it.VATValue)
	if err != nil {
		return entities.HourlyRate{}, err
	}
	return entities.HourlyRate{
		ID:        it.ID,
		RateValue: it.RateValue,
		VATValue:  vat,
	}, nil
}
