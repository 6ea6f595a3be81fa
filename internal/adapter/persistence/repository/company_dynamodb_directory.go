package repository

import (
	"context"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCompaniesTableName = "companies"

type companyItem struct {
	ID                string      `dynamodbav:"id"`
	Name              string      `dynamodbav:"name"`
	RegisteredAddress addressItem `dynamodbav:"registered_address"`
}

// CompanyDynamoDirectory is the read-only adapter onto the external
// company domain, used only for billing-address snapshots at quote time.
//
// Table requirements:
//   - PK: id (string)

type CompanyDynamoDirectory struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyDirectory = (*CompanyDynamoDirectory)(nil)

func NewCompanyDynamoDirectory(ddb *dynamodb.Client) *CompanyDynamoDirectory {
	return &CompanyDynamoDirectory{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoDirectory) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return entities.Company{
		ID:                it.ID,
		Name:              it.Name,
		RegisteredAddress: fromAddressItem(it.RegisteredAddress),
	}, nil
}
