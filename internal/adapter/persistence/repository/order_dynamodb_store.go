package repository

import (
	"context"
	"errors"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName      = "orders"
	defaultAssigneesTableName   = "order_assignees"
	defaultSubscribersTableName = "order_subscribers"
	defaultQuotesTableName      = "quotes"
	defaultInvoicesTableName    = "invoices"
	defaultPaymentsTableName    = "payments"

	ordersReferenceIndex   = "reference-index"
	ordersPublicTokenIndex = "public_token-index"
	quotesReferenceIndex   = "reference-index"
	invoicesOrderIDIndex   = "order_id-index"
	invoicesNumberIndex    = "invoice_number-index"
	paymentsOrderIDIndex   = "order_id-index"
)

type addressItem struct {
	Line1    string `dynamodbav:"line_1,omitempty"`
	Line2    string `dynamodbav:"line_2,omitempty"`
	Town     string `dynamodbav:"town,omitempty"`
	County   string `dynamodbav:"county,omitempty"`
	Postcode string `dynamodbav:"postcode,omitempty"`
	Country  string `dynamodbav:"country,omitempty"`
}

type orderItem struct {
	ID          string `dynamodbav:"id"`
	Reference   string `dynamodbav:"reference"`
	PublicToken string `dynamodbav:"public_token"`
	Status      string `dynamodbav:"status"`

	CompanyID       string `dynamodbav:"company_id"`
	ContactID       string `dynamodbav:"contact_id"`
	PrimaryMarketID string `dynamodbav:"primary_market_id,omitempty"`

	ServiceTypes []string `dynamodbav:"service_types,omitempty"`
	Description  string   `dynamodbav:"description,omitempty"`
	DeliveryDate string   `dynamodbav:"delivery_date,omitempty"`

	HourlyRateID  string `dynamodbav:"hourly_rate_id,omitempty"`
	DiscountValue int64  `dynamodbav:"discount_value"`
	VATStatus     string `dynamodbav:"vat_status,omitempty"`
	VATNumber     string `dynamodbav:"vat_number,omitempty"`
	VATVerified   *bool  `dynamodbav:"vat_verified,omitempty"`

	NetCost      int64 `dynamodbav:"net_cost"`
	SubtotalCost int64 `dynamodbav:"subtotal_cost"`
	VATCost      int64 `dynamodbav:"vat_cost"`
	TotalCost    int64 `dynamodbav:"total_cost"`

	BillingAddress     addressItem `dynamodbav:"billing_address"`
	BillingContactName string      `dynamodbav:"billing_contact_name,omitempty"`

	CurrentQuoteID   string `dynamodbav:"current_quote_id,omitempty"`
	CurrentInvoiceID string `dynamodbav:"current_invoice_id,omitempty"`

	PaidOn             string `dynamodbav:"paid_on,omitempty"`
	CompletedOn        string `dynamodbav:"completed_on,omitempty"`
	CompletedByID      string `dynamodbav:"completed_by_id,omitempty"`
	CancelledOn        string `dynamodbav:"cancelled_on,omitempty"`
	CancelledByID      string `dynamodbav:"cancelled_by_id,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type assigneeItem struct {
	OrderID       string `dynamodbav:"order_id"`
	AdviserID     string `dynamodbav:"adviser_id"`
	EstimatedTime int64  `dynamodbav:"estimated_time"`
	ActualTime    *int64 `dynamodbav:"actual_time,omitempty"`
	IsLead        bool   `dynamodbav:"is_lead"`
	TeamID        string `dynamodbav:"team_id,omitempty"`
	CountryID     string `dynamodbav:"country_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type subscriberItem struct {
	OrderID   string `dynamodbav:"order_id"`
	AdviserID string `dynamodbav:"adviser_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"order_id"`
	Reference     string `dynamodbav:"reference"`
	Content       string `dynamodbav:"content"`
	ExpiresOn     string `dynamodbav:"expires_on"`
	AcceptedOn    string `dynamodbav:"accepted_on,omitempty"`
	AcceptedByID  string `dynamodbav:"accepted_by_id,omitempty"`
	CancelledOn   string `dynamodbav:"cancelled_on,omitempty"`
	CancelledByID string `dynamodbav:"cancelled_by_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type invoiceItem struct {
	ID                 string      `dynamodbav:"id"`
	OrderID            string      `dynamodbav:"order_id"`
	InvoiceNumber      string      `dynamodbav:"invoice_number"`
	PaymentDueDate     string      `dynamodbav:"payment_due_date"`
	BillingAddress     addressItem `dynamodbav:"billing_address"`
	BillingContactName string      `dynamodbav:"billing_contact_name,omitempty"`
	VATStatus          string      `dynamodbav:"vat_status,omitempty"`
	VATNumber          string      `dynamodbav:"vat_number,omitempty"`
	VATVerified        *bool       `dynamodbav:"vat_verified,omitempty"`
	NetCost            int64       `dynamodbav:"net_cost"`
	SubtotalCost       int64       `dynamodbav:"subtotal_cost"`
	VATCost            int64       `dynamodbav:"vat_cost"`
	TotalCost          int64       `dynamodbav:"total_cost"`
	ContactReference   string      `dynamodbav:"contact_reference,omitempty"`
	CreatedAt          string      `dynamodbav:"created_at"`
}

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	Amount     int64  `dynamodbav:"amount"`
	Method     string `dynamodbav:"method"`
	ReceivedOn string `dynamodbav:"received_on"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// OrderDynamoStore persists the order aggregate in DynamoDB.
//
// Table requirements:
//   - orders: PK id; GSIs reference-index, public_token-index
//   - order_assignees / order_subscribers: PK order_id, SK adviser_id
//   - quotes: PK id; GSI reference-index
//   - invoices: PK id; GSIs order_id-index, invoice_number-index
//   - payments: PK id; GSI order_id-index
//
// Transition commits use TransactWriteItems so the order update and any
// quote/invoice/payment rows land together or not at all; the order put
// carries a status condition so a concurrent transition fails the whole
// transaction instead of interleaving.

type OrderDynamoStore struct {
	ddb              *dynamodb.Client
	ordersTable      string
	assigneesTable   string
	subscribersTable string
	quotesTable      string
	invoicesTable    string
	paymentsTable    string
}

var _ interfaces.IOrderStore = (*OrderDynamoStore)(nil)

func NewOrderDynamoStore(ddb *dynamodb.Client) *OrderDynamoStore {
	return &OrderDynamoStore{
		ddb:              ddb,
		ordersTable:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		assigneesTable:   getenvDefault("ORDER_ASSIGNEES_TABLE", defaultAssigneesTableName),
		subscribersTable: getenvDefault("ORDER_SUBSCRIBERS_TABLE", defaultSubscribersTableName),
		quotesTable:      getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		invoicesTable:    getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		paymentsTable:    getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *OrderDynamoStore) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoStore) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	o := fromOrderItem(it)

	if o.Assignees, err = r.listAssignees(ctx, id); err != nil {
		return entities.Order{}, err
	}
	if o.Subscribers, err = r.listSubscribers(ctx, id); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoStore) GetOrderByPublicToken(ctx context.Context, token string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTable),
		IndexName:              aws.String(ordersPublicTokenIndex),
		KeyConditionExpression: aws.String("public_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	// The GSI projection may be partial; re-read the full aggregate by PK.
	return r.GetOrderByID(ctx, it.ID)
}

func (r *OrderDynamoStore) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoStore) SaveAssignees(ctx context.Context, orderID string, assignees []entities.OrderAssignee, removedAdviserIDs []string) error {
	var writes []types.TransactWriteItem
	for _, a := range assignees {
		av, err := attributevalue.MarshalMap(toAssigneeItem(a))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.assigneesTable), Item: av},
		})
	}
	for _, adviserID := range removedAdviserIDs {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.assigneesTable),
				Key:       orderAdviserKey(orderID, adviserID),
			},
		})
	}
	if len(writes) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *OrderDynamoStore) SaveSubscribers(ctx context.Context, orderID string, subscribers []entities.OrderSubscriber, removedAdviserIDs []string) error {
	var writes []types.TransactWriteItem
	for _, s := range subscribers {
		av, err := attributevalue.MarshalMap(toSubscriberItem(s))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.subscribersTable), Item: av},
		})
	}
	for _, adviserID := range removedAdviserIDs {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.subscribersTable),
				Key:       orderAdviserKey(orderID, adviserID),
			},
		})
	}
	if len(writes) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *OrderDynamoStore) GetQuoteByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.quotesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *OrderDynamoStore) GetInvoiceByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.invoicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *OrderDynamoStore) ListInvoicesByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.invoicesTable),
		IndexName:              aws.String(invoicesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *OrderDynamoStore) ListPaymentsByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.paymentsTable),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *OrderDynamoStore) CommitTransition(ctx context.Context, w interfaces.TransitionWrite) error {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(w.Order))
	if err != nil {
		return err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.ordersTable),
			Item:                orderAV,
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prev": &types.AttributeValueMemberS{Value: string(w.ExpectedStatus)},
			},
		},
	}}

	if w.NewQuote != nil {
		av, err := attributevalue.MarshalMap(toQuoteItem(*w.NewQuote))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.quotesTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	if w.UpdatedQuote != nil {
		av, err := attributevalue.MarshalMap(toQuoteItem(*w.UpdatedQuote))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.quotesTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	if w.NewInvoice != nil {
		av, err := attributevalue.MarshalMap(toInvoiceItem(*w.NewInvoice))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.invoicesTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	for _, p := range w.NewPayments {
		av, err := attributevalue.MarshalMap(toPaymentItem(p))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.paymentsTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *OrderDynamoStore) OrderReferenceExists(ctx context.Context, reference string) (bool, error) {
	return r.indexHasMatch(ctx, r.ordersTable, ordersReferenceIndex, "reference", reference)
}

func (r *OrderDynamoStore) PublicTokenExists(ctx context.Context, token string) (bool, error) {
	return r.indexHasMatch(ctx, r.ordersTable, ordersPublicTokenIndex, "public_token", token)
}

func (r *OrderDynamoStore) QuoteReferenceExists(ctx context.Context, reference string) (bool, error) {
	return r.indexHasMatch(ctx, r.quotesTable, quotesReferenceIndex, "reference", reference)
}

func (r *OrderDynamoStore) InvoiceNumberExists(ctx context.Context, number string) (bool, error) {
	return r.indexHasMatch(ctx, r.invoicesTable, invoicesNumberIndex, "invoice_number", number)
}

func (r *OrderDynamoStore) indexHasMatch(ctx context.Context, table, index, key, value string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *OrderDynamoStore) listAssignees(ctx context.Context, orderID string) ([]entities.OrderAssignee, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.assigneesTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	assignees := make([]entities.OrderAssignee, 0, len(out.Items))
	for _, raw := range out.Items {
		var it assigneeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		assignees = append(assignees, fromAssigneeItem(it))
	}
	return assignees, nil
}

func (r *OrderDynamoStore) listSubscribers(ctx context.Context, orderID string) ([]entities.OrderSubscriber, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.subscribersTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	subscribers := make([]entities.OrderSubscriber, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriberItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, fromSubscriberItem(it))
	}
	return subscribers, nil
}

func orderAdviserKey(orderID, adviserID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id":   &types.AttributeValueMemberS{Value: orderID},
		"adviser_id": &types.AttributeValueMemberS{Value: adviserID},
	}
}
