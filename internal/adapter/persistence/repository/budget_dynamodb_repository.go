package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type expenseItemItem struct {
	ID          string  `dynamodbav:"id"`
	Category    string  `dynamodbav:"category"`
	Description string  `dynamodbav:"description,omitempty"`
	Amount      float64 `dynamodbav:"amount"`
}

type dailyExpenseItem struct {
	ID       string            `dynamodbav:"id"`
	Date     string            `dynamodbav:"date"`
	Expenses []expenseItemItem `dynamodbav:"expenses"`
}

type generalExpenseItem struct {
	Accommodation float64 `dynamodbav:"accommodation"`
	Flights       float64 `dynamodbav:"flights"`
}

type corporateCardItem struct {
	HolderName string  `dynamodbav:"holder_name"`
	Amount     float64 `dynamodbav:"amount"`
}

type actualExpenseItem struct {
	DailyExpenses  []dailyExpenseItem `dynamodbav:"daily_expenses"`
	GeneralExpense generalExpenseItem `dynamodbav:"general_expense"`
	RecordedAt     string             `dynamodbav:"recorded_at"`
}

// budgetItem is the stored shape of a Budget. CorporateCards and ExchangeRates
// are written as NULL when absent so that "none" and "empty" survive a round trip.
type budgetItem struct {
	ID             string              `dynamodbav:"id"`
	Area           string              `dynamodbav:"area"`
	Email          string              `dynamodbav:"email"`
	StartDate      string              `dynamodbav:"start_date"`
	EndDate        string              `dynamodbav:"end_date"`
	Destination    string              `dynamodbav:"destination"`
	Travelers      []string            `dynamodbav:"travelers"`
	Currency       string              `dynamodbav:"currency"`
	DailyExpenses  []dailyExpenseItem  `dynamodbav:"daily_expenses"`
	GeneralExpense generalExpenseItem  `dynamodbav:"general_expense"`
	CorporateCards []corporateCardItem `dynamodbav:"corporate_cards"`
	ExchangeRates  map[string]float64  `dynamodbav:"exchange_rates"`
	ActualExpense  *actualExpenseItem  `dynamodbav:"actual_expense,omitempty"`

	Status          string  `dynamodbav:"status"`
	CreatedAt       string  `dynamodbav:"created_at"`
	ApprovedBy      *string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt      string  `dynamodbav:"approved_at,omitempty"`
	RejectionReason string  `dynamodbav:"rejection_reason,omitempty"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Approval also writes to the area budgets table (PK: area) in the same
// transaction.
type BudgetDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	emailIndex string
	areaTable  string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName, emailIndex, areaTable string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName, emailIndex: emailIndex, areaTable: areaTable}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// List queries the email index when the filter names a requester and scans the
// table otherwise. Results are newest first.
func (r *BudgetDynamoRepository) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	filterExpr, names, values := budgetFilterExpression(filter)

	var pages [][]map[string]types.AttributeValue
	if filter.Email != "" {
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.emailIndex),
			KeyConditionExpression: aws.String("#email = :email"),
			ExpressionAttributeNames: mergeNames(names, map[string]string{
				"#email": "email",
			}),
			ExpressionAttributeValues: values,
		}
		in.ExpressionAttributeValues[":email"] = &types.AttributeValueMemberS{Value: filter.Email}
		if filterExpr != "" {
			in.FilterExpression = aws.String(filterExpr)
		}
		p := dynamodb.NewQueryPaginator(r.ddb, in)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
		if filterExpr != "" {
			in.FilterExpression = aws.String(filterExpr)
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		p := dynamodb.NewScanPaginator(r.ddb, in)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	budgets := make([]entities.Budget, 0)
	for _, page := range pages {
		for _, raw := range page {
			var it budgetItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			b := fromBudgetItem(it)
			if filter.Matches(b) {
				budgets = append(budgets, b)
			}
		}
	}
	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].CreatedAt.After(budgets[j].CreatedAt) })
	return budgets, nil
}

func (r *BudgetDynamoRepository) ApproveAndCharge(
	ctx context.Context,
	id, area string,
	amountUSD float64,
	approverID string,
	at time.Time,
) (entities.Budget, error) {
	_, err := r.ddb.TransactWriteItems(ctx, approveTransaction(r.tableName, r.areaTable, id, area, amountUSD, approverID, at))
	if err != nil {
		if isBudgetConditionFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return r.GetByID(ctx, id)
}

// approveTransaction moves the budget from New to Approved and adds amountUSD
// to the area's used budget. The budget update is the first item; a failed
// status condition cancels the area increment too.
func approveTransaction(budgetTable, areaTable, id, area string, amountUSD float64, approverID string, at time.Time) *dynamodb.TransactWriteItemsInput {
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(budgetTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :new"),
					UpdateExpression:    aws.String("SET #status = :to, #approved_by = :by, #approved_at = :at"),
					ExpressionAttributeNames: map[string]string{
						"#id":          "id",
						"#status":      "status",
						"#approved_by": "approved_by",
						"#approved_at": "approved_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":new": &types.AttributeValueMemberS{Value: string(entities.BudgetStatusNew)},
						":to":  &types.AttributeValueMemberS{Value: string(entities.BudgetStatusApproved)},
						":by":  &types.AttributeValueMemberS{Value: approverID},
						":at":  &types.AttributeValueMemberS{Value: formatTime(at)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(areaTable),
					Key: map[string]types.AttributeValue{
						"area": &types.AttributeValueMemberS{Value: area},
					},
					UpdateExpression: aws.String("SET #total = if_not_exists(#total, :zero) ADD #used :amount"),
					ExpressionAttributeNames: map[string]string{
						"#total": "total_budget",
						"#used":  "used_budget",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: floatToString(amountUSD)},
						":zero":   &types.AttributeValueMemberN{Value: "0"},
					},
				},
			},
		},
	}
}

func (r *BudgetDynamoRepository) MarkRejected(ctx context.Context, id, approverID, reason string, at time.Time) (entities.Budget, error) {
	expr := "SET #status = :to, #approved_by = :by, #approved_at = :at"
	values := map[string]types.AttributeValue{
		":by": &types.AttributeValueMemberS{Value: approverID},
		":at": &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	names := map[string]string{
		"#approved_by": "approved_by",
		"#approved_at": "approved_at",
	}
	if reason != "" {
		expr += ", #rejection_reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
		names["#rejection_reason"] = "rejection_reason"
	}
	return r.transition(ctx, id, entities.BudgetStatusRejected, expr, values, names)
}

func (r *BudgetDynamoRepository) SetActualExpense(ctx context.Context, id string, actual entities.ActualExpense) (entities.Budget, error) {
	av, err := attributevalue.Marshal(toActualExpenseItem(actual))
	if err != nil {
		return entities.Budget{}, err
	}
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :approved",
		"SET #actual_expense = :actual",
		map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(entities.BudgetStatusApproved)},
			":actual":   av,
		},
		map[string]string{
			"#status":         "status",
			"#actual_expense": "actual_expense",
		},
	)
}

// transition moves a budget out of New. A budget that is no longer New yields a
// zero Budget and a nil error.
func (r *BudgetDynamoRepository) transition(
	ctx context.Context,
	id string,
	to entities.BudgetStatus,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Budget, error) {
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}
	values[":new"] = &types.AttributeValueMemberS{Value: string(entities.BudgetStatusNew)}
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :new",
		updateExpr,
		values,
		mergeNames(names, map[string]string{"#status": "status"}),
	)
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id, condition, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Budget, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// budgetFilterExpression renders the status and area parts of the filter. The
// values map is never nil so callers may add key-condition values to it.
func budgetFilterExpression(f entities.BudgetFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var parts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Status != "" {
		parts = append(parts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}
	if f.Area != "" {
		parts = append(parts, "#area = :area")
		names["#area"] = "area"
		values[":area"] = &types.AttributeValueMemberS{Value: f.Area}
	}
	return strings.Join(parts, " AND "), names, values
}

func toBudgetItem(b entities.Budget) budgetItem {
	it := budgetItem{
		ID:              b.ID,
		Area:            b.Area,
		Email:           b.Email,
		StartDate:       formatDate(b.StartDate),
		EndDate:         formatDate(b.EndDate),
		Destination:     b.Destination,
		Travelers:       b.Travelers,
		Currency:        string(b.Currency),
		DailyExpenses:   toDailyExpenseItems(b.DailyExpenses),
		GeneralExpense:  generalExpenseItem(b.GeneralExpense),
		Status:          string(b.Status),
		CreatedAt:       formatTime(b.CreatedAt),
		ApprovedBy:      b.ApprovedBy,
		RejectionReason: b.RejectionReason,
	}
	if b.CorporateCards != nil {
		it.CorporateCards = make([]corporateCardItem, 0, len(b.CorporateCards))
		for _, c := range b.CorporateCards {
			it.CorporateCards = append(it.CorporateCards, corporateCardItem(c))
		}
	}
	if b.ExchangeRates != nil {
		it.ExchangeRates = make(map[string]float64, len(b.ExchangeRates))
		for code, rate := range b.ExchangeRates {
			it.ExchangeRates[string(code)] = rate
		}
	}
	if b.ActualExpense != nil {
		a := toActualExpenseItem(*b.ActualExpense)
		it.ActualExpense = &a
	}
	if b.ApprovedAt != nil {
		it.ApprovedAt = formatTime(*b.ApprovedAt)
	}
	return it
}

func fromBudgetItem(it budgetItem) entities.Budget {
	b := entities.Budget{
		ID:              it.ID,
		Area:            it.Area,
		Email:           it.Email,
		StartDate:       parseDate(it.StartDate),
		EndDate:         parseDate(it.EndDate),
		Destination:     it.Destination,
		Travelers:       it.Travelers,
		Currency:        entities.Currency(it.Currency),
		DailyExpenses:   fromDailyExpenseItems(it.DailyExpenses),
		GeneralExpense:  entities.GeneralExpense(it.GeneralExpense),
		Status:          entities.BudgetStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		ApprovedBy:      it.ApprovedBy,
		RejectionReason: it.RejectionReason,
	}
	if it.CorporateCards != nil {
		b.CorporateCards = make([]entities.CorporateCard, 0, len(it.CorporateCards))
		for _, c := range it.CorporateCards {
			b.CorporateCards = append(b.CorporateCards, entities.CorporateCard(c))
		}
	}
	if it.ExchangeRates != nil {
		b.ExchangeRates = make(entities.ExchangeRates, len(it.ExchangeRates))
		for code, rate := range it.ExchangeRates {
			b.ExchangeRates[entities.Currency(code)] = rate
		}
	}
	if it.ActualExpense != nil {
		a := fromActualExpenseItem(*it.ActualExpense)
		b.ActualExpense = &a
	}
	if it.ApprovedAt != "" {
		at := parseTime(it.ApprovedAt)
		b.ApprovedAt = &at
	}
	return b
}

func toActualExpenseItem(a entities.ActualExpense) actualExpenseItem {
	return actualExpenseItem{
		DailyExpenses:  toDailyExpenseItems(a.DailyExpenses),
		GeneralExpense: generalExpenseItem(a.GeneralExpense),
		RecordedAt:     formatTime(a.RecordedAt),
	}
}

func fromActualExpenseItem(it actualExpenseItem) entities.ActualExpense {
	return entities.ActualExpense{
		DailyExpenses:  fromDailyExpenseItems(it.DailyExpenses),
		GeneralExpense: entities.GeneralExpense(it.GeneralExpense),
		RecordedAt:     parseTime(it.RecordedAt),
	}
}

func toDailyExpenseItems(days []entities.DailyExpense) []dailyExpenseItem {
	out := make([]dailyExpenseItem, 0, len(days))
	for _, d := range days {
		items := make([]expenseItemItem, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			items = append(items, expenseItemItem{
				ID:          e.ID,
				Category:    string(e.Category),
				Description: e.Description,
				Amount:      e.Amount,
			})
		}
		out = append(out, dailyExpenseItem{ID: d.ID, Date: formatDate(d.Date), Expenses: items})
	}
	return out
}

func fromDailyExpenseItems(days []dailyExpenseItem) []entities.DailyExpense {
	out := make([]entities.DailyExpense, 0, len(days))
	for _, d := range days {
		items := make([]entities.ExpenseItem, 0, len(d.Expenses))
		for _, e := range d.Expenses {
			items = append(items, entities.ExpenseItem{
				ID:          e.ID,
				Category:    entities.ExpenseCategory(e.Category),
				Description: e.Description,
				Amount:      e.Amount,
			})
		}
		out = append(out, entities.DailyExpense{ID: d.ID, Date: parseDate(d.Date), Expenses: items})
	}
	return out
}
