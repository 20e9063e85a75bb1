package repository

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/adapter/persistence/collections"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit for one TransactWriteItems call.
const maxTransactItems = 100

// DynamoUnitOfWork commits staged writes with a single TransactWriteItems.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	prefix string
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tablePrefix string) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, prefix: tablePrefix}
}

func (u *DynamoUnitOfWork) Run(ctx context.Context, fn func(tx interfaces.IWriteSet) error) error {
	ws := &dynamoWriteSet{prefix: u.prefix, index: map[string]int{}}
	if err := fn(ws); err != nil {
		return err
	}
	if ws.err != nil {
		return ws.err
	}
	if len(ws.items) == 0 {
		return nil
	}
	if len(ws.items) > maxTransactItems {
		return fmt.Errorf("unit of work: %d writes exceed the transaction limit of %d", len(ws.items), maxTransactItems)
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: ws.items,
	})
	if err != nil {
		return ws.mapCancellation(err)
	}
	return nil
}

type stagedKind int

const (
	stagedCreate stagedKind = iota
	stagedUpdate
	stagedDelete
	stagedTransition
)

var condStatus = aws.String("attribute_exists(#pk) AND #status = :from")

type dynamoWriteSet struct {
	prefix string
	items  []types.TransactWriteItem
	kinds  []stagedKind
	index  map[string]int // table/pk/sk -> position, a transaction touches an item once
	err    error
}

// stage returns the position of the staged write, -1 when staging failed.
func (w *dynamoWriteSet) stage(kind stagedKind, collection, pk, sk string, item any) int {
	if w.err != nil {
		return -1
	}
	name := w.prefix + collection

	var twi types.TransactWriteItem
	if kind == stagedDelete {
		twi.Delete = &types.Delete{
			TableName:                aws.String(name),
			Key:                      key(pk, sk),
			ConditionExpression:      condExists,
			ExpressionAttributeNames: pkNames,
		}
	} else {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			w.err = err
			return -1
		}
		cond := condExists
		if kind == stagedCreate {
			cond = condNotExists
		}
		twi.Put = &types.Put{
			TableName:                aws.String(name),
			Item:                     av,
			ConditionExpression:      cond,
			ExpressionAttributeNames: pkNames,
		}
	}

	k := name + "/" + pk + "/" + sk
	if i, ok := w.index[k]; ok {
		// A create followed by an update of the same document stays a create.
		if w.kinds[i] == stagedCreate && kind == stagedUpdate {
			twi.Put.ConditionExpression = condNotExists
			kind = stagedCreate
		}
		w.items[i] = twi
		w.kinds[i] = kind
		return i
	}
	w.index[k] = len(w.items)
	w.items = append(w.items, twi)
	w.kinds = append(w.kinds, kind)
	return len(w.items) - 1
}

// mapCancellation translates a cancelled transaction into the store sentinels.
func (w *dynamoWriteSet) mapCancellation(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" || i >= len(w.kinds) {
			continue
		}
		switch w.kinds[i] {
		case stagedCreate:
			return fmt.Errorf("unit of work: %w", interfaces.ErrAlreadyExists)
		case stagedTransition:
			return fmt.Errorf("unit of work: %w", interfaces.ErrStaleDocument)
		}
		return fmt.Errorf("unit of work: %w", interfaces.ErrDocumentNotFound)
	}
	return fmt.Errorf("unit of work: %w", err)
}

func (w *dynamoWriteSet) CreateSale(s entities.Sale) {
	w.stage(stagedCreate, collections.Sales, s.CompanyID, s.ID, toSaleItem(s))
}

func (w *dynamoWriteSet) UpdateSale(s entities.Sale) {
	w.stage(stagedUpdate, collections.Sales, s.CompanyID, s.ID, toSaleItem(s))
}

func (w *dynamoWriteSet) UpdateQuote(q entities.Quote) {
	w.stage(stagedUpdate, q.Kind.Collection(), q.CompanyID, q.ID, toQuoteItem(q))
}

func (w *dynamoWriteSet) TransitionQuote(q entities.Quote, from entities.QuoteStatus) {
	i := w.stage(stagedTransition, q.Kind.Collection(), q.CompanyID, q.ID, toQuoteItem(q))
	if i < 0 || w.kinds[i] != stagedTransition {
		return
	}
	put := w.items[i].Put
	put.ConditionExpression = condStatus
	put.ExpressionAttributeNames = mergeNames(map[string]string{"#status": "status"}, pkNames)
	put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
}

func (w *dynamoWriteSet) CreateContract(c entities.Contract) {
	w.stage(stagedCreate, collections.Contracts, c.CompanyID, c.ID, toContractItem(c))
}

func (w *dynamoWriteSet) UpdateContract(c entities.Contract) {
	w.stage(stagedUpdate, collections.Contracts, c.CompanyID, c.ID, toContractItem(c))
}

func (w *dynamoWriteSet) UpdateClient(c entities.Client) {
	w.stage(stagedUpdate, collections.Clients, c.CompanyID, c.ID, toClientItem(c))
}

func (w *dynamoWriteSet) UpdateCostCenter(cc entities.CostCenter) {
	w.stage(stagedUpdate, collections.CostCenters, cc.CompanyID, cc.ID, toCostCenterItem(cc))
}

func (w *dynamoWriteSet) UpdateTicket(t entities.Ticket) {
	w.stage(stagedUpdate, collections.Tickets, t.CompanyID, t.ID, toTicketItem(t))
}

func (w *dynamoWriteSet) CreateInvoice(inv entities.Invoice) {
	w.stage(stagedCreate, collections.Invoices, inv.CompanyID, inv.ID, toInvoiceItem(inv))
}

func (w *dynamoWriteSet) UpdateInvoice(inv entities.Invoice) {
	w.stage(stagedUpdate, collections.Invoices, inv.CompanyID, inv.ID, toInvoiceItem(inv))
}

func (w *dynamoWriteSet) DeleteInvoice(companyID, id string) {
	w.stage(stagedDelete, collections.Invoices, companyID, id, nil)
}

func (w *dynamoWriteSet) CreateReceivable(r entities.Receivable) {
	w.stage(stagedCreate, collections.Receivables, r.CompanyID, r.ID, toReceivableItem(r))
}

func (w *dynamoWriteSet) UpdateReceivable(r entities.Receivable) {
	w.stage(stagedUpdate, collections.Receivables, r.CompanyID, r.ID, toReceivableItem(r))
}

func (w *dynamoWriteSet) DeleteReceivable(companyID, id string) {
	w.stage(stagedDelete, collections.Receivables, companyID, id, nil)
}
