package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/inventory"
	"github.com/inventaris/backend/internal/domain/shared"
)

const (
	// DefaultTransactionPageSize is the page size used when the list request
	// does not specify a limit
	DefaultTransactionPageSize = 50
)

// StockTransactionService handles the stock-transaction ledger: recording
// movements, listing them, and building period reports.
type StockTransactionService struct {
	txRepo   inventory.StockTransactionRepository
	itemRepo inventory.ItemRepository
	scope    TransactionScope
	now      func() time.Time
}

// NewStockTransactionService creates a new StockTransactionService
func NewStockTransactionService(
	txRepo inventory.StockTransactionRepository,
	itemRepo inventory.ItemRepository,
	scope TransactionScope,
) *StockTransactionService {
	return &StockTransactionService{
		txRepo:   txRepo,
		itemRepo: itemRepo,
		scope:    scope,
		now:      time.Now,
	}
}

// SetClock overrides the service clock. Used in tests.
func (s *StockTransactionService) SetClock(now func() time.Time) {
	s.now = now
}

// Record validates and persists a stock movement, adjusting the item's
// stock level in the same database transaction as the ledger append.
// Validation failures are reported in a fixed order: date, kind, quantity.
func (s *StockTransactionService) Record(ctx context.Context, actor identity.Actor, req RecordStockTransactionRequest) (*RecordStockTransactionResponse, error) {
	if !actor.CanModifyInventory() {
		return nil, shared.ErrForbidden
	}

	if err := inventory.ValidateTransactionDate(req.Date); err != nil {
		return nil, err
	}
	if err := inventory.ValidateTransactionType(req.Kind); err != nil {
		return nil, err
	}
	if err := inventory.ValidateTransactionQuantity(req.Quantity); err != nil {
		return nil, err
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Invalid item ID")
	}

	var resp *RecordStockTransactionResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.Items().FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return shared.ErrNotFound
		}

		// ApplyMovement rejects an over-draining stock-out before any
		// mutation, so nothing is written on insufficient stock.
		if err := item.ApplyMovement(inventory.TransactionType(req.Kind), req.Quantity); err != nil {
			return err
		}

		tx, err := inventory.NewStockTransaction(item.ID, req.Quantity, req.Date, inventory.TransactionType(req.Kind))
		if err != nil {
			return err
		}

		if err := repos.Items().Save(ctx, item); err != nil {
			return err
		}
		if err := repos.Transactions().Create(ctx, tx); err != nil {
			return err
		}

		resp = &RecordStockTransactionResponse{
			Transaction: toStockTransactionResponse(tx),
			NewStock:    item.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// List returns a page of stock transactions ordered by date. TotalCount is
// the count of all stored transactions regardless of the active filters,
// which is what the dashboard widgets expect.
func (s *StockTransactionService) List(ctx context.Context, req ListStockTransactionsRequest) (*ListStockTransactionsResponse, error) {
	query := inventory.TransactionQuery{
		Filter: shared.Filter{
			StartIndex: req.StartIndex,
			Limit:      req.Limit,
			OrderDir:   req.Order,
			Search:     req.SearchTerm,
		},
		Kind: inventory.TransactionType(req.Kind),
	}
	if query.Limit <= 0 {
		query.Limit = DefaultTransactionPageSize
	}
	query.Filter = query.Filter.Normalize()

	if req.ItemID != "" {
		itemID, err := uuid.Parse(req.ItemID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_ITEM", "Invalid item ID")
		}
		query.ItemID = &itemID
	}

	txs, err := s.txRepo.FindFiltered(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.txRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ListStockTransactionsResponse{
		Transactions: toStockTransactionResponses(txs),
		TotalCount:   total,
	}, nil
}

// AggregateByMonth reports the stock totals of one calendar month. Month and
// year default to the current date when the request leaves them zero.
func (s *StockTransactionService) AggregateByMonth(ctx context.Context, req PeriodReportRequest) (*PeriodReportResponse, error) {
	now := s.now()
	month := time.Month(req.Month)
	if req.Month == 0 {
		month = now.Month()
	}
	year := req.Year
	if year == 0 {
		year = now.Year()
	}
	if month < time.January || month > time.December {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}

	return s.aggregate(ctx, inventory.MonthWindow(month, year), req.ItemID)
}

// AggregateByYear reports the stock totals of one calendar year, defaulting
// to the current year.
func (s *StockTransactionService) AggregateByYear(ctx context.Context, req PeriodReportRequest) (*PeriodReportResponse, error) {
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	return s.aggregate(ctx, inventory.YearWindow(year), req.ItemID)
}

func (s *StockTransactionService) aggregate(ctx context.Context, window inventory.Window, rawItemID string) (*PeriodReportResponse, error) {
	var itemID *uuid.UUID
	if rawItemID != "" {
		id, err := uuid.Parse(rawItemID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_ITEM", "Invalid item ID")
		}
		itemID = &id
	}

	txs, err := s.txRepo.FindInWindow(ctx, window, itemID)
	if err != nil {
		return nil, err
	}

	agg := inventory.AggregateTransactions(txs)
	return &PeriodReportResponse{
		TotalStockIn:  agg.TotalStockIn,
		TotalStockOut: agg.TotalStockOut,
		EndingStock:   agg.EndingStock,
		Transactions:  toStockTransactionResponses(txs),
	}, nil
}
