package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"github.com/sangkips/salespoint-api/pkg/pagination"
	"github.com/sangkips/salespoint-api/pkg/utils"
)

// CheckoutService turns a session's cart (or a direct billing amount) into a
// durable transaction with item rows and stock decrements.
type CheckoutService struct {
	txnRepo     repository.TransactionRepository
	itemRepo    repository.TransactionItemRepository
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	cartService *CartService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	txnRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	cartService *CartService,
) *CheckoutService {
	return &CheckoutService{
		txnRepo:     txnRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		cartService: cartService,
	}
}

// CheckoutInput represents one commit request
type CheckoutInput struct {
	CashierID     uuid.UUID
	ShopID        uuid.UUID
	SessionID     string
	PaymentMethod enum.PaymentMethod
	// DirectAmount, when set, bypasses the cart entirely: the sale is
	// committed for this manually entered decimal amount with no item rows
	// and no stock movement.
	DirectAmount *float64
}

// CommitStep records the outcome of one persistence step of a commit. The
// commit is a saga, not an atomic write: the steps run strictly in order
// (header, items, then one stock step per line) and later failures never
// roll earlier successes back.
type CommitStep struct {
	Stage  apperror.Stage `json:"stage"`
	Detail string         `json:"detail,omitempty"`
	Error  string         `json:"error,omitempty"`
	OK     bool           `json:"ok"`
}

// CommitResult is the inspectable outcome of a commit attempt
type CommitResult struct {
	Transaction *entity.Transaction `json:"transaction,omitempty"`
	Steps       []CommitStep        `json:"steps"`
}

// PartialFailure reports whether the sale header was persisted but a later
// step failed. In that state the sale is durable and must never be reversed;
// inventory may need manual reconciliation.
func (r *CommitResult) PartialFailure() bool {
	if r.Transaction == nil {
		return false
	}
	for _, s := range r.Steps {
		if !s.OK {
			return true
		}
	}
	return false
}

func (r *CommitResult) record(stage apperror.Stage, detail string, err error) {
	step := CommitStep{Stage: stage, Detail: detail, OK: err == nil}
	if err != nil {
		step.Error = err.Error()
	}
	r.Steps = append(r.Steps, step)
}

// roundCents converts a decimal amount to cents with normal rounding
func roundCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// taxFor computes the tax in cents for a subtotal and a fractional rate
func taxFor(subTotal int64, rate float64) int64 {
	return int64(math.Round(float64(subTotal) * rate))
}

// Commit runs the commit pipeline. Steps, strictly in order:
//
//  1. Persist the transaction header. A failure here aborts the whole
//     commit and leaves the cart untouched.
//  2. Persist one item row per cart line (skipped for direct billing),
//     using the cart's snapshotted names and prices.
//  3. Decrement stock per line, each decrement independent: one failing
//     line is recorded on the result and reported, but does not roll back
//     the header, the item rows, or earlier decrements.
//
// The cart is cleared only when every step succeeded. The returned
// CommitResult always carries the per-step outcomes; when err is non-nil and
// the result still has a Transaction, the sale is durable and the caller
// must treat the failure as "sale recorded, inventory may be inconsistent".
func (s *CheckoutService) Commit(ctx context.Context, input *CheckoutInput) (*CommitResult, error) {
	if input.CashierID == uuid.Nil || input.ShopID == uuid.Nil {
		return nil, apperror.ErrMissingActorOrShop
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method %q", input.PaymentMethod))
	}

	shop, err := s.shopRepo.GetByID(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.ErrMissingActorOrShop
	}

	direct := input.DirectAmount != nil
	var lines []entity.CartLine
	var subTotal int64
	if direct {
		if *input.DirectAmount <= 0 {
			return nil, apperror.NewBadRequestError("Direct billing amount must be positive")
		}
		subTotal = roundCents(*input.DirectAmount)
	} else {
		lines = s.cartService.Lines(input.SessionID)
		if len(lines) == 0 {
			return nil, apperror.NewBadRequestError("Cart is empty and no direct amount was given")
		}
		for i := range lines {
			subTotal += lines[i].Total()
		}
	}

	taxAmount := taxFor(subTotal, shop.TaxRate)

	txn := &entity.Transaction{
		ShopID:          input.ShopID,
		CashierID:       input.CashierID,
		Type:            enum.TransactionTypeSale,
		BillNo:          utils.GenerateBillNo(),
		SubTotal:        subTotal,
		TaxAmount:       taxAmount,
		DiscountAmount:  0,
		TotalAmount:     subTotal + taxAmount,
		PaymentMethod:   input.PaymentMethod,
		IsDirectBilling: direct,
	}

	result := &CommitResult{}

	// Step 1: header. Nothing is durable until this row exists.
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		result.record(apperror.StageHeader, "", err)
		return result, apperror.NewPersistenceError(apperror.StageHeader, "Failed to record sale: "+err.Error())
	}
	result.record(apperror.StageHeader, txn.BillNo, nil)
	result.Transaction = txn

	if direct {
		return result, nil
	}

	// Step 2: item rows from the cart snapshots
	items := make([]entity.TransactionItem, 0, len(lines))
	for i := range lines {
		items = append(items, entity.TransactionItem{
			TransactionID: txn.ID,
			ProductID:     lines[i].ProductID,
			VariantID:     lines[i].VariantID,
			ProductName:   lines[i].ProductName,
			UnitPrice:     lines[i].UnitPrice,
			Quantity:      lines[i].Quantity,
			TotalPrice:    lines[i].Total(),
		})
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		// The sale header is durable; the cart is kept so the failure can
		// be reconciled by hand. Stock is left untouched on purpose: item
		// rows are the audit trail the reconciliation works from.
		result.record(apperror.StageItems, "", err)
		return result, apperror.NewPersistenceError(apperror.StageItems, "Sale recorded but items failed: "+err.Error())
	}
	result.record(apperror.StageItems, fmt.Sprintf("%d items", len(items)), nil)

	// Step 3: stock, one independent decrement per line. No cross-terminal
	// lock exists: simultaneous commits against the same product decrement
	// last-write-wins.
	var stockErr error
	for i := range lines {
		var err error
		if lines[i].VariantID != nil {
			err = s.productRepo.DecrementVariantStock(ctx, *lines[i].VariantID, lines[i].Quantity)
		} else {
			err = s.productRepo.DecrementStock(ctx, lines[i].ProductID, lines[i].Quantity)
		}
		result.record(apperror.StageStock, lines[i].Identity(), err)
		if err != nil && stockErr == nil {
			stockErr = err
		}
	}
	if stockErr != nil {
		return result, apperror.NewPersistenceError(apperror.StageStock, "Sale recorded but stock update failed: "+stockErr.Error())
	}

	s.cartService.Clear(input.SessionID)
	return result, nil
}

// GetTransaction retrieves a committed transaction with its items
func (s *CheckoutService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// ListTransactions lists committed transactions with filtering
func (s *CheckoutService) ListTransactions(ctx context.Context, shopID uuid.UUID, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	txns, total, err := s.txnRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}
