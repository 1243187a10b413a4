package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	infraRepo "github.com/sangkips/salespoint-api/internal/infrastructure/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Shop{},
		&entity.Cashier{},
		&entity.Product{},
		&entity.ProductVariant{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.ReceiptStyle{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type checkoutFixture struct {
	db       *gorm.DB
	shop     *entity.Shop
	cashier  *entity.Cashier
	cart     *CartService
	checkout *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := setupTestDB(t)

	shop := &entity.Shop{Name: "Test Shop", TaxRate: 0.05, Currency: "KES"}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	cashier := &entity.Cashier{ShopID: shop.ID, Name: "Jane", Email: "jane@example.com", PasswordHash: "x", Active: true}
	if err := db.Create(cashier).Error; err != nil {
		t.Fatalf("create cashier: %v", err)
	}

	productRepo := infraRepo.NewProductRepository(db)
	cart := NewCartService(productRepo)
	checkout := NewCheckoutService(
		infraRepo.NewTransactionRepository(db),
		infraRepo.NewTransactionItemRepository(db),
		productRepo,
		infraRepo.NewShopRepository(db),
		cart,
	)
	return &checkoutFixture{db: db, shop: shop, cashier: cashier, cart: cart, checkout: checkout}
}

func (f *checkoutFixture) createProduct(t *testing.T, name string, priceCents int64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{ShopID: f.shop.ID, Name: name, SellingPrice: priceCents, StockQuantity: stock}
	if err := f.db.Create(p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func (f *checkoutFixture) input(sessionID string) *CheckoutInput {
	return &CheckoutInput{
		CashierID:     f.cashier.ID,
		ShopID:        f.shop.ID,
		SessionID:     sessionID,
		PaymentMethod: enum.PaymentMethodCash,
	}
}

func TestCommitCartSale(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	product := f.createProduct(t, "Widget", 100000, 10) // 1000.00

	if _, err := f.cart.Add(ctx, "sess", product.ID, nil); err != nil {
		t.Fatalf("cart add: %v", err)
	}

	result, err := f.checkout.Commit(ctx, f.input("sess"))
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	txn := result.Transaction
	if txn == nil {
		t.Fatal("no transaction on result")
	}

	// 1000.00 at 5% tax: 50.00 tax, 1050.00 total
	if txn.SubTotal != 100000 {
		t.Errorf("subtotal = %d, want 100000", txn.SubTotal)
	}
	if txn.TaxAmount != 5000 {
		t.Errorf("tax = %d, want 5000", txn.TaxAmount)
	}
	if txn.TotalAmount != 105000 {
		t.Errorf("total = %d, want 105000", txn.TotalAmount)
	}
	if txn.BillNo == "" {
		t.Error("bill number not assigned")
	}
	if txn.IsDirectBilling {
		t.Error("cart sale flagged as direct billing")
	}

	// Item row snapshots the cart line
	var items []entity.TransactionItem
	if err := f.db.Where("transaction_id = ?", txn.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count = %d, want 1", len(items))
	}
	if items[0].ProductName != "Widget" || items[0].UnitPrice != 100000 || items[0].Quantity != 1 {
		t.Errorf("item snapshot wrong: %+v", items[0])
	}

	// Stock decremented
	var p entity.Product
	if err := f.db.First(&p, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if p.StockQuantity != 9 {
		t.Errorf("stock = %d, want 9", p.StockQuantity)
	}

	// Cart cleared after full success
	if !f.cart.Get("sess").IsEmpty() {
		t.Error("cart not cleared after successful commit")
	}
}

func TestCommitRequiresActorAndShop(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	in := f.input("sess")
	in.CashierID = uuid.Nil
	if _, err := f.checkout.Commit(ctx, in); !errors.Is(err, apperror.ErrMissingActorOrShop) {
		t.Errorf("nil cashier: err = %v, want ErrMissingActorOrShop", err)
	}

	in = f.input("sess")
	in.ShopID = uuid.Nil
	if _, err := f.checkout.Commit(ctx, in); !errors.Is(err, apperror.ErrMissingActorOrShop) {
		t.Errorf("nil shop: err = %v, want ErrMissingActorOrShop", err)
	}
}

func TestCommitEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	if _, err := f.checkout.Commit(context.Background(), f.input("empty")); err == nil {
		t.Fatal("expected error for empty cart without direct amount")
	}
}

func TestCommitUnknownPaymentMethod(t *testing.T) {
	f := newCheckoutFixture(t)
	in := f.input("sess")
	in.PaymentMethod = "barter"
	if _, err := f.checkout.Commit(context.Background(), in); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
}

func TestCommitDirectBilling(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	product := f.createProduct(t, "Widget", 100000, 10)

	amount := 250.50
	in := f.input("")
	in.DirectAmount = &amount

	result, err := f.checkout.Commit(ctx, in)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	txn := result.Transaction

	if !txn.IsDirectBilling {
		t.Error("direct billing flag not set")
	}
	if txn.SubTotal != 25050 {
		t.Errorf("subtotal = %d, want 25050", txn.SubTotal)
	}
	if txn.TotalAmount != txn.SubTotal+txn.TaxAmount {
		t.Errorf("total %d != subtotal %d + tax %d", txn.TotalAmount, txn.SubTotal, txn.TaxAmount)
	}

	// Direct billing writes no item rows and never touches stock
	var count int64
	f.db.Model(&entity.TransactionItem{}).Where("transaction_id = ?", txn.ID).Count(&count)
	if count != 0 {
		t.Errorf("direct billing persisted %d item rows, want 0", count)
	}
	var p entity.Product
	f.db.First(&p, "id = ?", product.ID)
	if p.StockQuantity != 10 {
		t.Errorf("stock = %d, want 10 (untouched)", p.StockQuantity)
	}
}

func TestCommitVariantPricingAndStock(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	product := f.createProduct(t, "Shirt", 50000, 10)
	variant := &entity.ProductVariant{ProductID: product.ID, OptionName: "Size", OptionValue: "L", PriceModifier: 5000, StockQuantity: 4}
	if err := f.db.Create(variant).Error; err != nil {
		t.Fatalf("create variant: %v", err)
	}

	if _, err := f.cart.Add(ctx, "sess", product.ID, &variant.ID); err != nil {
		t.Fatalf("cart add: %v", err)
	}

	result, err := f.checkout.Commit(ctx, f.input("sess"))
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	// Unit price is the product price plus the variant's additive modifier
	if result.Transaction.SubTotal != 55000 {
		t.Errorf("subtotal = %d, want 55000", result.Transaction.SubTotal)
	}

	// The variant's stock moves; the parent product's does not
	var v entity.ProductVariant
	f.db.First(&v, "id = ?", variant.ID)
	if v.StockQuantity != 3 {
		t.Errorf("variant stock = %d, want 3", v.StockQuantity)
	}
	var p entity.Product
	f.db.First(&p, "id = ?", product.ID)
	if p.StockQuantity != 10 {
		t.Errorf("product stock = %d, want 10 (untouched for variant lines)", p.StockQuantity)
	}
}

func TestCommitPartialStockFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	good := f.createProduct(t, "Widget", 10000, 5)
	doomed := f.createProduct(t, "Gadget", 20000, 5)

	if _, err := f.cart.Add(ctx, "sess", good.ID, nil); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	if _, err := f.cart.Add(ctx, "sess", doomed.ID, nil); err != nil {
		t.Fatalf("cart add: %v", err)
	}

	// Pull one product out from under the commit so its decrement fails
	if err := f.db.Unscoped().Delete(&entity.Product{}, "id = ?", doomed.ID).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}

	result, err := f.checkout.Commit(ctx, f.input("sess"))
	if err == nil {
		t.Fatal("expected error for failed stock decrement")
	}
	if apperror.StageOf(err) != apperror.StageStock {
		t.Errorf("stage = %q, want %q", apperror.StageOf(err), apperror.StageStock)
	}

	// The sale header and the item rows stay durable
	if result == nil || result.Transaction == nil {
		t.Fatal("header should be durable despite the stock failure")
	}
	if !result.PartialFailure() {
		t.Error("result should report a partial failure")
	}
	var count int64
	f.db.Model(&entity.Transaction{}).Where("id = ?", result.Transaction.ID).Count(&count)
	if count != 1 {
		t.Error("transaction header rolled back, must stay durable")
	}
	f.db.Model(&entity.TransactionItem{}).Where("transaction_id = ?", result.Transaction.ID).Count(&count)
	if count != 2 {
		t.Errorf("item rows = %d, want 2 (never rolled back)", count)
	}

	// The successful line's decrement is kept
	var p entity.Product
	f.db.First(&p, "id = ?", good.ID)
	if p.StockQuantity != 4 {
		t.Errorf("good product stock = %d, want 4", p.StockQuantity)
	}

	// The cart survives so the failure can be reconciled
	if f.cart.Get("sess").IsEmpty() {
		t.Error("cart cleared despite partial failure")
	}
}

func TestGetTransactionWithItems(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	product := f.createProduct(t, "Widget", 10000, 5)

	if _, err := f.cart.Add(ctx, "sess", product.ID, nil); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	result, err := f.checkout.Commit(ctx, f.input("sess"))
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	txn, err := f.checkout.GetTransaction(ctx, result.Transaction.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if len(txn.Items) != 1 {
		t.Errorf("item count = %d, want 1", len(txn.Items))
	}

	if _, err := f.checkout.GetTransaction(ctx, uuid.New()); err == nil {
		t.Error("expected not found error for unknown transaction")
	}
}
