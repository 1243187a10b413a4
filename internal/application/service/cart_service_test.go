package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	infraRepo "github.com/sangkips/salespoint-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (*CartService, *gorm.DB, *entity.Shop) {
	t.Helper()
	db := setupTestDB(t)
	shop := &entity.Shop{Name: "Test Shop", TaxRate: 0.05}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	return NewCartService(infraRepo.NewProductRepository(db)), db, shop
}

func TestCartServiceAddSnapshotsPrice(t *testing.T) {
	cart, db, shop := newCartFixture(t)
	ctx := context.Background()

	product := &entity.Product{ShopID: shop.ID, Name: "Widget", SellingPrice: 12345, StockQuantity: 5}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	if _, err := cart.Add(ctx, "sess", product.ID, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// A later catalog price change must not rewrite the cart line
	if err := db.Model(product).Update("selling_price", 99999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}
	lines := cart.Lines("sess")
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	if lines[0].UnitPrice != 12345 {
		t.Errorf("unit price = %d, want 12345 (snapshot at add time)", lines[0].UnitPrice)
	}
}

func TestCartServiceVariantAdd(t *testing.T) {
	cart, db, shop := newCartFixture(t)
	ctx := context.Background()

	product := &entity.Product{ShopID: shop.ID, Name: "Shirt", SellingPrice: 50000, HasVariants: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	variant := &entity.ProductVariant{ProductID: product.ID, OptionName: "Size", OptionValue: "L", PriceModifier: 2500}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant: %v", err)
	}

	c, err := cart.Add(ctx, "sess", product.ID, &variant.ID)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if c.Lines[0].ProductName != "Shirt (L)" {
		t.Errorf("line name = %q, want %q", c.Lines[0].ProductName, "Shirt (L)")
	}
	if c.Lines[0].UnitPrice != 52500 {
		t.Errorf("unit price = %d, want 52500", c.Lines[0].UnitPrice)
	}

	// A variant of a different product must be rejected
	other := &entity.Product{ShopID: shop.ID, Name: "Hat", SellingPrice: 1000}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := cart.Add(ctx, "sess", other.ID, &variant.ID); err == nil {
		t.Error("expected error adding a variant of a different product")
	}
}

func TestCartServiceUnknownProduct(t *testing.T) {
	cart, _, _ := newCartFixture(t)
	if _, err := cart.Add(context.Background(), "sess", uuid.New(), nil); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	cart, db, shop := newCartFixture(t)
	ctx := context.Background()

	product := &entity.Product{ShopID: shop.ID, Name: "Widget", SellingPrice: 1000}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	if _, err := cart.Add(ctx, "till-1", product.ID, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !cart.Get("till-2").IsEmpty() {
		t.Error("sessions share cart state")
	}

	cart.Clear("till-2")
	if cart.Get("till-1").IsEmpty() {
		t.Error("clearing one session emptied another")
	}
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	cart, db, shop := newCartFixture(t)
	ctx := context.Background()

	product := &entity.Product{ShopID: shop.ID, Name: "Widget", SellingPrice: 1000}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	c, err := cart.Add(ctx, "sess", product.ID, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	identity := c.Lines[0].Identity()

	if _, err := cart.UpdateQuantity("sess", identity, 3); err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if got := cart.Total("sess"); got != 3000 {
		t.Errorf("total = %d, want 3000", got)
	}

	if _, err := cart.UpdateQuantity("sess", "missing", 3); err == nil {
		t.Error("expected not found for unknown identity")
	}

	if _, err := cart.Remove("sess", identity); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !cart.Get("sess").IsEmpty() {
		t.Error("cart not empty after removing only line")
	}
}
