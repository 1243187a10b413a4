package service

import (
	"context"
	"testing"

	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/enum"
	infraRepo "github.com/sangkips/salespoint-api/internal/infrastructure/repository"
)

func newSettingsFixture(t *testing.T) (*SettingsService, *entity.Shop) {
	t.Helper()
	db := setupTestDB(t)
	shop := &entity.Shop{Name: "Test Shop", TaxRate: 0.05}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("create shop: %v", err)
	}
	svc := NewSettingsService(infraRepo.NewShopRepository(db), infraRepo.NewReceiptStyleRepository(db))
	return svc, shop
}

func TestGetReceiptStyleDefaults(t *testing.T) {
	svc, shop := newSettingsFixture(t)

	style, err := svc.GetReceiptStyle(context.Background(), shop.ID)
	if err != nil {
		t.Fatalf("GetReceiptStyle failed: %v", err)
	}
	if style.PaperWidth != 32 {
		t.Errorf("default paper width = %d, want 32", style.PaperWidth)
	}
	if style.HeaderAlign != enum.AlignCenter || style.FooterAlign != enum.AlignCenter {
		t.Error("default alignment is not center")
	}
	if style.Template != enum.TemplateClassic {
		t.Errorf("default template = %q, want classic", style.Template)
	}
}

func TestUpdateReceiptStyle(t *testing.T) {
	svc, shop := newSettingsFixture(t)
	ctx := context.Background()

	width := 48
	align := enum.AlignLeft
	tpl := enum.TemplateModern
	style, err := svc.UpdateReceiptStyle(ctx, shop.ID, &UpdateReceiptStyleInput{
		PaperWidth:  &width,
		HeaderAlign: &align,
		Template:    &tpl,
	})
	if err != nil {
		t.Fatalf("UpdateReceiptStyle failed: %v", err)
	}
	if style.PaperWidth != 48 || style.HeaderAlign != enum.AlignLeft || style.Template != enum.TemplateModern {
		t.Errorf("update not applied: %+v", style)
	}

	// The saved style round-trips
	loaded, err := svc.GetReceiptStyle(ctx, shop.ID)
	if err != nil {
		t.Fatalf("GetReceiptStyle failed: %v", err)
	}
	if loaded.PaperWidth != 48 {
		t.Errorf("persisted width = %d, want 48", loaded.PaperWidth)
	}
}

func TestUpdateReceiptStyleRejectsBadValues(t *testing.T) {
	svc, shop := newSettingsFixture(t)
	ctx := context.Background()

	// Out-of-range widths are rejected, not clamped
	for _, w := range []int{23, 49, 0} {
		width := w
		if _, err := svc.UpdateReceiptStyle(ctx, shop.ID, &UpdateReceiptStyleInput{PaperWidth: &width}); err == nil {
			t.Errorf("width %d accepted, want error", w)
		}
	}

	align := enum.Alignment("middle")
	if _, err := svc.UpdateReceiptStyle(ctx, shop.ID, &UpdateReceiptStyleInput{HeaderAlign: &align}); err == nil {
		t.Error("unknown alignment accepted, want error")
	}

	tpl := enum.ReceiptTemplate("fancy")
	if _, err := svc.UpdateReceiptStyle(ctx, shop.ID, &UpdateReceiptStyleInput{Template: &tpl}); err == nil {
		t.Error("unknown template accepted, want error")
	}

	// A rejected update must not persist a style
	style, err := svc.GetReceiptStyle(ctx, shop.ID)
	if err != nil {
		t.Fatalf("GetReceiptStyle failed: %v", err)
	}
	if style.PaperWidth != 32 {
		t.Errorf("width = %d after rejected updates, want default 32", style.PaperWidth)
	}
}

func TestUpdateShopTaxRate(t *testing.T) {
	svc, shop := newSettingsFixture(t)
	ctx := context.Background()

	rate := 0.16
	updated, err := svc.UpdateShop(ctx, shop.ID, &UpdateShopInput{TaxRate: &rate})
	if err != nil {
		t.Fatalf("UpdateShop failed: %v", err)
	}
	if updated.TaxRate != 0.16 {
		t.Errorf("tax rate = %v, want 0.16", updated.TaxRate)
	}

	bad := 1.5
	if _, err := svc.UpdateShop(ctx, shop.ID, &UpdateShopInput{TaxRate: &bad}); err == nil {
		t.Error("tax rate above 1 accepted, want error")
	}
}
