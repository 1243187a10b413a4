package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestCartAddMergesByIdentity(t *testing.T) {
	productID := uuid.New()
	cart := &Cart{}

	line := CartLine{ProductID: productID, ProductName: "Widget", UnitPrice: 10000}
	cart.Add(line)
	cart.Add(line)

	if len(cart.Lines) != 1 {
		t.Fatalf("line count = %d, want 1 (same identity must merge)", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart.Lines[0].Quantity)
	}
	if cart.Total() != 20000 {
		t.Errorf("total = %d, want 20000", cart.Total())
	}
}

func TestCartVariantsAreDistinctLines(t *testing.T) {
	productID := uuid.New()
	variantA := uuid.New()
	variantB := uuid.New()
	cart := &Cart{}

	cart.Add(CartLine{ProductID: productID, ProductName: "Shirt", UnitPrice: 5000})
	cart.Add(CartLine{ProductID: productID, VariantID: &variantA, ProductName: "Shirt (L)", UnitPrice: 5500})
	cart.Add(CartLine{ProductID: productID, VariantID: &variantB, ProductName: "Shirt (XL)", UnitPrice: 6000})

	if len(cart.Lines) != 3 {
		t.Fatalf("line count = %d, want 3 (variants keep separate identities)", len(cart.Lines))
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	productID := uuid.New()
	cart := &Cart{}
	cart.Add(CartLine{ProductID: productID, ProductName: "Widget", UnitPrice: 100})

	identity := cart.Lines[0].Identity()
	if !cart.UpdateQuantity(identity, 5) {
		t.Fatal("UpdateQuantity returned false for existing line")
	}
	if cart.Lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart.Lines[0].Quantity)
	}

	if cart.UpdateQuantity("missing", 3) {
		t.Error("UpdateQuantity returned true for unknown identity")
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	productID := uuid.New()
	cart := &Cart{}
	cart.Add(CartLine{ProductID: productID, ProductName: "Widget", UnitPrice: 100})

	identity := cart.Lines[0].Identity()
	if !cart.UpdateQuantity(identity, 0) {
		t.Fatal("UpdateQuantity(0) returned false for existing line")
	}
	if !cart.IsEmpty() {
		t.Error("cart not empty after quantity set to zero")
	}
}

func TestCartRemove(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	cart := &Cart{}
	cart.Add(CartLine{ProductID: first, ProductName: "A", UnitPrice: 100})
	cart.Add(CartLine{ProductID: second, ProductName: "B", UnitPrice: 200})

	if !cart.Remove(first.String()) {
		t.Fatal("Remove returned false for existing line")
	}
	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != second {
		t.Error("wrong line removed")
	}
	if cart.Remove(first.String()) {
		t.Error("Remove returned true for already-removed line")
	}
}

func TestLineIdentity(t *testing.T) {
	productID := uuid.New()
	variantID := uuid.New()

	plain := CartLine{ProductID: productID}
	if plain.Identity() != productID.String() {
		t.Errorf("plain identity = %q, want product ID", plain.Identity())
	}

	variant := CartLine{ProductID: productID, VariantID: &variantID}
	want := productID.String() + ":" + variantID.String()
	if variant.Identity() != want {
		t.Errorf("variant identity = %q, want %q", variant.Identity(), want)
	}

	if got := LineIdentity(productID, &variantID); got != want {
		t.Errorf("LineIdentity = %q, want %q", got, want)
	}
}
