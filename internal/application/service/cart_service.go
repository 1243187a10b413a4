package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/salespoint-api/internal/domain/entity"
	"github.com/sangkips/salespoint-api/internal/domain/repository"
	"github.com/sangkips/salespoint-api/pkg/apperror"
)

// CartService owns the in-progress carts of all terminal sessions. Carts are
// explicit session state, never globals: every operation names the session it
// works on. A session has a single logical actor, but sessions share this
// process, so each cart is guarded by its own lock and a commit holds that
// lock while it snapshots lines.
type CartService struct {
	mu          sync.RWMutex
	sessions    map[string]*cartSession
	productRepo repository.ProductRepository
}

type cartSession struct {
	mu   sync.Mutex
	cart entity.Cart
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		sessions:    make(map[string]*cartSession),
		productRepo: productRepo,
	}
}

// snapshotCart returns a copy whose lines no longer alias the live cart
func snapshotCart(c *entity.Cart) *entity.Cart {
	out := &entity.Cart{}
	if len(c.Lines) > 0 {
		out.Lines = make([]entity.CartLine, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}

func (s *CartService) session(sessionID string) *cartSession {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[sessionID]; ok {
		return sess
	}
	sess = &cartSession{}
	s.sessions[sessionID] = sess
	return sess
}

// Add puts one unit of a product (or product variant) into the session's
// cart. The line snapshots the name and unit price at add time: the unit
// price of a variant line is the product's selling price plus the variant's
// additive modifier. An existing line with the same identity merges instead
// of duplicating. Persisted stock is never touched here.
func (s *CartService) Add(ctx context.Context, sessionID string, productID uuid.UUID, variantID *uuid.UUID) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	name := product.Name
	price := product.SellingPrice
	if variantID != nil {
		variant, err := s.productRepo.GetVariant(ctx, *variantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || variant.ProductID != productID {
			return nil, apperror.NewNotFoundError("Product variant")
		}
		name = product.Name + " (" + variant.OptionValue + ")"
		price += variant.PriceModifier
	}

	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.Add(entity.CartLine{
		ProductID:   productID,
		VariantID:   variantID,
		ProductName: name,
		UnitPrice:   price,
	})
	cart := snapshotCart(&sess.cart)
	return cart, nil
}

// UpdateQuantity sets the exact quantity of a line. A quantity of zero or
// less removes the line.
func (s *CartService) UpdateQuantity(sessionID, identity string, qty int) (*entity.Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.cart.UpdateQuantity(identity, qty) {
		return nil, apperror.NewNotFoundError("Cart line")
	}
	cart := snapshotCart(&sess.cart)
	return cart, nil
}

// Remove drops a line from the session's cart
func (s *CartService) Remove(sessionID, identity string) (*entity.Cart, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.cart.Remove(identity) {
		return nil, apperror.NewNotFoundError("Cart line")
	}
	cart := snapshotCart(&sess.cart)
	return cart, nil
}

// Get returns the session's current cart
func (s *CartService) Get(sessionID string) *entity.Cart {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotCart(&sess.cart)
}

// Lines returns a snapshot copy of the session's cart lines for committing
func (s *CartService) Lines(sessionID string) []entity.CartLine {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	lines := make([]entity.CartLine, len(sess.cart.Lines))
	copy(lines, sess.cart.Lines)
	return lines
}

// Total returns the session's cart total in cents
func (s *CartService) Total(sessionID string) int64 {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.cart.Total()
}

// Clear empties the session's cart. The committer calls this only after a
// fully successful commit.
func (s *CartService) Clear(sessionID string) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart.Clear()
}
