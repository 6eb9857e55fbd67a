package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/Niharikabutola/ECO-CART/models"
)

// ErrInvalidQuantity rejects add requests with a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// Event names published by the cart service.
const (
	EventOrderCreated     = "order_created"
	EventMilestoneCrossed = "milestone_crossed"
)

// ItemResolver resolves a product id into an enriched product. Implemented
// by catalog.Client; tests substitute their own.
type ItemResolver interface {
	Product(ctx context.Context, id int) (models.Product, error)
}

// Notifier receives one-shot domain events (milestone crossings, new orders).
type Notifier interface {
	Publish(event string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, any) {}

// CartService owns the single process-wide cart, the append-only order log
// and the monotonic order-id counter. One mutex serializes every mutation;
// the catalog network call in Add happens outside the critical section so a
// slow provider never blocks the cart.
type CartService struct {
	resolver ItemResolver
	notifier Notifier

	mu          sync.Mutex
	items       map[int]models.CartItem
	touchOrder  []int // item ids, least-recently-touched first
	orders      []models.Order
	nextOrderID int
}

func NewCartService(resolver ItemResolver, notifier Notifier) *CartService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &CartService{
		resolver:    resolver,
		notifier:    notifier,
		items:       make(map[int]models.CartItem),
		nextOrderID: 1,
	}
}

// Add puts quantity units of the identified product into the cart. A product
// already in the cart keeps the item fields of its first enrichment and only
// has its quantity incremented; a new product is resolved via the catalog
// first, without holding the cart lock.
func (s *CartService) Add(ctx context.Context, id, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var fresh models.Product
	resolved := false

	for {
		s.mu.Lock()
		if entry, ok := s.items[id]; ok {
			before := s.ecoPointsLocked()
			entry.Quantity += quantity
			s.items[id] = entry
			s.touchLocked(id)
			snap := s.snapshotLocked()
			after := s.ecoPointsLocked()
			s.mu.Unlock()
			s.notifyMilestone(before, after)
			return snap, nil
		}
		if resolved {
			before := s.ecoPointsLocked()
			s.items[id] = models.CartItem{Product: fresh, Quantity: quantity}
			s.touchLocked(id)
			snap := s.snapshotLocked()
			after := s.ecoPointsLocked()
			s.mu.Unlock()
			s.notifyMilestone(before, after)
			return snap, nil
		}
		s.mu.Unlock()

		p, err := s.resolver.Product(ctx, id)
		if err != nil {
			return nil, err
		}
		fresh = p
		resolved = true
	}
}

// UpdateQuantity sets the quantity of an entry to exactly quantity. Absent
// ids are a no-op; quantity <= 0 removes the entry.
func (s *CartService) UpdateQuantity(id, quantity int) models.Cart {
	s.mu.Lock()
	entry, ok := s.items[id]
	if !ok {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	before := s.ecoPointsLocked()
	if quantity <= 0 {
		delete(s.items, id)
		s.untouchLocked(id)
	} else {
		entry.Quantity = quantity
		s.items[id] = entry
		s.touchLocked(id)
	}
	snap := s.snapshotLocked()
	after := s.ecoPointsLocked()
	s.mu.Unlock()

	s.notifyMilestone(before, after)
	return snap
}

// Remove deletes the entry if present; removing an absent id is a no-op.
func (s *CartService) Remove(id int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	s.untouchLocked(id)
	return s.snapshotLocked()
}

// Snapshot returns a copy of the current cart keyed by decimal product id.
func (s *CartService) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Checkout freezes the cart into an immutable order and empties the cart.
// Totals are recomputed server-side from the authoritative snapshot; the
// caller-supplied values are only compared against them, and a mismatch is
// logged and reported, never trusted. An empty cart checks out into a
// zero-value order.
func (s *CartService) Checkout(clientTotal float64, clientEcoPoints int) (models.Order, bool) {
	s.mu.Lock()
	items := make([]models.CartItem, 0, len(s.items))
	for _, id := range s.touchOrder {
		items = append(items, s.items[id])
	}

	snap := s.snapshotLocked()
	order := models.Order{
		ID:          s.nextOrderID,
		Items:       items,
		TotalAmount: TotalPrice(snap),
		EcoPoints:   TotalEcoPoints(snap),
		Date:        time.Now().UTC(),
	}
	s.nextOrderID++
	s.orders = append(s.orders, order)

	s.items = make(map[int]models.CartItem)
	s.touchOrder = nil
	s.mu.Unlock()

	mismatch := math.Abs(clientTotal-order.TotalAmount) > 0.01 || clientEcoPoints != order.EcoPoints
	if mismatch {
		log.Printf("⚠️ order %d: client totals (%.2f, %d eco) disagree with server totals (%.2f, %d eco); using server values",
			order.ID, clientTotal, clientEcoPoints, order.TotalAmount, order.EcoPoints)
	}

	s.notifier.Publish(EventOrderCreated, order)
	return order, mismatch
}

// Orders returns a copy of the append-only order log, oldest first.
func (s *CartService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *CartService) snapshotLocked() models.Cart {
	snap := make(models.Cart, len(s.items))
	for id, entry := range s.items {
		snap[strconv.Itoa(id)] = entry
	}
	return snap
}

func (s *CartService) ecoPointsLocked() int {
	total := 0
	for _, entry := range s.items {
		total += entry.Quantity * entry.Product.EcoPoints
	}
	return total
}

// touchLocked moves id to the tail of the touch order, so entry listings
// follow the order items were last added or updated.
func (s *CartService) touchLocked(id int) {
	s.untouchLocked(id)
	s.touchOrder = append(s.touchOrder, id)
}

func (s *CartService) untouchLocked(id int) {
	for i, existing := range s.touchOrder {
		if existing == id {
			s.touchOrder = append(s.touchOrder[:i], s.touchOrder[i+1:]...)
			return
		}
	}
}

func (s *CartService) notifyMilestone(before, after int) {
	if CrossedMilestone(before, after) {
		s.notifier.Publish(EventMilestoneCrossed, map[string]any{
			"ecoPoints": after,
			"threshold": MilestoneThreshold,
		})
	}
}
