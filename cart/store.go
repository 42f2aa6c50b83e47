package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/storage"
)

// Store is the ordered list of cart line items. Every mutation persists
// the snapshot before returning, so the stored state and the in-memory
// state never diverge between handler invocations.
type Store struct {
	mu    sync.Mutex
	items []models.CartLineItem
	kv    storage.KV
}

// NewStore rehydrates the cart from its storage snapshot. A missing or
// unreadable snapshot yields an empty cart, never an error.
func NewStore(kv storage.KV) *Store {
	s := &Store{kv: kv}
	raw, ok, err := kv.Get(storage.KeyCart)
	if err != nil {
		log.Printf("cart snapshot read failed, starting empty: %v", err)
		return s
	}
	if ok {
		var items []models.CartLineItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			log.Printf("cart snapshot unreadable, starting empty: %v", err)
			return s
		}
		s.items = items
	}
	return s
}

// merge is the single merge-or-create primitive shared by Add and AddAll:
// an existing line for the product gains one unit, otherwise a new line
// with quantity 1 is appended at the end.
func (s *Store) merge(p models.Product) {
	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartLineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Img:       p.Img,
		Quantity:  1,
	})
}

// Add merges one unit of the product into the cart.
func (s *Store) Add(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merge(p)
	s.persist()
}

// AddAll merges one unit of each product, in order, under a single
// snapshot write. Used for kit adds; the caller has already dropped ids
// missing from the catalog.
func (s *Store) AddAll(ps []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range ps {
		s.merge(p)
	}
	s.persist()
}

// UpdateQuantity adds delta to the matching line's quantity. A quantity
// driven to zero or below removes the line. No matching line is a silent
// no-op, for positive deltas too.
func (s *Store) UpdateQuantity(productID uint, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		s.items[i].Quantity += delta
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		s.persist()
		return
	}
}

// Remove deletes the line for the product, if present.
func (s *Store) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLineItem(nil), s.items...)
}

// Count is the total unit count across all lines, for the cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// persist writes the snapshot. Callers hold the lock. A write failure is
// logged and the in-memory state stands; the next mutation retries.
func (s *Store) persist() {
	items := s.items
	if items == nil {
		items = []models.CartLineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart snapshot encode failed: %v", err)
		return
	}
	if err := s.kv.Set(storage.KeyCart, string(data)); err != nil {
		log.Printf("cart snapshot write failed: %v", err)
	}
}
