package cart

import "sync"

// Item is one line in a shopping cart. IDs are unique per cart; a quantity
// below 1 never survives a mutation (the item is removed instead).
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}

// Store holds the pending selection of one shopper. It is an explicit state
// container: mutations go through methods, subscribers are notified after
// every mutation, and persistence is handled by a Storage adapter outside
// of the store itself.
type Store struct {
	mu          sync.Mutex
	items       []Item
	subscribers []func(items []Item)
}

func NewStore() *Store {
	return &Store{}
}

// NewStoreWith seeds a store with previously persisted items.
func NewStoreWith(items []Item) *Store {
	s := &Store{}
	s.items = append(s.items, items...)
	return s
}

// Subscribe registers fn to be called with an item snapshot after every
// mutation. The UI layer uses this to open the cart panel on add.
func (s *Store) Subscribe(fn func(items []Item)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem appends item to the cart, or increments the quantity of an
// existing entry with the same ID. A non-positive quantity counts as 1.
func (s *Store) AddItem(item Item) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.notifyLocked()
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, item)
	s.notifyLocked()
	s.mu.Unlock()
}

// RemoveItem deletes the entry with the given ID. Removing an absent ID is
// a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifyLocked()
			return
		}
	}
}

// UpdateQuantity sets the quantity of the entry with the given ID. A
// quantity of zero or less removes the entry.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.notifyLocked()
			return
		}
	}
}

// Clear empties the cart. Called after a successful purchase.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.notifyLocked()
}

// Items returns a snapshot of the current line items.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItems is the sum of all quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all line items.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *Store) snapshotLocked() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}
