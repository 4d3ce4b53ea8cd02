package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItem_NewAndIncrement(t *testing.T) {
	store := NewStore()

	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})
	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})

	items := store.Items()
	assert.Len(t, items, 1, "same id must not create a duplicate entry")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	store := NewStore()

	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499, Quantity: 0})

	assert.Equal(t, 1, store.TotalItems())
}

func TestAddItem_HonorsInitialQuantity(t *testing.T) {
	store := NewStore()

	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499, Quantity: 3})

	assert.Equal(t, 3, store.TotalItems())
}

func TestUpdateQuantity_ZeroAndNegativeRemove(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		store := NewStore()
		store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})

		store.UpdateQuantity("p1", quantity)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
	}
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	store := NewStore()
	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})

	store.RemoveItem("does-not-exist")

	assert.Len(t, store.Items(), 1)
}

func TestTotals_RecomputedAfterEveryMutation(t *testing.T) {
	store := NewStore()

	verify := func() {
		wantItems := 0
		wantPrice := 0.0
		for _, item := range store.Items() {
			wantItems += item.Quantity
			wantPrice += item.Price * float64(item.Quantity)
		}
		assert.Equal(t, wantItems, store.TotalItems())
		assert.InDelta(t, wantPrice, store.TotalPrice(), 1e-9)
	}

	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})
	verify()
	store.AddItem(Item{ID: "p2", Name: "Online-Shop", Price: 1499, Quantity: 2})
	verify()
	store.UpdateQuantity("p1", 5)
	verify()
	store.RemoveItem("p2")
	verify()
	store.UpdateQuantity("p1", 0)
	verify()

	assert.Equal(t, 0, store.TotalItems())
	assert.Zero(t, store.TotalPrice())
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	store := NewStore()

	var notified [][]Item
	store.Subscribe(func(items []Item) {
		notified = append(notified, items)
	})

	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})
	store.UpdateQuantity("p1", 3)
	store.Clear()

	assert.Len(t, notified, 3)
	assert.Equal(t, 1, notified[0][0].Quantity)
	assert.Equal(t, 3, notified[1][0].Quantity)
	assert.Empty(t, notified[2])
}

func TestClear_EmptiesCart(t *testing.T) {
	store := NewStore()
	store.AddItem(Item{ID: "p1", Name: "Website Basic", Price: 499})
	store.AddItem(Item{ID: "p2", Name: "Online-Shop", Price: 1499})

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalPrice())
}
