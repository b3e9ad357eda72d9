package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_Total(t *testing.T) {
	cake := &Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	tart := &Product{ID: uuid.New(), Price: decimal.RequireFromString("5.00")}
	cart := &Cart{Items: []*CartItem{
		{ID: uuid.New(), ProductID: cake.ID, Product: cake, Quantity: 2},
		{ID: uuid.New(), ProductID: tart.ID, Product: tart, Quantity: 1},
	}}

	assert.Equal(t, "25.00", cart.Total().StringFixed(2))

	// Totals follow the live price.
	tart.Price = decimal.RequireFromString("6.00")
	assert.Equal(t, "26.00", cart.Total().StringFixed(2))

	assert.Equal(t, cart.Items[1], cart.FindItemByProduct(tart.ID))
	assert.Nil(t, cart.FindItem(uuid.New()))
	assert.True(t, (&Cart{}).Total().IsZero())
}
