package postgres

import (
	"testing"
	"time"

	"sweets/internal/domain/entity"
	"sweets/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderDomain_StoresFrozenSubtotals(t *testing.T) {
	order := &entity.Order{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		CartID:  uuid.New(),
		Status:  entity.OrderStatusPending,
		Total:   decimal.RequireFromString("25.00"),
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Brigadeiro", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Queque", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1},
		},
	}

	orderM := fromOrderDomain(order)

	require.Len(t, orderM.Items, 2)
	assert.Equal(t, "pending", orderM.Status)
	assert.True(t, decimal.RequireFromString("20.00").Equal(orderM.Items[0].Subtotal))
	assert.True(t, decimal.RequireFromString("5.00").Equal(orderM.Items[1].Subtotal))
	for _, item := range orderM.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestToCartDomain_TotalUsesLoadedProducts(t *testing.T) {
	cartID := uuid.New()
	cartM := &model.CartModel{
		ID:      cartID,
		OwnerID: uuid.New(),
		Items: []*model.CartItemModel{
			{ID: uuid.New(), CartID: cartID, Quantity: 2, Product: &model.ProductModel{Name: "A", Price: decimal.RequireFromString("10.00")}},
			{ID: uuid.New(), CartID: cartID, Quantity: 1, Product: &model.ProductModel{Name: "B", Price: decimal.RequireFromString("5.00")}},
		},
	}

	cart := toCartDomain(cartM)

	assert.True(t, decimal.NewFromInt(25).Equal(cart.Total()))
	assert.False(t, cart.Ordered)
}

func TestToReviewDomain_CarriesUsername(t *testing.T) {
	now := time.Now()
	reviewM := &model.ReviewModel{
		ID:        uuid.New(),
		Stars:     4,
		Customer:  &model.UserModel{Username: "ana"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	review := toReviewDomain(reviewM)

	assert.Equal(t, "ana", review.Username)
	assert.Equal(t, 4, review.Stars)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "bolo", escapeLike("bolo"))
}
