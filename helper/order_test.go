package helper

import (
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	items := model.OrderItems{
		{Name: "Burger", Price: 5.00, Quantity: 2},
	}
	assert.Equal(t, 10.00, ComputeTotal(items))

	items = append(items, model.OrderItem{Name: "Masala Fries", Price: 2.50, Quantity: 3})
	assert.Equal(t, 17.50, ComputeTotal(items))

	assert.Equal(t, 0.0, ComputeTotal(nil))
}

func TestVerifyPin(t *testing.T) {
	assert.True(t, VerifyPin("4821", "4821"))
	assert.False(t, VerifyPin("0000", "4821"))
	assert.False(t, VerifyPin("", "4821"))
	// exact match only, no normalization
	assert.False(t, VerifyPin(" 4821", "4821"))
	assert.False(t, VerifyPin("4821 ", "4821"))
}

func TestSnapshotMenuItem(t *testing.T) {
	menuItem := model.MenuItem{
		DTO:         model.DTO{ID: 3},
		Name:        "Classic Burger",
		Description: "Beef patty, cheddar, house sauce",
		Price:       5.00,
		Category:    "Burgers",
		ImageUrl:    "https://cdn.example.com/burger.png",
		IsAvailable: true,
	}

	item, err := SnapshotMenuItem(menuItem, 2)
	require.NoError(t, err)

	assert.Equal(t, uint(3), item.MenuItemID)
	assert.Equal(t, "Classic Burger", item.Name)
	assert.Equal(t, "Beef patty, cheddar, house sauce", item.Description)
	assert.Equal(t, 5.00, item.Price)
	assert.Equal(t, "Burgers", item.Category)
	assert.Equal(t, "https://cdn.example.com/burger.png", item.ImageUrl)
	assert.Equal(t, 2, item.Quantity)
}

func TestSnapshotMenuItemRejectsUnavailable(t *testing.T) {
	menuItem := model.MenuItem{
		DTO:         model.DTO{ID: 4},
		Name:        "Mango Lassi",
		Price:       3.00,
		IsAvailable: false,
	}

	_, err := SnapshotMenuItem(menuItem, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Mango Lassi")
}

func TestOrderTotalFrozenAgainstMenuPriceChange(t *testing.T) {
	menuItem := model.MenuItem{
		DTO:         model.DTO{ID: 3},
		Name:        "Classic Burger",
		Price:       5.00,
		IsAvailable: true,
	}

	item, err := SnapshotMenuItem(menuItem, 2)
	require.NoError(t, err)

	order := model.Order{
		Items:      model.OrderItems{item},
		TotalPrice: ComputeTotal(model.OrderItems{item}),
	}
	assert.Equal(t, 10.00, order.TotalPrice)

	// price bump after placement never reaches the stored snapshot
	menuItem.Price = 9.00
	assert.Equal(t, 5.00, order.Items[0].Price)
	assert.Equal(t, 10.00, ComputeTotal(order.Items))
}

func TestAppliedTransition(t *testing.T) {
	placed := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)
	advanced := placed.Add(10 * time.Minute)

	order := model.Order{
		ID:               "5f0c2a9e-1111-4f9a-9c3d-abcdefabcdef",
		TokenNumber:      7,
		TotalPrice:       10.00,
		Status:           constants.STATUS_PENDING,
		CustomerName:     "Guest",
		VerificationCode: "4821",
		CreatedAt:        placed,
		UpdatedAt:        placed,
	}

	got := AppliedTransition(order, constants.STATUS_PREPARING, advanced)

	assert.Equal(t, constants.STATUS_PREPARING, got.Status)
	assert.Equal(t, advanced, got.UpdatedAt)
	// everything else stays as placed
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, 7, got.TokenNumber)
	assert.Equal(t, 10.00, got.TotalPrice)
	assert.Equal(t, "4821", got.VerificationCode)
	assert.Equal(t, placed, got.CreatedAt)
}

func TestVerificationCodeFrozenAgainstPinRotation(t *testing.T) {
	order := model.Order{VerificationCode: "4821"}

	// rotation replaces only the shop setting; the order keeps the code it
	// was accepted with
	rotatedPin := "9135"
	assert.Equal(t, "4821", order.VerificationCode)

	// a checkout still holding the old PIN is rejected against the rotated one
	assert.False(t, VerifyPin(order.VerificationCode, rotatedPin))
}
