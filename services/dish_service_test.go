package services

import (
	"testing"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A dish created hidden must be stored hidden: off the storefront and
// not orderable. The availability flag may not be rewritten by a
// column default on insert.
func TestCreateDishUnavailable(t *testing.T) {
	e := newTestEnv(t)
	customer := e.mustCreateUser(t, "cust@test.io", entity.RoleCustomer)
	chef := e.mustCreateChef(t, "chef@test.io", entity.ChefAvailable)

	hidden := false
	d, err := e.Dish.CreateForChef(chef.ID, &DishIn{
		Name: "Fatta", Price: 12000, IsAvailable: &hidden,
	})
	require.NoError(t, err)

	var got entity.Dish
	require.NoError(t, e.DB.First(&got, d.ID).Error)
	assert.False(t, got.IsAvailable)

	storefront, err := e.Dish.ListForStorefront(chef.ID)
	require.NoError(t, err)
	assert.Empty(t, storefront)

	// the chef's own listing still shows it
	mine, err := e.Dish.ListForChef(chef.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = e.Order.Create(customer.ID, &CreateOrderReq{
		DishID: d.ID, Quantity: 1, DeliveryAddress: "12 Nile St",
	})
	assert.ErrorIs(t, err, ErrDishUnavailable)
}

// Flipping availability through an update must stick in both
// directions.
func TestUpdateDishAvailability(t *testing.T) {
	e := newTestEnv(t)
	chef := e.mustCreateChef(t, "chef@test.io", entity.ChefAvailable)
	d := e.mustCreateDish(t, chef.ID, "Koshari", 10000)

	off := false
	_, err := e.Dish.UpdateForChef(chef.ID, d.ID, &DishIn{
		Name: d.Name, Price: d.Price, IsAvailable: &off,
	})
	require.NoError(t, err)

	storefront, err := e.Dish.ListForStorefront(chef.ID)
	require.NoError(t, err)
	assert.Empty(t, storefront)

	on := true
	_, err = e.Dish.UpdateForChef(chef.ID, d.ID, &DishIn{
		Name: d.Name, Price: d.Price, IsAvailable: &on,
	})
	require.NoError(t, err)

	storefront, err = e.Dish.ListForStorefront(chef.ID)
	require.NoError(t, err)
	assert.Len(t, storefront, 1)
}
