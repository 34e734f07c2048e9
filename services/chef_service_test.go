package services

import (
	"testing"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAvailability(t *testing.T) {
	t.Run("rejects unknown values", func(t *testing.T) {
		e := newTestEnv(t)
		chef := e.mustCreateChef(t, "chef@test.io", entity.ChefAvailable)
		err := e.Chef.SetAvailability(chef.ID, "on_vacation")
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("busy to available reports the waitlist once", func(t *testing.T) {
		e := newTestEnv(t)
		customer := e.mustCreateUser(t, "cust@test.io", entity.RoleCustomer)
		chef := e.mustCreateChef(t, "chef@test.io", entity.ChefBusy)
		dish := e.mustCreateDish(t, chef.ID, "Molokhia", 8000)

		// two orders land on the waitlist while the chef is busy
		for i := 0; i < 2; i++ {
			e.mustCreateOrder(t, customer.ID, dish.ID)
		}

		require.NoError(t, e.Chef.SetAvailability(chef.ID, entity.ChefAvailable))

		p, err := e.Users.GetChefProfile(chef.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ChefAvailable, p.AvailabilityStatus)

		notifs, _ := e.Notifs.ListForRecipient(chef.ID, 5)
		require.NotEmpty(t, notifs)
		assert.Equal(t, KeyWaitlistPending+".title", notifs[0].TitleKey)
		assert.Contains(t, notifs[0].Params, `"count":2`)

		// waitlisted orders stay put, nothing is re-driven
		var waiting int64
		e.DB.Model(&entity.Order{}).
			Where("chef_id = ? AND status = ?", chef.ID, entity.StatusWaitingForChef).
			Count(&waiting)
		assert.EqualValues(t, 2, waiting)
	})

	t.Run("no waitlist note when nothing is waiting", func(t *testing.T) {
		e := newTestEnv(t)
		chef := e.mustCreateChef(t, "chef@test.io", entity.ChefBusy)
		require.NoError(t, e.Chef.SetAvailability(chef.ID, entity.ChefAvailable))
		notifs, _ := e.Notifs.ListForRecipient(chef.ID, 5)
		assert.Empty(t, notifs)
	})

	t.Run("available to closed is silent", func(t *testing.T) {
		e := newTestEnv(t)
		chef := e.mustCreateChef(t, "chef@test.io", entity.ChefAvailable)
		require.NoError(t, e.Chef.SetAvailability(chef.ID, entity.ChefClosed))
		notifs, _ := e.Notifs.ListForRecipient(chef.ID, 5)
		assert.Empty(t, notifs)
	})
}
