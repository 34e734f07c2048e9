package services

import (
	"testing"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndApprovalFlow(t *testing.T) {
	e := newTestEnv(t)

	chef, err := e.Auth.Register(&RegisterReq{
		Email:     "Chef@Test.IO",
		Password:  "hunter2hunter2",
		FirstName: "Mona",
		Role:      entity.RoleChef,
		Specialty: "Egyptian home cooking",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef@test.io", chef.Email)
	assert.Equal(t, entity.AccountPendingApproval, chef.AccountStatus)

	// the role profile is created in the same tx
	p, err := e.Users.GetChefProfile(chef.ID)
	require.NoError(t, err)
	assert.Equal(t, "Egyptian home cooking", p.Specialty)

	t.Run("duplicate email is refused", func(t *testing.T) {
		_, err := e.Auth.Register(&RegisterReq{
			Email: "chef@test.io", Password: "hunter2hunter2", FirstName: "Other",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("pending applicants cannot log in", func(t *testing.T) {
		_, _, err := e.Auth.Login("chef@test.io", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrAccountPending)
	})

	t.Run("wrong password wins over account status", func(t *testing.T) {
		_, _, err := e.Auth.Login("chef@test.io", "nope")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("approval unlocks login and notifies", func(t *testing.T) {
		require.NoError(t, e.Admin.Approve(chef.ID))

		token, u, err := e.Auth.Login("chef@test.io", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, entity.AccountActive, u.AccountStatus)

		notifs, _ := e.Notifs.ListForRecipient(chef.ID, 5)
		require.NotEmpty(t, notifs)
		assert.Equal(t, "notify.account.approved.title", notifs[0].TitleKey)
	})

	t.Run("a decided account cannot be re-reviewed", func(t *testing.T) {
		assert.ErrorIs(t, e.Admin.Approve(chef.ID), ErrNotReviewable)
		assert.ErrorIs(t, e.Admin.Reject(chef.ID), ErrNotReviewable)
	})

	t.Run("suspend and reinstate", func(t *testing.T) {
		require.NoError(t, e.Admin.Suspend(chef.ID))
		_, _, err := e.Auth.Login("chef@test.io", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrAccountSuspended)

		require.NoError(t, e.Admin.Reinstate(chef.ID))
		_, _, err = e.Auth.Login("chef@test.io", "hunter2hunter2")
		assert.NoError(t, err)
	})
}

func TestRegisterRoles(t *testing.T) {
	e := newTestEnv(t)

	t.Run("customers are active immediately", func(t *testing.T) {
		u, err := e.Auth.Register(&RegisterReq{
			Email: "cust@test.io", Password: "hunter2hunter2", FirstName: "Ali",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleCustomer, u.Role)
		assert.Equal(t, entity.AccountActive, u.AccountStatus)

		_, _, err = e.Auth.Login("cust@test.io", "hunter2hunter2")
		assert.NoError(t, err)
	})

	t.Run("delivery applicants get a profile and wait", func(t *testing.T) {
		u, err := e.Auth.Register(&RegisterReq{
			Email: "drv@test.io", Password: "hunter2hunter2", FirstName: "Sara",
			Role: entity.RoleDelivery, VehicleType: "motorbike", LicensePlate: "ق ص 1234",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.AccountPendingApproval, u.AccountStatus)

		p, err := e.Users.GetDeliveryProfile(u.ID)
		require.NoError(t, err)
		assert.Equal(t, "motorbike", p.VehicleType)
	})

	t.Run("rejected applicants stay locked out", func(t *testing.T) {
		u, err := e.Auth.Register(&RegisterReq{
			Email: "reject@test.io", Password: "hunter2hunter2", FirstName: "Nour",
			Role: entity.RoleChef,
		})
		require.NoError(t, err)
		require.NoError(t, e.Admin.Reject(u.ID))

		_, _, err = e.Auth.Login("reject@test.io", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrAccountRejected)
	})
}
