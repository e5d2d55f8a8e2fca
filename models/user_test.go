package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirathr/ecommerce/models"
	"github.com/chirathr/ecommerce/testutil"
)

func TestReduceWalletBalance(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		amount    int64
		ok        bool
		remaining int64
	}{
		{"partial debit", 100, 50, true, 50},
		{"full debit", 100, 100, true, 0},
		{"zero amount", 100, 0, false, 100},
		{"negative amount", 100, -50, false, 100},
		{"more than balance", 100, 150, false, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.NewTestDB(t)

			user := models.User{Username: "alice", Password: "x", WalletBalance: tt.balance}
			require.NoError(t, db.Create(&user).Error)

			ok, err := models.ReduceWalletBalance(db, user.ID, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)

			var got models.User
			require.NoError(t, db.First(&got, user.ID).Error)
			assert.Equal(t, tt.remaining, got.WalletBalance)
		})
	}
}

func TestReduceWalletBalanceUnknownUser(t *testing.T) {
	db := testutil.NewTestDB(t)

	ok, err := models.ReduceWalletBalance(db, 42, 10)
	require.NoError(t, err)
	assert.False(t, ok)
}
