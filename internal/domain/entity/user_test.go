package entity

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Ada@Example.com ", " Ada ")

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "Ada", user.Name)
		assert.Zero(t, user.ID)
	})

	t.Run("Invalid email", func(t *testing.T) {
		for _, email := range []string{"", "   ", "not-an-email"} {
			user, err := NewUser(email, "Ada")
			assert.ErrorIs(t, err, errs.ErrInvalidRequest)
			assert.Nil(t, user)
		}
	})

	t.Run("Long name is left to the database", func(t *testing.T) {
		user, err := NewUser("a@example.com", strings.Repeat("x", 500))
		require.NoError(t, err)
		assert.Len(t, user.Name, 500)
	})
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(7, "ORD-1", 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), order.UserID)
	assert.Equal(t, int32(3), order.Quantity)

	testCases := []struct {
		name      string
		userID    uint64
		reference string
		quantity  int32
	}{
		{"Missing user", 0, "ORD-1", 1},
		{"Missing reference", 7, "", 1},
		{"Zero quantity", 7, "ORD-1", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := NewOrder(tc.userID, tc.reference, tc.quantity)
			assert.ErrorIs(t, err, errs.ErrInvalidRequest)
			assert.Nil(t, order)
		})
	}
}
