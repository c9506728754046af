package services

import (
	"testing"

	"github.com/Akhilus26/firebased-quickbite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletTopUp(t *testing.T) {
	db := newTestDB(t)
	svc := NewWalletService(repository.NewWalletRepository(db))
	user := seedTestUser(t, db)

	w, err := svc.Balance(user.ID)
	require.NoError(t, err)
	assert.Zero(t, w.Balance)

	w, err = svc.TopUp(user.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(250), w.Balance)

	_, err = svc.TopUp(user.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.TopUp(user.ID, -10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
