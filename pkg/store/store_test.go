package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_walletapi "github.com/arenapay/walletflow/pkg/client/mock"
	"github.com/arenapay/walletflow/pkg/entities"
)

func snapshot(available int64) *entities.WalletAccount {
	return &entities.WalletAccount{
		AccountNumber:       "1234567890",
		AvailableBalance:    decimal.NewFromInt(available),
		WithdrawableBalance: decimal.NewFromInt(available),
		LockedBalance:       decimal.Zero,
	}
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	api.EXPECT().GetWallet(gomock.Any()).Return(snapshot(1000), nil)

	require.NoError(t, s.Refresh(context.Background()))

	account, ok := s.Account()
	require.True(t, ok)
	assert.True(t, account.AvailableBalance.Equal(decimal.NewFromInt(1000)))
}

func TestRefreshFailureKeepsPriorSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	api.EXPECT().GetWallet(gomock.Any()).Return(snapshot(1000), nil)
	api.EXPECT().GetWallet(gomock.Any()).Return(nil, errors.New("network down"))

	require.NoError(t, s.Refresh(context.Background()))
	assert.Error(t, s.Refresh(context.Background()))

	// The stale snapshot remains readable
	account, ok := s.Account()
	require.True(t, ok)
	assert.True(t, account.AvailableBalance.Equal(decimal.NewFromInt(1000)))
}

func TestCancelledContextDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	ctx, cancel := context.WithCancel(context.Background())

	// The call completes, but the owning screen is gone by then
	api.EXPECT().GetWallet(gomock.Any()).DoAndReturn(func(context.Context) (*entities.WalletAccount, error) {
		cancel()
		return snapshot(9999), nil
	})

	err := s.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, ok := s.Account()
	assert.False(t, ok, "late result must not mutate shared state")
}

func TestRefreshTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	txns := []*entities.Transaction{
		{ID: "t1", Type: entities.TransactionTypeDeposit, Amount: decimal.NewFromInt(500)},
	}
	api.EXPECT().GetTransactions(gomock.Any()).Return(txns, nil)

	require.NoError(t, s.RefreshTransactions(context.Background()))
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "t1", s.Transactions()[0].ID)
}

func TestApplySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	s.ApplySnapshot(snapshot(1500))

	account, ok := s.Account()
	require.True(t, ok)
	assert.True(t, account.AvailableBalance.Equal(decimal.NewFromInt(1500)))

	// Nil snapshots are ignored
	s.ApplySnapshot(nil)
	_, ok = s.Account()
	assert.True(t, ok)
}

func TestAutoRefreshStopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	api.EXPECT().GetWallet(gomock.Any()).Return(snapshot(100), nil).AnyTimes()
	api.EXPECT().GetTransactions(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s.StartAutoRefresh(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, ok := s.Account()
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.StopAutoRefresh()
	// Let any in-flight tick drain before the controller verifies
	time.Sleep(20 * time.Millisecond)

	// Restarting after a stop is allowed
	s.StartAutoRefresh(context.Background(), time.Hour)
	s.StopAutoRefresh()
}

func TestAccountReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	s := NewStore(api, nil)

	s.ApplySnapshot(snapshot(100))

	account, _ := s.Account()
	account.AvailableBalance = decimal.NewFromInt(0)

	fresh, _ := s.Account()
	assert.True(t, fresh.AvailableBalance.Equal(decimal.NewFromInt(100)), "readers must not mutate the cache")
}
