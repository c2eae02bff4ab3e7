package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/client"
	mock_walletapi "github.com/arenapay/walletflow/pkg/client/mock"
	"github.com/arenapay/walletflow/pkg/entities"
	"github.com/arenapay/walletflow/pkg/store"
)

const returnMarker = "payment/return"

func newFlow(t *testing.T) (*Flow, *mock_walletapi.MockWalletAPI, *store.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock_walletapi.NewMockWalletAPI(ctrl)
	wallet := store.NewStore(api, nil)
	return NewFlow(api, wallet, ReturnMarkerObserver{Marker: returnMarker}, nil), api, wallet
}

func openSession(t *testing.T, f *Flow, api *mock_walletapi.MockWalletAPI, amount int64) {
	t.Helper()
	api.EXPECT().InitiateAddCash(gomock.Any(), gomock.Any()).Return(&client.PaymentHandle{
		PaymentSessionID: "ps_123",
		OrderID:          "ord_456",
	}, nil)
	_, err := f.Initiate(context.Background(), decimal.NewFromInt(amount))
	require.NoError(t, err)
	require.NoError(t, f.CheckoutOpened())
}

func TestReturnMarkerObserver(t *testing.T) {
	o := ReturnMarkerObserver{Marker: returnMarker}

	assert.Equal(t, SignalReturn, o.OnNavigate("https://app.example.com/payment/return?order=1").Kind)
	assert.Equal(t, SignalOther, o.OnNavigate("https://checkout.example.com/card-entry").Kind)
	assert.Equal(t, SignalOther, ReturnMarkerObserver{}.OnNavigate("anything").Kind)
}

func TestInitiateRejectsNonPositiveAmount(t *testing.T) {
	f, _, _ := newFlow(t)

	_, err := f.Initiate(context.Background(), decimal.Zero)
	assert.True(t, types.IsWalletError(err, types.ErrInvalidAmount))

	_, err = f.Initiate(context.Background(), decimal.NewFromInt(-50))
	assert.True(t, types.IsWalletError(err, types.ErrInvalidAmount))
}

func TestSettlementAppliesSnapshotWithoutRefresh(t *testing.T) {
	f, api, wallet := newFlow(t)
	openSession(t, f, api, 500)

	settled := &entities.WalletAccount{
		AccountNumber:    "1234567890",
		AvailableBalance: decimal.NewFromInt(1500),
	}
	api.EXPECT().VerifyAddCash(gomock.Any(), "ord_456").Return(settled, nil)
	// Only the transaction list is fetched; no GetWallet expectation means a
	// redundant snapshot refresh would fail the test
	api.EXPECT().GetTransactions(gomock.Any()).Return(nil, nil)

	signal, err := f.ObserveNavigation(context.Background(), "https://app.example.com/payment/return?order=ord_456")
	require.NoError(t, err)
	assert.Equal(t, SignalReturn, signal.Kind)
	assert.Equal(t, StateSettled, f.State())

	account, ok := wallet.Account()
	require.True(t, ok)
	assert.True(t, account.AvailableBalance.Equal(decimal.NewFromInt(1500)))
}

func TestVerifyCalledAtMostOncePerSession(t *testing.T) {
	f, api, _ := newFlow(t)
	openSession(t, f, api, 500)

	api.EXPECT().VerifyAddCash(gomock.Any(), "ord_456").Return(&entities.WalletAccount{}, nil).Times(1)
	api.EXPECT().GetTransactions(gomock.Any()).Return(nil, nil)

	returnURL := "https://app.example.com/payment/return"
	_, err := f.ObserveNavigation(context.Background(), returnURL)
	require.NoError(t, err)

	// The provider fires the return navigation again; nothing may happen
	_, err = f.ObserveNavigation(context.Background(), returnURL)
	require.NoError(t, err)
	_, err = f.ObserveNavigation(context.Background(), returnURL)
	require.NoError(t, err)

	assert.Equal(t, StateSettled, f.State())
}

func TestNonReturnNavigationIsIgnored(t *testing.T) {
	f, api, _ := newFlow(t)
	openSession(t, f, api, 500)

	signal, err := f.ObserveNavigation(context.Background(), "https://checkout.example.com/otp-entry")
	require.NoError(t, err)
	assert.Equal(t, SignalOther, signal.Kind)
	assert.Equal(t, StateAwaitingCompletion, f.State())
}

func TestVerifyFailureIsUnconfirmedNotFailedPayment(t *testing.T) {
	f, api, wallet := newFlow(t)
	openSession(t, f, api, 500)

	wallet.ApplySnapshot(&entities.WalletAccount{AvailableBalance: decimal.NewFromInt(1000)})

	api.EXPECT().VerifyAddCash(gomock.Any(), "ord_456").
		Return(nil, types.NewWalletError(types.ErrBusinessRule, "session not settled"))

	_, err := f.ObserveNavigation(context.Background(), "https://app.example.com/payment/return")
	assert.True(t, types.IsWalletError(err, types.ErrVerifyUnconfirmed),
		"a failed verify must not be conflated with a failed payment")
	assert.Equal(t, StateFailed, f.State())

	// Wallet snapshot untouched on failure
	account, _ := wallet.Account()
	assert.True(t, account.AvailableBalance.Equal(decimal.NewFromInt(1000)))
}

func TestAbandonReleasesSessionWithoutVerify(t *testing.T) {
	f, api, _ := newFlow(t)
	openSession(t, f, api, 500)

	// No VerifyAddCash expectation: verifying an abandoned session is
	// explicitly disallowed
	require.NoError(t, f.Abandon())
	assert.Equal(t, StateAbandoned, f.State())

	_, ok := f.Handle()
	assert.False(t, ok, "abandonment must release the session identifiers")

	// A return event arriving after abandonment does nothing
	_, err := f.ObserveNavigation(context.Background(), "https://app.example.com/payment/return")
	require.NoError(t, err)
	assert.Equal(t, StateAbandoned, f.State())
}

func TestReentrancyGuard(t *testing.T) {
	f, api, _ := newFlow(t)
	openSession(t, f, api, 500)

	_, err := f.Initiate(context.Background(), decimal.NewFromInt(100))
	assert.True(t, types.IsWalletError(err, types.ErrInvalidState),
		"only one payment session may be open per wallet")

	// After a terminal state a new session is allowed
	require.NoError(t, f.Abandon())
	api.EXPECT().InitiateAddCash(gomock.Any(), gomock.Any()).Return(&client.PaymentHandle{
		PaymentSessionID: "ps_789",
		OrderID:          "ord_789",
	}, nil)
	handle, err := f.Initiate(context.Background(), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "ps_789", handle.PaymentSessionID)
}

func TestFailedInitiateStaysIdle(t *testing.T) {
	f, api, _ := newFlow(t)

	api.EXPECT().InitiateAddCash(gomock.Any(), gomock.Any()).
		Return(nil, types.NewWalletError(types.ErrBusinessRule, "duplicate payment session"))

	_, err := f.Initiate(context.Background(), decimal.NewFromInt(500))
	assert.True(t, types.IsWalletError(err, types.ErrBusinessRule))
	assert.Equal(t, StateIdle, f.State())
}
