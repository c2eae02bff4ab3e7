package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Provider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := session.NewProvider(&session.Session{Token: "opaque-token", UserID: "user-1"})
	return NewClient(server.URL, 5*time.Second, sessions, nil), sessions, server
}

func TestGetWalletParsesSnapshot(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wallet/my", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"wallet_account_no": "1234567890",
			"available_balance": "1500.50",
			"withdrawable_balance": "1200",
			"locked_balance": "300.50"
		}`))
	})

	account, err := c.GetWallet(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1234567890", account.AccountNumber)
	assert.True(t, account.AvailableBalance.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, account.WithdrawableBalance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, account.LockedBalance.Equal(decimal.RequireFromString("300.50")))
	assert.False(t, account.FetchedAt.IsZero())
}

func TestUnauthorizedSignsOut(t *testing.T) {
	c, sessions, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetWallet(context.Background())
	assert.True(t, types.IsWalletError(err, types.ErrUnauthorized))

	// The provider must now be signed out
	_, err = sessions.Current()
	assert.True(t, types.IsWalletError(err, types.ErrSignedOut))
}

func TestBusinessErrorSurfacedVerbatim(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient balance"})
	})

	err := c.SendGift(context.Background(), SendGiftRequest{
		ReceiverAccountNo: "9876543210",
		Amount:            decimal.NewFromInt(100),
		Pin:               "123456",
	})

	var walletErr *types.WalletError
	require.True(t, types.As(err, &walletErr))
	assert.Equal(t, types.ErrBusinessRule, walletErr.Code)
	assert.Equal(t, "insufficient balance", walletErr.Message)
}

func TestSignedOutSessionSkipsNetwork(t *testing.T) {
	called := false
	c, sessions, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	sessions.SignOut()

	_, err := c.GetWallet(context.Background())
	assert.True(t, types.IsWalletError(err, types.ErrSignedOut))
	assert.False(t, called, "no request should reach the server without a session")
}

func TestInitiateAddCash(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/add-cash/initiate", r.URL.Path)

		// decimal.Decimal marshals as a quoted string on the wire
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "500", body["amount"])

		json.NewEncoder(w).Encode(map[string]string{
			"payment_session_id": "ps_123",
			"order_id":           "ord_456",
		})
	})

	handle, err := c.InitiateAddCash(context.Background(), decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "ps_123", handle.PaymentSessionID)
	assert.Equal(t, "ord_456", handle.OrderID)
}

func TestGetTransactions(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/transactions", r.URL.Path)
		w.Write([]byte(`[
			{"id": "t1", "type": "DEPOSIT", "amount": "500", "description": "add cash", "created_at": "2026-08-01T10:00:00Z"},
			{"id": "t2", "type": "ENTRY_FEE", "amount": "50", "description": "match entry", "created_at": "2026-08-02T11:30:00Z"}
		]`))
	})

	transactions, err := c.GetTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, "t1", transactions[0].ID)
	assert.True(t, transactions[0].SignedAmount().Equal(decimal.NewFromInt(500)))
	assert.True(t, transactions[1].SignedAmount().Equal(decimal.NewFromInt(-50)))
}

func TestNetworkErrorIsRetryable(t *testing.T) {
	sessions := session.NewProvider(&session.Session{Token: "opaque-token"})
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, sessions, nil)

	_, err := c.GetWallet(context.Background())
	assert.True(t, types.IsRetryable(err))
}

func TestNonJSONErrorBodyFallsBackToStatus(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.GetWallet(context.Background())
	var walletErr *types.WalletError
	require.True(t, types.As(err, &walletErr))
	assert.Equal(t, types.ErrNetworkError, walletErr.Code)
	assert.Contains(t, walletErr.Message, "502")
}

func TestServerErrorIsRetryableButClientErrorIsNot(t *testing.T) {
	status := http.StatusServiceUnavailable
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"message": "try again later"}`))
	})

	// A 5xx is the server's problem, so the caller may retry
	_, err := c.GetWallet(context.Background())
	assert.True(t, types.IsRetryable(err))
	var walletErr *types.WalletError
	require.True(t, types.As(err, &walletErr))
	assert.Equal(t, "try again later", walletErr.Message)

	// A 4xx rejects this request; retrying it unchanged is pointless
	status = http.StatusUnprocessableEntity
	_, err = c.GetWallet(context.Background())
	assert.False(t, types.IsRetryable(err))
	assert.True(t, types.IsWalletError(err, types.ErrBusinessRule))
}
