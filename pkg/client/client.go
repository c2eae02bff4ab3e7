package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/entities"
	"github.com/arenapay/walletflow/pkg/session"
)

// Client is the HTTP implementation of WalletAPI. It owns no wallet state;
// every call attaches the current session's bearer token and a fresh
// X-Request-ID so duplicate submissions can be traced server-side.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Provider
	logger     *logging.Logger
}

// Ensure Client implements the WalletAPI interface
var _ WalletAPI = (*Client)(nil)

// NewClient creates a wallet API client
func NewClient(baseURL string, timeout time.Duration, sessions *session.Provider, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		logger:     logger,
	}
}

// do performs one authenticated round-trip. A 401 discards the session via
// the provider; callers see an auth error and must not handle it locally.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	sess, err := c.sessions.Current()
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return types.WrapError(types.ErrInternalError, "failed to encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return types.WrapError(types.ErrInternalError, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Request %s %s failed: %v", method, path, err)
		return types.WrapError(types.ErrNetworkError, "wallet service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("Session rejected by wallet service on %s %s", method, path)
		c.sessions.SignOut()
		return types.NewWalletError(types.ErrUnauthorized, "session rejected by wallet service")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err != nil || serverErr.Message == "" {
			serverErr.Message = fmt.Sprintf("wallet service returned %s", resp.Status)
		}
		// A 5xx says nothing about the request itself; surface it as
		// retryable rather than as a business rejection.
		if resp.StatusCode >= 500 {
			c.logger.Warn("Server error on %s %s: %s", method, path, resp.Status)
			return types.NewWalletError(types.ErrNetworkError, serverErr.Message)
		}
		return types.NewWalletError(types.ErrBusinessRule, serverErr.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return types.WrapError(types.ErrNetworkError, "failed to decode response", err)
		}
	}
	return nil
}

// InitializeWallet creates the wallet with its initial PIN
func (c *Client) InitializeWallet(ctx context.Context, pin, confirmPin string) (string, error) {
	var resp initializeWalletResponse
	err := c.do(ctx, http.MethodPost, "/wallet/initialize", initializeWalletRequest{Pin: pin, ConfirmPin: confirmPin}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccountNumber, nil
}

// GetWallet fetches the authoritative wallet snapshot
func (c *Client) GetWallet(ctx context.Context) (*entities.WalletAccount, error) {
	var resp walletSnapshotResponse
	if err := c.do(ctx, http.MethodGet, "/wallet/my", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// GetTransactions fetches the full transaction history
func (c *Client) GetTransactions(ctx context.Context) ([]*entities.Transaction, error) {
	var resp []transactionResponse
	if err := c.do(ctx, http.MethodGet, "/wallet/transactions", nil, &resp); err != nil {
		return nil, err
	}
	transactions := make([]*entities.Transaction, 0, len(resp))
	for i := range resp {
		transactions = append(transactions, resp[i].toEntity())
	}
	return transactions, nil
}

// InitiateAddCash opens a hosted-checkout payment session
func (c *Client) InitiateAddCash(ctx context.Context, amount decimal.Decimal) (*PaymentHandle, error) {
	var resp initiateAddCashResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/add-cash/initiate", amountRequest{Amount: amount}, &resp); err != nil {
		return nil, err
	}
	return &PaymentHandle{
		PaymentSessionID: resp.PaymentSessionID,
		OrderID:          resp.OrderID,
	}, nil
}

// VerifyAddCash asks the server to settle a payment session
func (c *Client) VerifyAddCash(ctx context.Context, orderID string) (*entities.WalletAccount, error) {
	var resp walletSnapshotResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/add-cash/verify", verifyAddCashRequest{OrderID: orderID}, &resp); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// VerifyReceiver confirms a gift recipient exists
func (c *Client) VerifyReceiver(ctx context.Context, accountNo string) (*RecipientProfile, error) {
	var resp verifyReceiverResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/verify-receiver", verifyReceiverRequest{AccountNo: accountNo}, &resp); err != nil {
		return nil, err
	}
	return &RecipientProfile{
		AccountNumber: accountNo,
		Username:      resp.Username,
	}, nil
}

// SendGift executes a PIN-authorized peer transfer
func (c *Client) SendGift(ctx context.Context, req SendGiftRequest) error {
	return c.do(ctx, http.MethodPost, "/wallet/send-gift", sendGiftRequest{
		ReceiverAccountNo: req.ReceiverAccountNo,
		Amount:            req.Amount,
		Pin:               req.Pin,
	}, nil)
}

// RequestPinReset asks the server to dispatch a PIN-reset OTP
func (c *Client) RequestPinReset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/wallet/request-pin-reset", nil, nil)
}

// VerifyPinOTP checks an entered OTP server-side
func (c *Client) VerifyPinOTP(ctx context.Context, otp string) error {
	return c.do(ctx, http.MethodPost, "/wallet/verify-pin-otp", verifyPinOtpRequest{Otp: otp}, nil)
}

// ResetPin commits {otp, newPin} atomically in one request
func (c *Client) ResetPin(ctx context.Context, otp, newPin string) error {
	return c.do(ctx, http.MethodPost, "/wallet/reset-pin", resetPinRequest{Otp: otp, NewPin: newPin}, nil)
}

// Withdraw submits a payout request
func (c *Client) Withdraw(ctx context.Context, req WithdrawRequest) error {
	return c.do(ctx, http.MethodPost, "/wallet/withdraw", withdrawRequest{
		Amount:  req.Amount,
		Method:  string(req.Method),
		Details: req.Details,
	}, nil)
}

// Redeem redeems a fixed amount
func (c *Client) Redeem(ctx context.Context, amount decimal.Decimal) (*entities.WalletAccount, error) {
	var resp walletSnapshotResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/redeem", amountRequest{Amount: amount}, &resp); err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// RecordTransaction writes a manual ledger entry
func (c *Client) RecordTransaction(ctx context.Context, req RecordTransactionRequest) error {
	return c.do(ctx, http.MethodPost, "/wallet/transactions/record", recordTransactionRequest{
		Amount:      req.Amount,
		Type:        string(req.Type),
		Description: req.Description,
	}, nil)
}
