package withdraw

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/client"
	"github.com/arenapay/walletflow/pkg/store"
)

// State is the request's explicit position. Withdrawal is single-shot;
// there is no multi-step handshake here.
type State string

const (
	StateIdle       State = "IDLE"
	StateSubmitting State = "SUBMITTING"
	StateDone       State = "DONE"
	StateFailed     State = "FAILED"
)

// Flow submits one payout request with method-specific details
type Flow struct {
	api    client.WalletAPI
	wallet *store.Store
	logger *logging.Logger

	mu      sync.Mutex
	state   State
	failure string
}

// NewFlow creates an idle withdrawal flow
func NewFlow(api client.WalletAPI, wallet *store.Store, logger *logging.Logger) *Flow {
	if logger == nil {
		logger = logging.Default
	}
	return &Flow{
		api:    api,
		wallet: wallet,
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FailureReason returns the server's message after a failed submission
func (f *Flow) FailureReason() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failure
}

// QuickAmount resolves a percentage affordance against the withdrawable
// ceiling: 50% of 1000 is 500. The ceiling is withdrawableBalance, never
// availableBalance.
func QuickAmount(withdrawable decimal.Decimal, percent int64) decimal.Decimal {
	if percent <= 0 || !withdrawable.IsPositive() {
		return decimal.Zero
	}
	if percent >= 100 {
		return withdrawable
	}
	return withdrawable.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))
}

// Clamp bounds a requested amount to the withdrawable ceiling
func Clamp(amount, withdrawable decimal.Decimal) decimal.Decimal {
	if !withdrawable.IsPositive() {
		return decimal.Zero
	}
	if amount.GreaterThan(withdrawable) {
		return withdrawable
	}
	return amount
}

// validateDetails checks that the fields the chosen method needs are
// present. Submitting an incomplete payload for a method is a client-side
// contract violation, not something to bounce off the server.
func validateDetails(method client.WithdrawMethod, details client.WithdrawDetails) error {
	switch method {
	case client.WithdrawMethodUPI:
		if strings.TrimSpace(details.UpiID) == "" {
			return types.NewWalletError(types.ErrMissingField, "upiId is required for UPI withdrawal")
		}
	case client.WithdrawMethodBank:
		if strings.TrimSpace(details.AccountName) == "" {
			return types.NewWalletError(types.ErrMissingField, "accountName is required for bank withdrawal")
		}
		if strings.TrimSpace(details.AccountNumber) == "" {
			return types.NewWalletError(types.ErrMissingField, "accountNumber is required for bank withdrawal")
		}
		if strings.TrimSpace(details.IfscCode) == "" {
			return types.NewWalletError(types.ErrMissingField, "ifscCode is required for bank withdrawal")
		}
	case client.WithdrawMethodSource:
		if strings.TrimSpace(details.Source) == "" {
			return types.NewWalletError(types.ErrMissingField, "source is required for source withdrawal")
		}
	default:
		return types.NewWalletError(types.ErrMissingField, "unknown withdrawal method")
	}
	return nil
}

// Submit validates and sends the payout request. Success refreshes the
// wallet snapshot; failure leaves it untouched and keeps the server's
// message. A failed flow may be resubmitted; an in-flight one may not.
func (f *Flow) Submit(ctx context.Context, amount decimal.Decimal, method client.WithdrawMethod, details client.WithdrawDetails) error {
	if !amount.IsPositive() {
		return types.NewWalletError(types.ErrInvalidAmount, "withdrawal amount must be greater than zero")
	}
	// The server stays authoritative on sufficiency; this only mirrors the
	// slider's withdrawable ceiling when a snapshot is available
	if account, ok := f.wallet.Account(); ok {
		if amount.GreaterThan(account.WithdrawableBalance) {
			return types.NewWalletError(types.ErrInvalidAmount, "amount exceeds withdrawable balance")
		}
	}
	if err := validateDetails(method, details); err != nil {
		return err
	}

	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "a withdrawal is already in flight")
	}
	if f.state == StateDone {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "withdrawal already completed")
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	err := f.api.Withdraw(ctx, client.WithdrawRequest{
		Amount:  amount,
		Method:  method,
		Details: details,
	})

	f.mu.Lock()
	if err != nil {
		f.state = StateFailed
		var walletErr *types.WalletError
		if types.As(err, &walletErr) {
			f.failure = walletErr.Message
		} else {
			f.failure = err.Error()
		}
		f.mu.Unlock()
		return err
	}
	f.state = StateDone
	f.failure = ""
	f.mu.Unlock()

	f.logger.Info("Withdrawal of %s via %s submitted", amount, method)

	if ctx.Err() != nil {
		return nil
	}
	if err := f.wallet.Refresh(ctx); err != nil {
		f.logger.Warn("Wallet refresh after withdrawal failed: %v", err)
	}
	return nil
}
