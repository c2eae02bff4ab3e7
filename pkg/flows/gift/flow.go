package gift

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

const minPinLength = 4

// State is the transfer's explicit position
type State string

const (
	StateEntered           State = "ENTERED"
	StateRecipientVerified State = "RECIPIENT_VERIFIED"
	StateConfirmed         State = "CONFIRMED"
	StateSent              State = "SENT"
	StateRejected          State = "REJECTED"
)

// Flow drives a peer gift transfer: verify the recipient exists, gather
// amount and PIN, then execute one atomic PIN-authorized transfer. Send is
// a separate call from Confirm on purpose; the transfer is irreversible, so
// the user must say yes twice.
type Flow struct {
	api    client.WalletAPI
	wallet *store.Store
	logger *logging.Logger

	mu        sync.Mutex
	state     State
	accountNo string
	recipient *client.RecipientProfile
	amount    decimal.Decimal
	pin       string
	sending   bool
	rejection string
}

// NewFlow creates a gift transfer flow awaiting a recipient account number
func NewFlow(api client.WalletAPI, wallet *store.Store, logger *logging.Logger) *Flow {
	if logger == nil {
		logger = logging.Default
	}
	return &Flow{
		api:    api,
		wallet: wallet,
		logger: logger,
		state:  StateEntered,
	}
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Recipient returns the verified recipient profile, if any
func (f *Flow) Recipient() (*client.RecipientProfile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recipient == nil {
		return nil, false
	}
	recipientCopy := *f.recipient
	return &recipientCopy, true
}

// RejectionReason returns the server's verbatim rejection message after a
// failed send
func (f *Flow) RejectionReason() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rejection
}

// VerifyRecipient asks the server to confirm the account exists. On any
// failure the previously verified profile is cleared; stale recipient data
// must never survive a failed re-verification.
func (f *Flow) VerifyRecipient(ctx context.Context, accountNo string) error {
	accountNo = strings.TrimSpace(accountNo)
	if accountNo == "" {
		return types.NewWalletError(types.ErrMissingField, "recipient account number is required")
	}

	f.mu.Lock()
	if f.state == StateSent || f.sending {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "transfer already executed")
	}
	// Re-verification starts the handshake over
	f.state = StateEntered
	f.recipient = nil
	f.accountNo = accountNo
	f.mu.Unlock()

	recipient, err := f.api.VerifyReceiver(ctx, accountNo)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.recipient = recipient
	f.state = StateRecipientVerified
	f.mu.Unlock()

	f.logger.Debug("Recipient %s verified as %s", accountNo, recipient.Username)
	return nil
}

// Confirm records the amount and PIN. This is a local pre-flight check
// only; sufficiency of funds and PIN correctness stay the server's call.
func (f *Flow) Confirm(amount decimal.Decimal, pin string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateRecipientVerified && f.state != StateConfirmed {
		return types.NewWalletError(types.ErrInvalidState, "verify the recipient before confirming the transfer")
	}
	if !amount.IsPositive() {
		return types.NewWalletError(types.ErrInvalidAmount, "gift amount must be a positive number")
	}
	if len(pin) < minPinLength {
		return types.NewWalletError(types.ErrInvalidPin, "PIN must be at least 4 characters")
	}

	f.amount = amount
	f.pin = pin
	f.state = StateConfirmed
	return nil
}

// Send executes the transfer as one atomic request. It is only reachable
// after Confirm; calling it is the user's explicit "yes, I'm sure". A
// server rejection moves the flow to REJECTED with the server's reason kept
// verbatim; a transport failure leaves it CONFIRMED for a retry.
func (f *Flow) Send(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateConfirmed {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "confirm the transfer before sending")
	}
	if f.sending {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "transfer already in flight")
	}
	f.sending = true
	req := client.SendGiftRequest{
		ReceiverAccountNo: f.accountNo,
		Amount:            f.amount,
		Pin:               f.pin,
	}
	f.mu.Unlock()

	err := f.api.SendGift(ctx, req)

	f.mu.Lock()
	f.sending = false
	if err != nil {
		if types.IsRetryable(err) || types.IsAuth(err) {
			// Network-only failures keep the flow re-entrant at CONFIRMED
			f.mu.Unlock()
			return err
		}
		var walletErr *types.WalletError
		if types.As(err, &walletErr) {
			f.rejection = walletErr.Message
		} else {
			f.rejection = err.Error()
		}
		f.state = StateRejected
		f.mu.Unlock()
		return err
	}
	f.pin = ""
	f.state = StateSent
	f.mu.Unlock()

	f.logger.Info("Gift of %s sent to %s", req.Amount, req.ReceiverAccountNo)

	if ctx.Err() != nil {
		return nil
	}
	if err := f.wallet.Refresh(ctx); err != nil {
		f.logger.Warn("Wallet refresh after gift failed: %v", err)
	}
	if err := f.wallet.RefreshTransactions(ctx); err != nil {
		f.logger.Warn("Transaction refresh after gift failed: %v", err)
	}
	return nil
}

// Restart discards the transfer and returns to ENTERED
func (f *Flow) Restart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateEntered
	f.accountNo = ""
	f.recipient = nil
	f.amount = decimal.Zero
	f.pin = ""
	f.rejection = ""
}
