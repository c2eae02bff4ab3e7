package payment

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/client"
	"github.com/arenapay/walletflow/pkg/store"
)

// State is the payment session's explicit position
type State string

const (
	StateIdle               State = "IDLE"
	StateCreated            State = "CREATED"
	StateAwaitingCompletion State = "AWAITING_COMPLETION"
	StateVerifying          State = "VERIFYING"
	StateSettled            State = "SETTLED"
	StateFailed             State = "FAILED"
	StateAbandoned          State = "ABANDONED"
)

// terminal reports whether a new session may be opened from this state
func (s State) terminal() bool {
	switch s {
	case StateIdle, StateSettled, StateFailed, StateAbandoned:
		return true
	}
	return false
}

// Flow drives one add-cash attempt through a hosted checkout. Completion is
// inferred from navigation events against a return marker; the transition
// out of AWAITING_COMPLETION happens at most once no matter how many
// matching events fire.
type Flow struct {
	api      client.WalletAPI
	wallet   *store.Store
	observer CheckoutObserver
	logger   *logging.Logger

	mu         sync.Mutex
	state      State
	handle     *client.PaymentHandle
	amount     decimal.Decimal
	initiating bool
}

// NewFlow creates an idle payment session flow
func NewFlow(api client.WalletAPI, wallet *store.Store, observer CheckoutObserver, logger *logging.Logger) *Flow {
	if logger == nil {
		logger = logging.Default
	}
	return &Flow{
		api:      api,
		wallet:   wallet,
		observer: observer,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Handle returns the open session's identifiers, if any
func (f *Flow) Handle() (*client.PaymentHandle, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handle == nil {
		return nil, false
	}
	handleCopy := *f.handle
	return &handleCopy, true
}

// Initiate opens a payment session for the given amount. Only one session
// may be open per wallet at a time: while a prior session is awaiting
// completion or verifying, a new Initiate is rejected.
func (f *Flow) Initiate(ctx context.Context, amount decimal.Decimal) (*client.PaymentHandle, error) {
	if !amount.IsPositive() {
		return nil, types.NewWalletError(types.ErrInvalidAmount, "add-cash amount must be a positive number")
	}

	f.mu.Lock()
	if f.initiating || !f.state.terminal() {
		f.mu.Unlock()
		return nil, types.NewWalletError(types.ErrInvalidState, "a payment session is already open")
	}
	f.initiating = true
	f.mu.Unlock()

	handle, err := f.api.InitiateAddCash(ctx, amount)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.initiating = false
	if err != nil {
		return nil, err
	}

	f.handle = handle
	f.amount = amount
	f.state = StateCreated
	f.logger.Info("Payment session %s created for order %s", handle.PaymentSessionID, handle.OrderID)

	handleCopy := *handle
	return &handleCopy, nil
}

// CheckoutOpened marks the checkout surface as presented to the user
func (f *Flow) CheckoutOpened() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateCreated {
		return types.NewWalletError(types.ErrInvalidState, "no freshly created payment session")
	}
	f.state = StateAwaitingCompletion
	return nil
}

// ObserveNavigation feeds one navigation event from the checkout surface
// into the flow. Return-marker events are at-least-once; only the first one
// moves the flow to VERIFYING and triggers server-side verification. Events
// seen in any other state are ignored.
func (f *Flow) ObserveNavigation(ctx context.Context, url string) (Signal, error) {
	signal := f.observer.OnNavigate(url)
	if signal.Kind != SignalReturn {
		return signal, nil
	}

	f.mu.Lock()
	if f.state != StateAwaitingCompletion {
		// Duplicate return events after the first, or events for a session
		// that was abandoned. Nothing to do.
		f.mu.Unlock()
		return signal, nil
	}
	f.state = StateVerifying
	orderID := f.handle.OrderID
	f.mu.Unlock()

	return signal, f.verify(ctx, orderID)
}

// verify settles the session server-side. The session may have succeeded at
// the provider even when this call fails, so a failure is surfaced as
// unconfirmed rather than as a failed payment.
func (f *Flow) verify(ctx context.Context, orderID string) error {
	account, err := f.api.VerifyAddCash(ctx, orderID)
	if err != nil {
		f.mu.Lock()
		f.state = StateFailed
		f.mu.Unlock()

		if types.IsAuth(err) {
			return err
		}
		return types.WrapError(types.ErrVerifyUnconfirmed,
			"could not confirm the payment, check transaction history later", err)
	}

	f.mu.Lock()
	f.state = StateSettled
	f.mu.Unlock()

	if ctx.Err() != nil {
		// Owning screen is gone; the settled state stands but no shared
		// state is mutated with a late result
		return nil
	}

	// The verify response carries the updated snapshot, saving a refresh
	// round-trip; only the transaction list needs fetching
	f.wallet.ApplySnapshot(account)
	if err := f.wallet.RefreshTransactions(ctx); err != nil {
		f.logger.Warn("Transaction refresh after settlement failed: %v", err)
	}
	return nil
}

// Abandon releases the session when the user dismisses the checkout surface
// (or navigates away) before the return marker was observed. Verification
// of an abandoned session is disallowed; settling an incomplete payment on
// the client's say-so is exactly what the server verify step exists to
// prevent.
func (f *Flow) Abandon() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateCreated, StateAwaitingCompletion:
		f.logger.Info("Payment session %s abandoned", f.handle.PaymentSessionID)
		f.handle = nil
		f.state = StateAbandoned
		return nil
	default:
		return types.NewWalletError(types.ErrInvalidState, "no abandonable payment session")
	}
}
