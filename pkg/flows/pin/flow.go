package pin

import (
	"context"
	"strings"
	"sync"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/internal/types"
	"github.com/arenapay/walletflow/pkg/client"
	"github.com/arenapay/walletflow/pkg/store"
)

const pinLength = 6

// Kind selects which lifecycle path the flow is driving
type Kind string

const (
	KindInit  Kind = "INIT"
	KindReset Kind = "RESET"
)

// State is the flow's explicit position. Transitions only move forward;
// the only way back is a full Restart.
type State string

const (
	StateIdle           State = "IDLE"
	StatePinEntered     State = "PIN_ENTERED"
	StatePinConfirmed   State = "PIN_CONFIRMED"
	StateSubmitted      State = "SUBMITTED"
	StateResetRequested State = "RESET_REQUESTED"
	StateOTPSent        State = "OTP_SENT"
	StateOTPVerified    State = "OTP_VERIFIED"
	StateNewPinSet      State = "NEW_PIN_SET"
	StateDone           State = "DONE"
)

// Flow drives wallet creation (set initial PIN) and PIN recovery (OTP
// reset). It owns its session values; nothing here is persisted and the
// store is only touched through one refresh on completion.
type Flow struct {
	api    client.WalletAPI
	wallet *store.Store
	logger *logging.Logger

	mu         sync.Mutex
	state      State
	kind       Kind
	pin        string
	confirmPin string
	otp        string
	inFlight   bool
	refreshed  bool
}

// NewFlow creates an idle PIN lifecycle flow
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

// SanitizePin strips everything that is not a numeric digit. Entry fields
// apply this on input rather than rejecting the whole value.
func SanitizePin(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// State returns the flow's current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Kind returns which path the flow is on, empty until the first action
func (f *Flow) Kind() Kind {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.kind
}

// Restart returns the flow to IDLE, discarding all entered values
func (f *Flow) Restart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.kind = ""
	f.pin = ""
	f.confirmPin = ""
	f.otp = ""
	f.inFlight = false
	f.refreshed = false
}

// EnterPin records the initial PIN on the INIT path
func (f *Flow) EnterPin(raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle && f.state != StatePinEntered {
		return types.NewWalletError(types.ErrInvalidState, "PIN can only be entered at the start of wallet creation")
	}

	pin := SanitizePin(raw)
	if len(pin) != pinLength {
		return types.NewWalletError(types.ErrInvalidPin, "PIN must be exactly 6 digits")
	}

	f.kind = KindInit
	f.pin = pin
	f.state = StatePinEntered
	return nil
}

// ConfirmPin records the confirmation PIN. Equality with the first entry is
// checked at Submit so a mismatch leaves the flow here for correction.
func (f *Flow) ConfirmPin(raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePinEntered && f.state != StatePinConfirmed {
		return types.NewWalletError(types.ErrInvalidState, "confirm the PIN after entering it")
	}

	confirm := SanitizePin(raw)
	if len(confirm) != pinLength {
		return types.NewWalletError(types.ErrInvalidPin, "confirmation PIN must be exactly 6 digits")
	}

	f.confirmPin = confirm
	f.state = StatePinConfirmed
	return nil
}

// Submit creates the wallet. A PIN/confirmation mismatch is a local
// validation failure; no network call is made and the flow stays in
// PIN_CONFIRMED. A server rejection also keeps the flow here so the user
// can correct and resubmit.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StatePinConfirmed {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "confirm the PIN before submitting")
	}
	if f.inFlight {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "submission already in flight")
	}
	if f.pin != f.confirmPin {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrPinMismatch, "PIN and confirmation do not match")
	}
	f.inFlight = true
	pin, confirm := f.pin, f.confirmPin
	f.mu.Unlock()

	accountNo, err := f.api.InitializeWallet(ctx, pin, confirm)

	f.mu.Lock()
	f.inFlight = false
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitted
	f.mu.Unlock()

	f.logger.Info("Wallet initialized with account %s", accountNo)
	f.complete(ctx)
	return nil
}

// RequestReset starts the forgot-PIN path by asking the server to dispatch
// an OTP. A failed dispatch returns the flow to IDLE.
func (f *Flow) RequestReset(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "a PIN reset is already in progress")
	}
	f.kind = KindReset
	f.state = StateResetRequested
	f.mu.Unlock()

	if err := f.api.RequestPinReset(ctx); err != nil {
		f.mu.Lock()
		f.state = StateIdle
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.state = StateOTPSent
	f.mu.Unlock()
	return nil
}

// VerifyOTP exchanges the entered OTP for server-side verification. The
// client never judges OTP correctness; a rejection keeps the flow in
// OTP_SENT with the entered code retained for correction.
func (f *Flow) VerifyOTP(ctx context.Context, raw string) error {
	f.mu.Lock()
	if f.state != StateOTPSent {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "request a reset before verifying an OTP")
	}
	if f.inFlight {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "verification already in flight")
	}
	otp := SanitizePin(raw)
	if otp == "" {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidPin, "OTP is required")
	}
	f.otp = otp
	f.inFlight = true
	f.mu.Unlock()

	err := f.api.VerifyPinOTP(ctx, otp)

	f.mu.Lock()
	f.inFlight = false
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateOTPVerified
	f.mu.Unlock()
	return nil
}

// CommitNewPin submits {otp, newPin} together in one request, so a
// verified-but-uncommitted OTP can never be replayed with a different PIN.
// A rejection (wrong or expired OTP, duplicate PIN) keeps the flow in
// OTP_VERIFIED.
func (f *Flow) CommitNewPin(ctx context.Context, raw string) error {
	f.mu.Lock()
	if f.state != StateOTPVerified {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "verify the OTP before setting a new PIN")
	}
	if f.inFlight {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidState, "submission already in flight")
	}
	newPin := SanitizePin(raw)
	if len(newPin) != pinLength {
		f.mu.Unlock()
		return types.NewWalletError(types.ErrInvalidPin, "new PIN must be exactly 6 digits")
	}
	otp := f.otp
	f.inFlight = true
	f.mu.Unlock()

	err := f.api.ResetPin(ctx, otp, newPin)

	f.mu.Lock()
	f.inFlight = false
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = StateNewPinSet
	f.mu.Unlock()

	f.complete(ctx)
	return nil
}

// OTPIssued reports whether the server has dispatched an OTP
func (f *Flow) OTPIssued() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateOTPSent, StateOTPVerified, StateNewPinSet, StateDone:
		return f.kind == KindReset
	}
	return false
}

// OTPVerified reports whether the server has accepted the entered OTP
func (f *Flow) OTPVerified() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateOTPVerified, StateNewPinSet, StateDone:
		return f.kind == KindReset
	}
	return false
}

// complete moves the flow to DONE and refreshes the wallet snapshot exactly
// once. A failed refresh does not undo completion; the store keeps its
// stale-but-available snapshot.
func (f *Flow) complete(ctx context.Context) {
	f.mu.Lock()
	f.state = StateDone
	alreadyRefreshed := f.refreshed
	f.refreshed = true
	f.mu.Unlock()

	if alreadyRefreshed || f.wallet == nil {
		return
	}
	if err := f.wallet.Refresh(ctx); err != nil {
		f.logger.Warn("Post-completion wallet refresh failed: %v", err)
	}
}
