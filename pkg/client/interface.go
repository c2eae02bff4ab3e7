package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_walletapi

// WalletAPI is the typed boundary over the remote wallet service. One method
// per endpoint; expected failure classes come back as *types.WalletError,
// never as a panic across the boundary. Implementations hold no wallet state.
type WalletAPI interface {
	// InitializeWallet creates the wallet with its initial PIN and returns
	// the new wallet account number
	InitializeWallet(ctx context.Context, pin, confirmPin string) (string, error)

	// GetWallet fetches the authoritative wallet snapshot
	GetWallet(ctx context.Context) (*entities.WalletAccount, error)

	// GetTransactions fetches the full transaction history
	GetTransactions(ctx context.Context) ([]*entities.Transaction, error)

	// InitiateAddCash opens a hosted-checkout payment session
	InitiateAddCash(ctx context.Context, amount decimal.Decimal) (*PaymentHandle, error)

	// VerifyAddCash asks the server to settle a payment session and returns
	// the updated wallet snapshot on success
	VerifyAddCash(ctx context.Context, orderID string) (*entities.WalletAccount, error)

	// VerifyReceiver confirms a gift recipient exists and returns their
	// minimal profile
	VerifyReceiver(ctx context.Context, accountNo string) (*RecipientProfile, error)

	// SendGift executes a PIN-authorized peer transfer as one atomic request
	SendGift(ctx context.Context, req SendGiftRequest) error

	// RequestPinReset asks the server to dispatch a PIN-reset OTP
	RequestPinReset(ctx context.Context) error

	// VerifyPinOTP checks an entered OTP server-side
	VerifyPinOTP(ctx context.Context, otp string) error

	// ResetPin commits {otp, newPin} atomically in one request
	ResetPin(ctx context.Context, otp, newPin string) error

	// Withdraw submits a payout request with method-specific details
	Withdraw(ctx context.Context, req WithdrawRequest) error

	// Redeem redeems a fixed amount and returns the updated snapshot
	Redeem(ctx context.Context, amount decimal.Decimal) (*entities.WalletAccount, error)

	// RecordTransaction writes a manual ledger entry (admin/dev tooling)
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) error
}
