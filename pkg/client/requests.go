package client

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/pkg/entities"
)

// PaymentHandle identifies one open hosted-checkout attempt
type PaymentHandle struct {
	PaymentSessionID string
	OrderID          string
}

// RecipientProfile is the minimal profile the server returns for a verified
// gift recipient
type RecipientProfile struct {
	AccountNumber string
	Username      string
}

// SendGiftRequest is the atomic peer-transfer payload
type SendGiftRequest struct {
	ReceiverAccountNo string
	Amount            decimal.Decimal
	Pin               string
}

// WithdrawMethod selects the payout rail
type WithdrawMethod string

const (
	WithdrawMethodUPI    WithdrawMethod = "UPI"
	WithdrawMethodBank   WithdrawMethod = "BANK"
	WithdrawMethodSource WithdrawMethod = "SOURCE"
)

// WithdrawDetails carries the method-specific payout fields. Only the
// fields for the chosen method are sent on the wire.
type WithdrawDetails struct {
	UpiID         string `json:"upiId,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IfscCode      string `json:"ifscCode,omitempty"`
	Source        string `json:"source,omitempty"`
}

// WithdrawRequest is the payout request payload
type WithdrawRequest struct {
	Amount  decimal.Decimal
	Method  WithdrawMethod
	Details WithdrawDetails
}

// RecordTransactionRequest writes a manual ledger entry
type RecordTransactionRequest struct {
	Amount      decimal.Decimal
	Type        entities.TransactionType
	Description string
}

// Wire-level request shapes. Requests use the API's camelCase field names,
// responses its snake_case ones.

type initializeWalletRequest struct {
	Pin        string `json:"pin"`
	ConfirmPin string `json:"confirmPin"`
}

type initializeWalletResponse struct {
	AccountNumber string `json:"wallet_account_no"`
}

type walletSnapshotResponse struct {
	AccountNumber       string          `json:"wallet_account_no"`
	AvailableBalance    decimal.Decimal `json:"available_balance"`
	WithdrawableBalance decimal.Decimal `json:"withdrawable_balance"`
	LockedBalance       decimal.Decimal `json:"locked_balance"`
}

func (r *walletSnapshotResponse) toEntity() *entities.WalletAccount {
	return &entities.WalletAccount{
		AccountNumber:       r.AccountNumber,
		AvailableBalance:    r.AvailableBalance,
		WithdrawableBalance: r.WithdrawableBalance,
		LockedBalance:       r.LockedBalance,
		FetchedAt:           time.Now(),
	}
}

type transactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (r *transactionResponse) toEntity() *entities.Transaction {
	return &entities.Transaction{
		ID:          r.ID,
		Type:        entities.TransactionType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type initiateAddCashResponse struct {
	PaymentSessionID string `json:"payment_session_id"`
	OrderID          string `json:"order_id"`
}

type verifyAddCashRequest struct {
	OrderID string `json:"orderId"`
}

type verifyReceiverRequest struct {
	AccountNo string `json:"accountNo"`
}

type verifyReceiverResponse struct {
	Username string `json:"username"`
}

type sendGiftRequest struct {
	ReceiverAccountNo string          `json:"receiverAccountNo"`
	Amount            decimal.Decimal `json:"amount"`
	Pin               string          `json:"pin"`
}

type verifyPinOtpRequest struct {
	Otp string `json:"otp"`
}

type resetPinRequest struct {
	Otp    string `json:"otp"`
	NewPin string `json:"newPin"`
}

type withdrawRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Details WithdrawDetails `json:"details"`
}

type recordTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

type errorResponse struct {
	Message string `json:"message"`
}
