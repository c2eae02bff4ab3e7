package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletAccount is the server's snapshot of a user's wallet. It is replaced
// wholesale on every successful fetch or mutating response, never patched.
type WalletAccount struct {
	AccountNumber       string          // 10-digit wallet account number
	AvailableBalance    decimal.Decimal // Total balance available to spend
	WithdrawableBalance decimal.Decimal // Portion eligible for payout
	LockedBalance       decimal.Decimal // Held for open matches
	FetchedAt           time.Time       // When this snapshot was taken
}

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "DEPOSIT"
	TransactionTypeWithdraw     TransactionType = "WITHDRAW"
	TransactionTypeLock         TransactionType = "LOCK"
	TransactionTypeUnlock       TransactionType = "UNLOCK"
	TransactionTypeEntryFee     TransactionType = "ENTRY_FEE"
	TransactionTypePrizeWon     TransactionType = "PRIZE_WON"
	TransactionTypeGiftSent     TransactionType = "GIFT_SENT"
	TransactionTypeGiftReceived TransactionType = "GIFT_RECEIVED"
	TransactionTypeRedeem       TransactionType = "REDEEM"
)

// IsCredit returns true if this transaction type adds to the balance.
// The sign is derived from the type, never stored.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeUnlock, TransactionTypePrizeWon, TransactionTypeGiftReceived:
		return true
	default:
		return false
	}
}

// Valid returns true if the type is one the ledger can emit
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeLock,
		TransactionTypeUnlock, TransactionTypeEntryFee, TransactionTypePrizeWon,
		TransactionTypeGiftSent, TransactionTypeGiftReceived, TransactionTypeRedeem:
		return true
	}
	return false
}

// Transaction represents a single wallet ledger entry. Immutable once fetched.
type Transaction struct {
	ID          string          // Unique identifier
	Type        TransactionType // Type of transaction
	Amount      decimal.Decimal // Magnitude, always non-negative
	Description string          // Human-readable description
	CreatedAt   time.Time       // When the transaction occurred
}

// SignedAmount returns the amount with the credit/debit sign applied
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}
