package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeIsCredit(t *testing.T) {
	testCases := []struct {
		txType TransactionType
		credit bool
	}{
		{TransactionTypeDeposit, true},
		{TransactionTypeUnlock, true},
		{TransactionTypePrizeWon, true},
		{TransactionTypeGiftReceived, true},
		{TransactionTypeWithdraw, false},
		{TransactionTypeLock, false},
		{TransactionTypeEntryFee, false},
		{TransactionTypeGiftSent, false},
		{TransactionTypeRedeem, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.txType), func(t *testing.T) {
			assert.Equal(t, tc.credit, tc.txType.IsCredit())
		})
	}
}

func TestTransactionSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(250)

	credit := &Transaction{Type: TransactionTypeGiftReceived, Amount: amount}
	assert.True(t, credit.SignedAmount().Equal(amount))

	debit := &Transaction{Type: TransactionTypeEntryFee, Amount: amount}
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionTypeDeposit.Valid())
	assert.True(t, TransactionTypeRedeem.Valid())
	assert.False(t, TransactionType("REFUND").Valid())
	assert.False(t, TransactionType("").Valid())
}
