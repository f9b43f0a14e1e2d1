package services

import (
	"testing"

	"invoice-manager-backend/models"

	"github.com/stretchr/testify/assert"
)

func notes(numbers []int, amounts []int64) []models.CreditNote {
	out := make([]models.CreditNote, len(numbers))
	for i := range numbers {
		out[i] = models.CreditNote{CreditNoteNumber: numbers[i], Amount: amounts[i]}
	}
	return out
}

func TestNextCreditNoteNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		want     int
	}{
		{"virgin invoice starts at 10000", nil, 10000},
		{"second note", []int{10000}, 10001},
		{"max wins regardless of order", []int{10002, 10000, 10001}, 10003},
		{"gap in sequence", []int{10000, 10005}, 10006},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts := make([]int64, len(tt.existing))
			assert.Equal(t, tt.want, NextCreditNoteNumber(notes(tt.existing, amounts)))
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	assert.Equal(t, int64(10000), RemainingBalance(10000, nil))
	assert.Equal(t, int64(6000), RemainingBalance(10000, notes([]int{10000}, []int64{4000})))
	assert.Equal(t, int64(0), RemainingBalance(10000, notes([]int{10000, 10001}, []int64{4000, 6000})))
}

func TestValidateIssuance(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		remaining int64
		wantErr   error
	}{
		{"zero amount", 0, 10000, ErrInvalidAmount},
		{"negative amount", -500, 10000, ErrInvalidAmount},
		{"nothing left to credit", 100, 0, ErrNoRemainingBalance},
		{"amount exceeds remaining", 5001, 5000, ErrAmountExceedsBalance},
		{"one over remaining", 10001, 10000, ErrAmountExceedsBalance},
		{"exact remaining succeeds", 10000, 10000, nil},
		{"partial amount succeeds", 3000, 10000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIssuance(tt.amount, tt.remaining)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Exact-remaining issuance drives the balance to zero and flips the derived
// status to Cancelled.
func TestIssuingExactRemainingCancelsInvoice(t *testing.T) {
	existing := notes([]int{10000}, []int64{4000})
	remaining := RemainingBalance(10000, existing)

	assert.NoError(t, ValidateIssuance(remaining, remaining))

	after := append(existing, models.CreditNote{
		CreditNoteNumber: NextCreditNoteNumber(existing),
		Amount:           remaining,
	})

	assert.Equal(t, int64(0), RemainingBalance(10000, after))
	assert.Equal(t, InvoiceStatusCancelled, InvoiceStatusOf(10000, CreditNoteTotal(after)))
	assert.Equal(t, 10001, after[len(after)-1].CreditNoteNumber)
}
