package entity

import (
	"testing"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentProof(t *testing.T) {
	order := &Order{ID: uuid.New(), OwnerID: uuid.New(), Total: decimal.RequireFromString("25.00")}

	proof, err := NewPaymentProof(order, PaymentSubmission{
		Method:          PaymentMethodEmola,
		ReferenceNumber: " EM-77 ",
		EvidenceKey:     "payments/x.png",
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, proof.Status)
	assert.Equal(t, "EM-77", proof.ReferenceNumber)
	assert.True(t, proof.Amount.Equal(order.Total))

	_, err = NewPaymentProof(order, PaymentSubmission{Method: PaymentMethodEmola, ReferenceNumber: "EM-77"}, time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentProof_Decide(t *testing.T) {
	actor := uuid.New()
	now := time.Now()
	proof := &PaymentProof{Status: PaymentStatusPending}

	require.NoError(t, proof.Decide(PaymentStatusRejected, actor, " ilegível ", now))
	assert.Equal(t, "ilegível", proof.RejectionReason)
	assert.Equal(t, actor, *proof.ProcessedBy)

	err := proof.Decide(PaymentStatusApproved, actor, "", now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	assert.Equal(t, PaymentStatusRejected, proof.Status)

	assert.ErrorIs(t, (&PaymentProof{Status: PaymentStatusPending}).Decide(PaymentStatusPending, actor, "", now), domainerrors.ErrValidationFailed)
}

func TestActiveProof(t *testing.T) {
	now := time.Now()
	low := &PaymentProof{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), CreatedAt: now}
	high := &PaymentProof{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), CreatedAt: now}
	older := &PaymentProof{ID: uuid.MustParse("ffffffff-0000-0000-0000-000000000000"), CreatedAt: now.Add(-time.Minute)}

	assert.Nil(t, ActiveProof(nil))
	assert.Equal(t, high, ActiveProof([]*PaymentProof{older, low, high}))
	assert.Equal(t, high, ActiveProof([]*PaymentProof{high, low, older}))
}
