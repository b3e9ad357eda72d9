package entity

import (
	"bytes"
	"strings"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the mobile-money or bank channel the customer paid through.
type PaymentMethod string

const (
	PaymentMethodEmola PaymentMethod = "emola"
	PaymentMethodMpesa PaymentMethod = "mpesa"
	PaymentMethodBIM   PaymentMethod = "bim"
)

// IsValid checks if the PaymentMethod is a known channel.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodEmola, PaymentMethodMpesa, PaymentMethodBIM:
		return true
	default:
		return false
	}
}

// PaymentStatus is the review state of a payment proof.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// IsValid checks if the PaymentStatus belongs to the closed set.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return true
	default:
		return false
	}
}

// PaymentProof is manually uploaded evidence of an external payment.
type PaymentProof struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Method          PaymentMethod   `json:"method"`
	ReferenceNumber string          `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	EvidenceKey     string          `json:"evidence_key"`
	Notes           string          `json:"notes,omitempty"`
	Status          PaymentStatus   `json:"status"`
	ProcessedBy     *uuid.UUID      `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PaymentSubmission is the customer-provided part of a proof.
type PaymentSubmission struct {
	Method          PaymentMethod
	ReferenceNumber string
	EvidenceKey     string
	Notes           string
}

// ValidateDetails checks method and reference, everything except the evidence.
func (s PaymentSubmission) ValidateDetails() error {
	if s.Method == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "payment method is required")
	}
	if !s.Method.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment method %q", s.Method)
	}
	if strings.TrimSpace(s.ReferenceNumber) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "payment reference number is required")
	}

	return nil
}

// Validate checks the required submission fields.
func (s PaymentSubmission) Validate() error {
	if err := s.ValidateDetails(); err != nil {
		return err
	}
	if s.EvidenceKey == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "payment evidence is required")
	}

	return nil
}

// NewPaymentProof creates a pending proof for order. The amount is the order total.
func NewPaymentProof(order *Order, submission PaymentSubmission, now time.Time) (*PaymentProof, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	return &PaymentProof{
		ID:              uuid.New(),
		OrderID:         order.ID,
		OwnerID:         order.OwnerID,
		Method:          submission.Method,
		ReferenceNumber: strings.TrimSpace(submission.ReferenceNumber),
		Amount:          order.Total,
		EvidenceKey:     submission.EvidenceKey,
		Notes:           submission.Notes,
		Status:          PaymentStatusPending,
		CreatedAt:       now,
	}, nil
}

// Decide records the admin outcome. A proof can be decided only once.
func (p *PaymentProof) Decide(outcome PaymentStatus, actor uuid.UUID, reason string, now time.Time) error {
	if outcome != PaymentStatusApproved && outcome != PaymentStatusRejected {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment decision %q", outcome)
	}
	if p.Status != PaymentStatusPending {
		return errors.Wrapf(domainerrors.ErrInvalidState, "payment proof already %s", p.Status)
	}

	p.Status = outcome
	p.ProcessedBy = &actor
	p.ProcessedAt = &now
	if outcome == PaymentStatusRejected {
		p.RejectionReason = strings.TrimSpace(reason)
	}

	return nil
}

// ActiveProof selects the proof an order is judged by: the latest submitted one.
// Ties on creation time are broken by id so the choice is deterministic.
func ActiveProof(proofs []*PaymentProof) *PaymentProof {
	var active *PaymentProof
	for _, proof := range proofs {
		if active == nil || proof.CreatedAt.After(active.CreatedAt) ||
			(proof.CreatedAt.Equal(active.CreatedAt) && bytes.Compare(proof.ID[:], active.ID[:]) > 0) {
			active = proof
		}
	}

	return active
}
