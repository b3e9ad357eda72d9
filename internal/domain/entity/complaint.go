package entity

import (
	"strings"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ComplaintStatus is the handling state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusNew      ComplaintStatus = "new"
	ComplaintStatusRead     ComplaintStatus = "read"
	ComplaintStatusAnswered ComplaintStatus = "answered"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

// IsValid checks if the ComplaintStatus belongs to the closed set.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusNew, ComplaintStatusRead, ComplaintStatusAnswered, ComplaintStatusResolved:
		return true
	default:
		return false
	}
}

// Complaint is a customer ticket answered by the administrator.
type Complaint struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Subject     string          `json:"subject"`
	Message     string          `json:"message"`
	Status      ComplaintStatus `json:"status"`
	Response    string          `json:"response,omitempty"`
	RespondedBy *uuid.UUID      `json:"responded_by,omitempty"`
	RespondedAt *time.Time      `json:"responded_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewComplaint validates and builds a complaint in state new.
func NewComplaint(customerID uuid.UUID, subject, message string, now time.Time) (*Complaint, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "complaint subject and message are required")
	}

	return &Complaint{
		ID:         uuid.New(),
		CustomerID: customerID,
		Subject:    subject,
		Message:    message,
		Status:     ComplaintStatusNew,
		CreatedAt:  now,
	}, nil
}

// MarkRead moves a new complaint to read. Other states are left alone.
func (c *Complaint) MarkRead() bool {
	if c.Status != ComplaintStatusNew {
		return false
	}
	c.Status = ComplaintStatusRead

	return true
}

// Answer records the admin response. The three response fields are always set together.
func (c *Complaint) Answer(adminID uuid.UUID, response string, now time.Time) error {
	response = strings.TrimSpace(response)
	if response == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "response is required")
	}
	if c.Status == ComplaintStatusResolved {
		return errors.Wrap(domainerrors.ErrInvalidState, "complaint already resolved")
	}

	c.Response = response
	c.RespondedBy = &adminID
	c.RespondedAt = &now
	c.Status = ComplaintStatusAnswered

	return nil
}

// Resolve closes the complaint.
func (c *Complaint) Resolve() error {
	if c.Status == ComplaintStatusResolved {
		return errors.Wrap(domainerrors.ErrInvalidState, "complaint already resolved")
	}
	c.Status = ComplaintStatusResolved

	return nil
}

// ComplaintFilter narrows admin complaint listings.
type ComplaintFilter struct {
	CustomerID *uuid.UUID
	Status     *ComplaintStatus
}
