package usecase

import (
	"context"
	"time"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// SecureLinkOutput is an issued link plus the URL to hand out.
type SecureLinkOutput struct {
	Link     *entity.SecureLink
	ShareURL string
}

// SecureLinkUsecase issues and resolves anonymous order links. A nil ttl means
// the link never expires.
type SecureLinkUsecase interface {
	IssueOrRefresh(ctx context.Context, admin entity.Principal, orderID uuid.UUID, ttl *time.Duration) (*SecureLinkOutput, error)

	// Issue is the operator path used by the command line tool; it is not gated.
	Issue(ctx context.Context, orderID *uuid.UUID, ttl *time.Duration) (*SecureLinkOutput, error)

	Resolve(ctx context.Context, token string) (*entity.SecureOrderView, error)

	// ShareQR renders the order's share URL as a PNG QR code.
	ShareQR(ctx context.Context, admin entity.Principal, orderID uuid.UUID) ([]byte, error)
}
