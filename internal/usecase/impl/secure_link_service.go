package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// secureOrderPath is appended to the configured base URL to build share links.
const secureOrderPath = "/secure-order/"

type secureLinkService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	secureLinkRepo repository.SecureLinkRepository
	qrCode         service.QRCodeService
	gate           usecase.AccessGate
	baseURL        string
	now            func() time.Time
	logger         *slog.Logger
}

// SecureLinkServiceParams holds dependencies for secureLinkService, injected by Fx.
type SecureLinkServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	SecureLinkRepo repository.SecureLinkRepository
	QRCode         service.QRCodeService
	Gate           usecase.AccessGate
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSecureLinkService is the constructor for secureLinkService.
func NewSecureLinkService(params SecureLinkServiceParams) usecase.SecureLinkUsecase {
	srv := &secureLinkService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		secureLinkRepo: params.SecureLinkRepo,
		qrCode:         params.QRCode,
		gate:           params.Gate,
		now:            time.Now,
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.SecureLink != nil {
		srv.baseURL = strings.TrimRight(params.Config.SecureLink.BaseURL, "/")
	}

	return srv
}

func (srv *secureLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueOrRefresh returns the order's link, creating it on first use. A repeated
// call keeps the token and only resets the expiry.
func (srv *secureLinkService) IssueOrRefresh(ctx context.Context, admin entity.Principal, orderID uuid.UUID, ttl *time.Duration) (*usecase.SecureLinkOutput, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return srv.issue(ctx, &orderID, ttl)
}

// Issue is the operator path; it does not consult the access gate.
func (srv *secureLinkService) Issue(ctx context.Context, orderID *uuid.UUID, ttl *time.Duration) (*usecase.SecureLinkOutput, error) {
	return srv.issue(ctx, orderID, ttl)
}

func (srv *secureLinkService) issue(ctx context.Context, orderID *uuid.UUID, ttl *time.Duration) (*usecase.SecureLinkOutput, error) {
	if ttl != nil && *ttl > entity.MaxLinkTTL {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "link lifetime must not exceed %s", entity.MaxLinkTTL)
	}
	if ttl != nil && *ttl <= 0 {
		ttl = nil
	}

	if orderID == nil {
		link := entity.NewSecureLink(nil, ttl, srv.now())
		if err := srv.secureLinkRepo.Create(ctx, link); err != nil {
			return nil, errors.Wrap(err, "failed to create secure link")
		}
		srv.log(ctx).Info("Secure link issued without order", slog.Any("linkID", link.ID))

		return srv.output(link), nil
	}

	var link *entity.SecureLink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The order row lock serialises concurrent issuers for the same order.
		if _, err := repoFactory.OrderRepo().LockByID(ctx, *orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		linkRepo := repoFactory.SecureLinkRepo()
		now := srv.now()

		existing, err := linkRepo.FindByOrderID(ctx, *orderID)
		if errors.Is(err, repository.ErrSecureLinkNotFound) {
			link = entity.NewSecureLink(orderID, ttl, now)

			return errors.Wrap(linkRepo.Create(ctx, link), "failed to create secure link")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find secure link")
		}

		existing.Refresh(ttl, now)
		if err := linkRepo.UpdateExpiry(ctx, existing.ID, existing.ExpiresAt); err != nil {
			return errors.Wrap(err, "failed to refresh secure link")
		}
		link = existing

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute secure link transaction")
	}
	srv.log(ctx).Info("Secure link issued", slog.Any("orderID", *orderID), slog.Any("expiresAt", link.ExpiresAt))

	return srv.output(link), nil
}

// Resolve returns the anonymous order view behind token.
func (srv *secureLinkService) Resolve(ctx context.Context, token string) (*entity.SecureOrderView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrLinkNotFound
	}

	link, err := srv.secureLinkRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSecureLinkNotFound) {
			return nil, domainerrors.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find secure link")
	}
	if link.OrderID == nil {
		return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "link has no order")
	}
	if !link.IsValid(srv.now()) {
		return nil, domainerrors.ErrLinkExpired
	}

	order, err := srv.orderRepo.FindByID(ctx, *link.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "linked order is gone")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return entity.NewSecureOrderView(order, link), nil
}

// ShareQR renders the order's share URL as a PNG QR code.
func (srv *secureLinkService) ShareQR(ctx context.Context, admin entity.Principal, orderID uuid.UUID) ([]byte, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	link, err := srv.secureLinkRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrSecureLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLinkNotFound, "order has no secure link yet")
		}

		return nil, errors.Wrap(err, "failed to find secure link")
	}

	png, err := srv.qrCode.GeneratePNG(srv.shareURL(link.Token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

func (srv *secureLinkService) shareURL(token string) string {
	return srv.baseURL + secureOrderPath + token
}

func (srv *secureLinkService) output(link *entity.SecureLink) *usecase.SecureLinkOutput {
	return &usecase.SecureLinkOutput{
		Link:     link,
		ShareURL: srv.shareURL(link.Token),
	}
}
