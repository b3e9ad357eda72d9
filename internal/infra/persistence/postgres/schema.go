package postgres

import (
	"context"

	"sweets/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schemaModels lists the tables in dependency order.
var schemaModels = []any{
	&model.UserModel{},
	&model.AuthenticationModel{},
	&model.RefreshTokenModel{},
	&model.UserDeviceModel{},
	&model.CategoryModel{},
	&model.ProductModel{},
	&model.CartModel{},
	&model.CartItemModel{},
	&model.OrderModel{},
	&model.OrderItemModel{},
	&model.PaymentProofModel{},
	&model.SecureLinkModel{},
	&model.ReviewModel{},
	&model.ComplaintModel{},
	&model.ChatMessageModel{},
}

// schemaStatements cover what struct tags cannot express.
var schemaStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_open_owner ON carts (owner_id) WHERE NOT ordered`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_unread ON chat_messages (recipient_id, sender_id) WHERE NOT read`,
}

// Migrate creates or updates the storefront schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.AutoMigrate(schemaModels...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}
	for _, stmt := range schemaStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to apply schema statement %q", stmt)
		}
	}

	return nil
}
