package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sweets/config"
	"sweets/internal/domain/entity"
	"sweets/internal/infra/auth"
	logs "sweets/internal/infra/log"
	"sweets/internal/infra/persistence/postgres"
	"sweets/internal/infra/qrcode"
	"sweets/internal/usecase"
	"sweets/internal/usecase/impl"
	"sweets/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Issues a secure link from the shell:
//
//	securelink [--expires <hours>] [--order <uuid>]
//
// Without --expires the link never expires.
func main() {
	expires := flag.Int("expires", 0, "Expiration time in hours (0 means the link never expires)")
	order := flag.String("order", "", "Order to link (optional)")
	flag.Parse()

	if err := run(*expires, *order); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(expiresHours int, rawOrderID string) error {
	if expiresHours < 0 {
		return errors.New("--expires must not be negative")
	}
	ttl, err := entity.TTLFromHours(&expiresHours)
	if err != nil {
		return errors.Wrap(err, "invalid --expires")
	}

	var orderID *uuid.UUID
	if rawOrderID != "" {
		parsed, err := uuid.Parse(rawOrderID)
		if err != nil {
			return errors.Wrap(err, "invalid --order")
		}
		orderID = &parsed
	}

	var secureLinkUC usecase.SecureLinkUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewOrderRepository,
			postgres.NewSecureLinkRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			qrcode.NewQRCodeServiceFromConfig,
			impl.NewAccessGate,
			impl.NewSecureLinkService,
		),
		fx.Populate(&secureLinkUC),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	output, err := secureLinkUC.Issue(ctx, orderID, ttl)
	if err != nil {
		return err
	}

	fmt.Printf("Secure link created: %s\n", output.Link.Token)
	fmt.Printf("Share URL: %s\n", output.ShareURL)
	if output.Link.ExpiresAt != nil {
		fmt.Printf("Expires at: %s (in %s)\n",
			output.Link.ExpiresAt.Format(time.RFC3339),
			util.FormatDuration(time.Until(*output.Link.ExpiresAt)),
		)
	} else {
		fmt.Println("No expiration set")
	}

	return nil
}
