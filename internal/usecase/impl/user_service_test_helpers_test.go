package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sweets/config"
	"sweets/internal/domain/entity"
	"sweets/internal/domain/repository"
	mockRepo "sweets/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "Adm1n-Secret!"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Admin: &config.AdminConfig{
			Username: testAdminUsername,
			Password: testAdminPassword,
		},
		SecureLink: &config.SecureLinkConfig{
			BaseURL:    "https://doces.example.com/",
			DefaultTTL: 168 * time.Hour,
		},
	}
}

func fixedClock() time.Time {
	return testNow
}

func adminPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Username: testAdminUsername}
}

func customerPrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Username: "maria"}
}

// expectTransaction makes txManager run every unit of work against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// txRepos is a repository factory whose accessors hand out the given mocks.
type txRepos struct {
	factory    *mockRepo.MockRepositoryFactory
	users      *mockRepo.MockUserRepository
	auths      *mockRepo.MockAuthRepository
	tokens     *mockRepo.MockRefreshTokenRepository
	carts      *mockRepo.MockCartRepository
	orders     *mockRepo.MockOrderRepository
	proofs     *mockRepo.MockPaymentProofRepository
	links      *mockRepo.MockSecureLinkRepository
	complaints *mockRepo.MockComplaintRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:    mockRepo.NewMockRepositoryFactory(t),
		users:      mockRepo.NewMockUserRepository(t),
		auths:      mockRepo.NewMockAuthRepository(t),
		tokens:     mockRepo.NewMockRefreshTokenRepository(t),
		carts:      mockRepo.NewMockCartRepository(t),
		orders:     mockRepo.NewMockOrderRepository(t),
		proofs:     mockRepo.NewMockPaymentProofRepository(t),
		links:      mockRepo.NewMockSecureLinkRepository(t),
		complaints: mockRepo.NewMockComplaintRepository(t),
	}
	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().AuthRepo().Return(repos.auths).Maybe()
	repos.factory.EXPECT().RefreshTokenRepo().Return(repos.tokens).Maybe()
	repos.factory.EXPECT().CartRepo().Return(repos.carts).Maybe()
	repos.factory.EXPECT().OrderRepo().Return(repos.orders).Maybe()
	repos.factory.EXPECT().PaymentProofRepo().Return(repos.proofs).Maybe()
	repos.factory.EXPECT().SecureLinkRepo().Return(repos.links).Maybe()
	repos.factory.EXPECT().ComplaintRepo().Return(repos.complaints).Maybe()

	return repos
}
