package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within one database transaction. A returned error rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	CatalogRepo() CatalogRepository
	CartRepo() CartRepository
	OrderRepo() OrderRepository
	PaymentProofRepo() PaymentProofRepository
	SecureLinkRepo() SecureLinkRepository
	ReviewRepo() ReviewRepository
	ComplaintRepo() ComplaintRepository
	ChatRepo() ChatRepository
}
