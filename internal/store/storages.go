package store

import (
	"github.com/galahseno/SpendLess-sub000/internal/logger"
)

// Storages bundles every repository behind one constructor so the
// application wires the storage layer in a single call.
type Storages struct {
	Users        UserRepository
	Transactions TransactionRepository
}

// NewStorages runs pending migrations and constructs all repositories on
// top of the shared connection.
func NewStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error running migrations")
		return nil, err
	}

	return &Storages{
		Users:        NewUserRepository(db, log),
		Transactions: NewTransactionRepository(db, log),
	}, nil
}
