package service

import (
	"context"
	"fmt"
	"time"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/internal/validators"
	"github.com/galahseno/SpendLess-sub000/models"
)

// transactionService is the concrete implementation of [TransactionService].
// It sits between the plaintext domain and the encrypted store: everything
// going down is encrypted field-by-field, everything coming up is decrypted
// before it leaves the service.
type transactionService struct {
	transactionRepository store.TransactionRepository
	transactionCrypto     TransactionCrypto
	validator             validators.Validator
	logger                *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, transactionCrypto TransactionCrypto, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		transactionCrypto:     transactionCrypto,
		validator:             validators.NewTransactionValidator(),
		logger:                logger,
	}
}

// CreateTransaction encrypts and persists a transaction, returning it with
// the assigned TransactionID and CreatedAt.
//
// Returns [ErrInvalidDataProvided] when the name is empty, the owner is
// missing, the amount is not a finite number, or the repeat interval is not
// one of the declared values.
func (s *transactionService) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, transaction); err != nil {
		log.Err(err).Str("func", "*transactionService.CreateTransaction").Msg("invalid transaction data provided")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now().UTC()
	}

	record, err := s.transactionCrypto.EncryptTransaction(ctx, transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	transactionID, err := s.transactionRepository.CreateTransaction(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*transactionService.CreateTransaction").Int64("user_id", transaction.UserID).Msg("transaction creation ended with error")
		return models.Transaction{}, fmt.Errorf("transaction creation ended with error: %w", err)
	}
	transaction.TransactionID = transactionID

	return transaction, nil
}

// GetAllTransactions returns the user's decrypted transactions, newest
// first. A single record that fails to decrypt aborts the whole read: a
// partially readable history would silently misreport balances.
func (s *transactionService) GetAllTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	records, err := s.transactionRepository.GetAllTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions ended with error: %w", err)
	}

	return s.decryptAll(ctx, records)
}

// GetTransactionsBetween returns the user's decrypted transactions created
// in [from, to), newest first.
func (s *transactionService) GetTransactionsBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.Transaction, error) {
	records, err := s.transactionRepository.GetTransactionsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions ended with error: %w", err)
	}

	return s.decryptAll(ctx, records)
}

func (s *transactionService) decryptAll(ctx context.Context, records []models.EncryptedTransaction) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		transaction, err := s.transactionCrypto.DecryptTransaction(ctx, record)
		if err != nil {
			log.Err(err).Str("func", "*transactionService.decryptAll").Int64("transaction_id", record.TransactionID).Msg("error decrypting transaction")
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}
