package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/models"
)

// transactionRepository is the SQLite-backed implementation of
// [TransactionRepository]. Every sensitive column is written and read as an
// opaque (ciphertext, IV) base64 pair; only transaction_id, user_id and
// created_at are plaintext, so filtering and ordering happen on those
// columns alone.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTransaction persists an encrypted record and returns the assigned
// row id. A non-positive row id from the driver yields
// [ErrTransactionNotSaved].
func (r *transactionRepository) CreateTransaction(ctx context.Context, record models.EncryptedTransaction) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createTransaction,
		record.UserID,
		record.Name.Ciphertext, record.Name.IV,
		record.CategoryEmoji.Ciphertext, record.CategoryEmoji.IV,
		record.CategoryName.Ciphertext, record.CategoryName.IV,
		record.Amount.Ciphertext, record.Amount.IV,
		record.Note.Ciphertext, record.Note.IV,
		record.Repeat.Ciphertext, record.Repeat.IV,
		record.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Int64("user_id", record.UserID).Msg("error inserting transaction")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Msg("error getting inserted row id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowID <= 0 {
		log.Error().Str("func", "*transactionRepository.CreateTransaction").Int64("row_id", rowID).Msg("driver returned invalid row id")
		return 0, ErrTransactionNotSaved
	}

	return rowID, nil
}

// GetAllTransactions returns every encrypted record owned by the user,
// newest first.
func (r *transactionRepository) GetAllTransactions(ctx context.Context, userID int64) ([]models.EncryptedTransaction, error) {
	query, args, err := sq.Select(transactionColumns...).
		From(models.EncryptedTransaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "transaction_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTransactions(ctx, query, args)
}

// GetTransactionsBetween returns the user's encrypted records whose
// creation time falls in [from, to), newest first.
func (r *transactionRepository) GetTransactionsBetween(ctx context.Context, userID int64, from, to time.Time) ([]models.EncryptedTransaction, error) {
	query, args, err := sq.Select(transactionColumns...).
		From(models.EncryptedTransaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("created_at DESC", "transaction_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTransactions(ctx, query, args)
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args []any) ([]models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.queryTransactions").Msg("error querying transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.EncryptedTransaction
	for rows.Next() {
		var rec models.EncryptedTransaction
		err = rows.Scan(
			&rec.TransactionID,
			&rec.UserID,
			&rec.Name.Ciphertext, &rec.Name.IV,
			&rec.CategoryEmoji.Ciphertext, &rec.CategoryEmoji.IV,
			&rec.CategoryName.Ciphertext, &rec.CategoryName.IV,
			&rec.Amount.Ciphertext, &rec.Amount.IV,
			&rec.Note.Ciphertext, &rec.Note.IV,
			&rec.Repeat.Ciphertext, &rec.Repeat.IV,
			&rec.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*transactionRepository.queryTransactions").Msg("error scanning transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*transactionRepository.queryTransactions").Msg("error iterating transaction rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// GetLargestTransactionCandidates returns the (name, amount, created_at)
// projection of every record owned by the user. The maximum cannot be
// selected in SQL because amounts are ciphertext; callers decrypt and
// compare.
func (r *transactionRepository) GetLargestTransactionCandidates(ctx context.Context, userID int64) ([]models.LargestTransactionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(largestCandidateColumns...).
		From(models.EncryptedTransaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.GetLargestTransactionCandidates").Msg("error querying candidates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.LargestTransactionRecord
	for rows.Next() {
		var rec models.LargestTransactionRecord
		err = rows.Scan(
			&rec.Name.Ciphertext, &rec.Name.IV,
			&rec.Amount.Ciphertext, &rec.Amount.IV,
			&rec.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*transactionRepository.GetLargestTransactionCandidates").Msg("error scanning candidate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// GetCategoryAmounts returns the (category, amount) projection of every
// record owned by the user. Grouping happens after decryption, not in SQL:
// two rows of the same category carry different IVs and therefore different
// ciphertexts.
func (r *transactionRepository) GetCategoryAmounts(ctx context.Context, userID int64) ([]models.CategoryAmountRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(categoryAmountColumns...).
		From(models.EncryptedTransaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.GetCategoryAmounts").Msg("error querying category amounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.CategoryAmountRecord
	for rows.Next() {
		var rec models.CategoryAmountRecord
		err = rows.Scan(
			&rec.CategoryEmoji.Ciphertext, &rec.CategoryEmoji.IV,
			&rec.CategoryName.Ciphertext, &rec.CategoryName.IV,
			&rec.Amount.Ciphertext, &rec.Amount.IV,
		)
		if err != nil {
			log.Err(err).Str("func", "*transactionRepository.GetCategoryAmounts").Msg("error scanning category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
