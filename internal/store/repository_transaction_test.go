package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/models"
)

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &transactionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testEncryptedTransaction(userID int64) models.EncryptedTransaction {
	field := func(suffix string) models.EncryptedField {
		return models.EncryptedField{Ciphertext: "ct-" + suffix, IV: "iv-" + suffix}
	}
	return models.EncryptedTransaction{
		UserID:        userID,
		Name:          field("name"),
		CategoryEmoji: field("emoji"),
		CategoryName:  field("category"),
		Amount:        field("amount"),
		Note:          field("note"),
		Repeat:        field("repeat"),
		CreatedAt:     time.Now(),
	}
}

func encryptedTransactionRow(rec models.EncryptedTransaction, id int64) []driver.Value {
	return []driver.Value{
		id, rec.UserID,
		rec.Name.Ciphertext, rec.Name.IV,
		rec.CategoryEmoji.Ciphertext, rec.CategoryEmoji.IV,
		rec.CategoryName.Ciphertext, rec.CategoryName.IV,
		rec.Amount.Ciphertext, rec.Amount.IV,
		rec.Note.Ciphertext, rec.Note.IV,
		rec.Repeat.Ciphertext, rec.Repeat.IV,
		rec.CreatedAt,
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	rec := testEncryptedTransaction(1)

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			rec.UserID,
			rec.Name.Ciphertext, rec.Name.IV,
			rec.CategoryEmoji.Ciphertext, rec.CategoryEmoji.IV,
			rec.CategoryName.Ciphertext, rec.CategoryName.IV,
			rec.Amount.Ciphertext, rec.Amount.IV,
			rec.Note.Ciphertext, rec.Note.IV,
			rec.Repeat.Ciphertext, rec.Repeat.IV,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(42, 1))

	rowID, err := repo.CreateTransaction(ctx, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rowID != 42 {
		t.Errorf("expected row id 42, got %d", rowID)
	}
}

func TestCreateTransaction_InvalidRowID(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	rec := testEncryptedTransaction(1)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.CreateTransaction(ctx, rec)
	if !errors.Is(err, ErrTransactionNotSaved) {
		t.Fatalf("expected ErrTransactionNotSaved, got %v", err)
	}
}

func TestCreateTransaction_DBError(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	rec := testEncryptedTransaction(1)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.CreateTransaction(ctx, rec)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetAllTransactions_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	first := testEncryptedTransaction(1)
	second := testEncryptedTransaction(1)

	rows := sqlmock.NewRows(transactionColumns).
		AddRow(encryptedTransactionRow(second, 2)...).
		AddRow(encryptedTransactionRow(first, 1)...)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := repo.GetAllTransactions(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TransactionID != 2 || records[1].TransactionID != 1 {
		t.Errorf("expected records in query order, got ids %d, %d", records[0].TransactionID, records[1].TransactionID)
	}
	if records[0].Amount.Ciphertext != second.Amount.Ciphertext {
		t.Errorf("unexpected amount ciphertext: %s", records[0].Amount.Ciphertext)
	}
}

func TestGetAllTransactions_Empty(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	records, err := repo.GetAllTransactions(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestGetTransactionsBetween_PassesRange(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1), from, to).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.GetTransactionsBetween(ctx, 1, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetLargestTransactionCandidates_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(largestCandidateColumns).
		AddRow("ct-name", "iv-name", "ct-amount", "iv-amount", now)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := repo.GetLargestTransactionCandidates(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Amount.Ciphertext != "ct-amount" || records[0].Amount.IV != "iv-amount" {
		t.Errorf("unexpected amount projection: %+v", records[0].Amount)
	}
}

func TestGetCategoryAmounts_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(categoryAmountColumns).
		AddRow("ct-emoji", "iv-emoji", "ct-category", "iv-category", "ct-amount", "iv-amount").
		AddRow("ct-emoji2", "iv-emoji2", "ct-category2", "iv-category2", "ct-amount2", "iv-amount2")

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := repo.GetCategoryAmounts(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].CategoryName.Ciphertext != "ct-category2" {
		t.Errorf("unexpected category projection: %+v", records[1].CategoryName)
	}
}

func TestGetCategoryAmounts_QueryError(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.GetCategoryAmounts(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
