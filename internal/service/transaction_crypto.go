// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/models"
)

// transactionCrypto is the concrete implementation of [TransactionCrypto].
// Each sensitive field gets its own Encrypt call and therefore its own IV;
// amounts are encoded with strconv.FormatFloat(f, 'f', -1, 64) so the
// round-trip is exact, repeat intervals by their wire name.
type transactionCrypto struct {
	cipher crypto.EncryptionService
	logger *logger.Logger
}

func NewTransactionCrypto(cipher crypto.EncryptionService, logger *logger.Logger) TransactionCrypto {
	return &transactionCrypto{
		cipher: cipher,
		logger: logger,
	}
}

func (t *transactionCrypto) EncryptTransaction(ctx context.Context, transaction models.Transaction) (models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	record := models.EncryptedTransaction{
		TransactionID: transaction.TransactionID,
		UserID:        transaction.UserID,
		CreatedAt:     transaction.CreatedAt,
	}

	fields := []struct {
		name  string
		plain string
		dst   *models.EncryptedField
	}{
		{"name", transaction.Name, &record.Name},
		{"category_emoji", transaction.CategoryEmoji, &record.CategoryEmoji},
		{"category_name", transaction.CategoryName, &record.CategoryName},
		{"amount", strconv.FormatFloat(transaction.Amount, 'f', -1, 64), &record.Amount},
		{"note", transaction.Note, &record.Note},
		{"repeat", transaction.Repeat.String(), &record.Repeat},
	}

	for _, f := range fields {
		encrypted, err := t.cipher.Encrypt(f.plain)
		if err != nil {
			log.Err(err).Str("func", "*transactionCrypto.EncryptTransaction").Str("field", f.name).Msg("error encrypting field")
			return models.EncryptedTransaction{}, fmt.Errorf("encrypting %s: %w", f.name, err)
		}
		*f.dst = encrypted
	}

	return record, nil
}

func (t *transactionCrypto) DecryptTransaction(ctx context.Context, record models.EncryptedTransaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	transaction := models.Transaction{
		TransactionID: record.TransactionID,
		UserID:        record.UserID,
		CreatedAt:     record.CreatedAt,
	}

	fields := []struct {
		name string
		src  models.EncryptedField
		dst  *string
	}{
		{"name", record.Name, &transaction.Name},
		{"category_emoji", record.CategoryEmoji, &transaction.CategoryEmoji},
		{"category_name", record.CategoryName, &transaction.CategoryName},
		{"note", record.Note, &transaction.Note},
	}

	for _, f := range fields {
		plain, err := t.cipher.Decrypt(f.src)
		if err != nil {
			log.Err(err).Str("func", "*transactionCrypto.DecryptTransaction").Str("field", f.name).Msg("error decrypting field")
			return models.Transaction{}, fmt.Errorf("decrypting %s: %w", f.name, err)
		}
		*f.dst = plain
	}

	amount, err := t.DecryptAmount(ctx, record.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	transaction.Amount = amount

	repeatName, err := t.cipher.Decrypt(record.Repeat)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptTransaction").Msg("error decrypting repeat interval")
		return models.Transaction{}, fmt.Errorf("decrypting repeat: %w", err)
	}
	repeat, err := models.ParseRepeatInterval(repeatName)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptTransaction").Msg("decrypted repeat interval is not recognized")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrProcess, err)
	}
	transaction.Repeat = repeat

	return transaction, nil
}

func (t *transactionCrypto) DecryptAmount(ctx context.Context, field models.EncryptedField) (float64, error) {
	log := logger.FromContext(ctx)

	plain, err := t.cipher.Decrypt(field)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptAmount").Msg("error decrypting amount")
		return 0, fmt.Errorf("decrypting amount: %w", err)
	}

	amount, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptAmount").Msg("decrypted amount is not a number")
		return 0, fmt.Errorf("%w: parsing amount: %w", ErrProcess, err)
	}

	return amount, nil
}

func (t *transactionCrypto) DecryptCategoryWithEmoji(ctx context.Context, record models.CategoryAmountRecord) (models.CategoryWithEmoji, error) {
	log := logger.FromContext(ctx)

	name, err := t.cipher.Decrypt(record.CategoryName)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptCategoryWithEmoji").Msg("error decrypting category name")
		return models.CategoryWithEmoji{}, fmt.Errorf("decrypting category name: %w", err)
	}

	emoji, err := t.cipher.Decrypt(record.CategoryEmoji)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptCategoryWithEmoji").Msg("error decrypting category emoji")
		return models.CategoryWithEmoji{}, fmt.Errorf("decrypting category emoji: %w", err)
	}

	return models.CategoryWithEmoji{Name: name, Emoji: emoji}, nil
}

func (t *transactionCrypto) DecryptLargestTransaction(ctx context.Context, record models.LargestTransactionRecord) (models.LargestTransaction, error) {
	log := logger.FromContext(ctx)

	name, err := t.cipher.Decrypt(record.Name)
	if err != nil {
		log.Err(err).Str("func", "*transactionCrypto.DecryptLargestTransaction").Msg("error decrypting name")
		return models.LargestTransaction{}, fmt.Errorf("decrypting name: %w", err)
	}

	amount, err := t.DecryptAmount(ctx, record.Amount)
	if err != nil {
		return models.LargestTransaction{}, err
	}

	return models.LargestTransaction{
		Name:      name,
		Amount:    amount,
		CreatedAt: record.CreatedAt,
	}, nil
}
