package validators

import (
	"context"
	"math"

	"github.com/galahseno/SpendLess-sub000/models"
)

const (
	FieldName   = "name"
	FieldUserID = "user_id"
	FieldAmount = "amount"
	FieldRepeat = "repeat"
)

type TransactionValidator struct {
}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TransactionValidator) validateTransaction(_ context.Context, transaction models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUserID, FieldAmount, FieldRepeat}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if transaction.Name == "" {
				return ErrEmptyName
			}
		case FieldUserID:
			if transaction.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldAmount:
			// NaN and infinities have no decimal wire form and would
			// round-trip as garbage through the encrypted column.
			if math.IsNaN(transaction.Amount) || math.IsInf(transaction.Amount, 0) {
				return ErrInvalidAmount
			}
		case FieldRepeat:
			if !transaction.Repeat.Valid() {
				return ErrInvalidRepeatInterval
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
