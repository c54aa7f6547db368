package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrEmptyName             = errors.New("name is required")
	ErrInvalidRepeatInterval = errors.New("invalid repeat interval")
	ErrInvalidAmount         = errors.New("invalid amount")
)
