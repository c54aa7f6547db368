package prefs

import (
	"encoding/json"
	"time"

	"github.com/galahseno/SpendLess-sub000/models"
)

// Store keys for the three structured preference entities. Part of the
// on-disk contract; renaming one orphans previously written data.
const (
	KeyUserSession      = "user_session"
	KeyUserSecurity     = "user_security"
	KeyPinPromptAttempt = "pin_prompt_attempt"
)

// jsonSerializer encodes a preference value as canonical JSON. Enum fields
// carry integer tags whose validation lives in their UnmarshalJSON methods,
// so an out-of-range tag fails here and surfaces as ErrCorruptPreferences.
type jsonSerializer[T any] struct {
	def func() T
}

func (s jsonSerializer[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (s jsonSerializer[T]) Decode(data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func (s jsonSerializer[T]) Default() T {
	return s.def()
}

// UserSessionSerializer builds the serializer for [models.UserSession].
func UserSessionSerializer() Serializer[models.UserSession] {
	return jsonSerializer[models.UserSession]{def: DefaultUserSession}
}

// UserSecuritySerializer builds the serializer for [models.UserSecurity].
func UserSecuritySerializer() Serializer[models.UserSecurity] {
	return jsonSerializer[models.UserSecurity]{def: DefaultUserSecurity}
}

// PinPromptAttemptSerializer builds the serializer for
// [models.PinPromptAttempt].
func PinPromptAttemptSerializer() Serializer[models.PinPromptAttempt] {
	return jsonSerializer[models.PinPromptAttempt]{def: DefaultPinPromptAttempt}
}

// DefaultUserSession is the logged-out first-run session: US-style display
// formatting and no user.
func DefaultUserSession() models.UserSession {
	return models.UserSession{
		ExpensesFormat:    models.ExpensesMinusPrefix,
		CurrencySymbol:    "$",
		DecimalSeparator:  models.SeparatorDot,
		ThousandSeparator: models.SeparatorComma,
	}
}

// DefaultUserSecurity is the first-run security posture: biometrics off,
// 5 minute session expiry, 30 second lockout.
func DefaultUserSecurity() models.UserSecurity {
	return models.UserSecurity{
		BiometricPromptEnabled: false,
		SessionExpiryDuration:  5 * time.Minute,
		LockedOutDuration:      30 * time.Second,
	}
}

// DefaultPinPromptAttempt is the clean gate state: no failures, no lockout.
func DefaultPinPromptAttempt() models.PinPromptAttempt {
	return models.PinPromptAttempt{}
}
