package service

import (
	"context"
	"fmt"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/models"
)

// authService is the concrete implementation of [AuthService]. It owns
// account creation and PIN login; the lockout state machine is delegated to
// [PinSession] so the two concerns stay independently testable.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// cipher encrypts the PIN before it reaches the repository. The
	// plaintext PIN lives only in memory for the duration of the call.
	cipher crypto.EncryptionService

	// pinSession enforces the failed-attempt lockout on login.
	pinSession PinSession

	// settings persists the session established by a successful
	// register or login.
	settings prefs.Settings

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// repositories and preference store.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cipher crypto.EncryptionService, pinSession PinSession, settings prefs.Settings, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		cipher:         cipher,
		pinSession:     pinSession,
		settings:       settings,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The PIN is encrypted before persistence; the stored row carries only the
// (ciphertext, IV) pair. On success a fresh session with default display
// preferences is seeded.
//
// Returns the persisted user (with an assigned UserID) or:
//   - [ErrInvalidDataProvided] if username or pin is empty.
//   - [store.ErrUserExists] (wrapped) if the username is taken.
func (a *authService) Register(ctx context.Context, username, pin string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || pin == "" {
		log.Error().Str("func", "*authService.Register").Msg("empty username or pin provided")
		return models.User{}, ErrInvalidDataProvided
	}

	encryptedPin, err := a.cipher.Encrypt(pin)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error encrypting pin")
		return models.User{}, fmt.Errorf("encrypting pin: %w", err)
	}

	user := models.User{
		Username: username,
		PinField: encryptedPin,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.settings.SaveRegisterSession(ctx, registeredUser); err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error seeding session preferences")
		return models.User{}, fmt.Errorf("seeding session preferences: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// Returns the authenticated user record or:
//   - [ErrInvalidDataProvided] if username or pin is empty.
//   - [store.ErrUserNotFound] (wrapped) if no such account exists.
//   - [ErrCredentialsIncorrect] on a PIN mismatch.
//   - [ErrLockedOut] while the lockout window is active.
func (a *authService) Login(ctx context.Context, username, pin string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || pin == "" {
		log.Error().Str("func", "*authService.Login").Msg("empty username or pin provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", username).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if err = a.pinSession.CheckPin(ctx, foundUser, pin); err != nil {
		log.Warn().Str("func", "*authService.Login").Str("username", username).Msg("pin check failed")
		return models.User{}, err
	}

	if err = a.settings.SaveLoginSession(ctx, foundUser); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error saving login session")
		return models.User{}, fmt.Errorf("saving login session: %w", err)
	}

	return foundUser, nil
}
