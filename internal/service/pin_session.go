// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/galahseno/SpendLess-sub000/internal/config"
	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/models"
)

// pinSession is the concrete implementation of [PinSession]. The attempt
// counter and lockout deadline live in the encrypted preferences store, so
// the lockout survives process restarts and cannot be reset by clearing app
// memory.
//
// The PIN comparison is plaintext-equal: the stored PIN is encrypted at
// rest and decrypted for the comparison. It is not hashed.
type pinSession struct {
	cipher   crypto.EncryptionService
	settings prefs.Settings

	// maxFailedAttempts is the number of consecutive mismatches that
	// triggers a lockout.
	maxFailedAttempts int

	// now is the clock. Injected so lockout and expiry boundaries are
	// testable without sleeping.
	now func() time.Time

	logger *logger.Logger
}

// NewPinSession constructs a [PinSession] with the attempt limit taken from
// the security config. The lockout duration itself is a per-user preference
// read at lockout time, not fixed at construction.
func NewPinSession(cipher crypto.EncryptionService, settings prefs.Settings, cfg config.Security, logger *logger.Logger) PinSession {
	return &pinSession{
		cipher:            cipher,
		settings:          settings,
		maxFailedAttempts: cfg.MaxFailedAttempts,
		now:               time.Now,
		logger:            logger,
	}
}

// CheckPin runs one step of the lockout state machine.
//
// State transitions:
//   - locked out, window active → [ErrLockedOut], counter untouched. The
//     candidate is not even compared: a correct PIN during lockout must not
//     shorten the window or leak that it was correct.
//   - locked out, window expired → counter reset to zero, then the
//     candidate is evaluated as from a clean state.
//   - mismatch → counter incremented; reaching the limit arms the lockout
//     and returns [ErrLockedOut], otherwise [ErrCredentialsIncorrect].
//   - match → counter and lockout state cleared, nil returned.
func (p *pinSession) CheckPin(ctx context.Context, user models.User, candidate string) error {
	log := logger.FromContext(ctx)

	attempt, err := p.settings.GetPinAttempt(ctx)
	if err != nil {
		log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error reading pin attempt state")
		return err
	}

	now := p.now()

	if attempt.MaxFailedAttemptReached {
		if now.Before(attempt.LockedOutUntil) {
			log.Warn().Str("func", "*pinSession.CheckPin").Time("locked_out_until", attempt.LockedOutUntil).Msg("pin check rejected: locked out")
			return ErrLockedOut
		}

		// window expired: back to a clean slate before evaluating
		attempt = models.PinPromptAttempt{}
		if _, err = p.settings.UpdatePinAttempt(ctx, func(models.PinPromptAttempt) models.PinPromptAttempt {
			return models.PinPromptAttempt{}
		}); err != nil {
			log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error resetting expired lockout")
			return err
		}
	}

	storedPin, err := p.cipher.Decrypt(user.PinField)
	if err != nil {
		log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error decrypting stored pin")
		return fmt.Errorf("decrypting stored pin: %w", err)
	}

	if candidate == storedPin {
		if _, err = p.settings.UpdatePinAttempt(ctx, func(models.PinPromptAttempt) models.PinPromptAttempt {
			return models.PinPromptAttempt{}
		}); err != nil {
			log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error clearing pin attempt state")
			return err
		}
		return nil
	}

	attempt.FailedAttempt++

	if attempt.FailedAttempt >= p.maxFailedAttempts {
		security, err := p.settings.GetUserSecurity(ctx)
		if err != nil {
			log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error reading security preferences")
			return err
		}

		attempt.MaxFailedAttemptReached = true
		attempt.LockedOutUntil = now.Add(security.LockedOutDuration)

		if _, err = p.settings.UpdatePinAttempt(ctx, func(models.PinPromptAttempt) models.PinPromptAttempt {
			return attempt
		}); err != nil {
			log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error persisting lockout state")
			return err
		}

		log.Warn().Str("func", "*pinSession.CheckPin").Int("failed_attempts", attempt.FailedAttempt).Time("locked_out_until", attempt.LockedOutUntil).Msg("max failed attempts reached, locking out")
		return ErrLockedOut
	}

	if _, err = p.settings.UpdatePinAttempt(ctx, func(models.PinPromptAttempt) models.PinPromptAttempt {
		return attempt
	}); err != nil {
		log.Err(err).Str("func", "*pinSession.CheckPin").Msg("error persisting failed attempt")
		return err
	}

	return ErrCredentialsIncorrect
}

// IsSessionExpired delegates to the preferences layer, which compares the
// elapsed time since last activity against the configured expiry duration
// with a strictly-greater comparison.
func (p *pinSession) IsSessionExpired(ctx context.Context) (bool, error) {
	return p.settings.CheckSessionExpired(ctx)
}
