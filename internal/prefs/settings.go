// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Galah Seno

package prefs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/models"
)

//go:generate mockgen -source=settings.go -destination=../mock/settings_mock.go -package=mock

// Settings is the single owner of the encrypted preference codecs and the
// only preferences touchpoint exposed to the rest of the application. It
// replaces process-global preference state with one injected instance that
// publishes changes through watch channels.
type Settings interface {
	GetUserSession(ctx context.Context) (models.UserSession, error)
	GetUserSecurity(ctx context.Context) (models.UserSecurity, error)
	GetPinAttempt(ctx context.Context) (models.PinPromptAttempt, error)

	// SaveRegisterSession establishes a fresh session for a newly created
	// account, minting a new session token and resetting activity time.
	SaveRegisterSession(ctx context.Context, user models.User) error

	// SaveLoginSession establishes a session after a successful PIN check,
	// preserving the existing display preferences.
	SaveLoginSession(ctx context.Context, user models.User) error

	SaveUserSecurity(ctx context.Context, security models.UserSecurity) error

	// UpdatePinAttempt applies fn to the persisted attempt state under the
	// codec's writer lock and returns the stored result.
	UpdatePinAttempt(ctx context.Context, fn func(models.PinPromptAttempt) models.PinPromptAttempt) (models.PinPromptAttempt, error)

	// ChangeAddBottomSheetValue records whether the add-transaction sheet
	// is open so the UI can restore it after a process restart.
	ChangeAddBottomSheetValue(ctx context.Context, open bool) error

	// TouchSession stamps the current instant as the last foreground
	// activity; session expiry is measured from it.
	TouchSession(ctx context.Context) error

	// CheckSessionExpired reports whether elapsed background time exceeds
	// the configured session expiry duration.
	CheckSessionExpired(ctx context.Context) (bool, error)

	// ClearSession logs the user out, reverting the session preference to
	// its logged-out default while keeping security settings intact.
	ClearSession(ctx context.Context) error

	// WatchUserSession delivers every subsequently saved session value
	// until ctx is cancelled.
	WatchUserSession(ctx context.Context) <-chan models.UserSession

	// WatchUserSecurity delivers every subsequently saved security value
	// until ctx is cancelled.
	WatchUserSecurity(ctx context.Context) <-chan models.UserSecurity
}

type settings struct {
	session  *Codec[models.UserSession]
	security *Codec[models.UserSecurity]
	attempt  *Codec[models.PinPromptAttempt]

	sessionFeed  *broadcaster[models.UserSession]
	securityFeed *broadcaster[models.UserSecurity]

	now    func() time.Time
	logger *logger.Logger
}

// NewSettings constructs the [Settings] facade over one byte store and one
// encryption service. All three codecs share the store instance; each keeps
// its own writer lock, matching the one-writer-per-entity contract.
func NewSettings(store ByteStore, cipher crypto.EncryptionService, log *logger.Logger) Settings {
	log.Debug().Msg("creating settings preferences")
	return &settings{
		session:      NewCodec(KeyUserSession, store, cipher, UserSessionSerializer()),
		security:     NewCodec(KeyUserSecurity, store, cipher, UserSecuritySerializer()),
		attempt:      NewCodec(KeyPinPromptAttempt, store, cipher, PinPromptAttemptSerializer()),
		sessionFeed:  newBroadcaster[models.UserSession](),
		securityFeed: newBroadcaster[models.UserSecurity](),
		now:          time.Now,
		logger:       log,
	}
}

func (s *settings) GetUserSession(ctx context.Context) (models.UserSession, error) {
	return s.session.Read(ctx)
}

func (s *settings) GetUserSecurity(ctx context.Context) (models.UserSecurity, error) {
	return s.security.Read(ctx)
}

func (s *settings) GetPinAttempt(ctx context.Context) (models.PinPromptAttempt, error) {
	return s.attempt.Read(ctx)
}

func (s *settings) SaveRegisterSession(ctx context.Context, user models.User) error {
	session := DefaultUserSession()
	session.UserID = user.UserID
	session.Username = user.Username
	session.SessionToken = uuid.NewString()
	session.LastActiveAt = s.now()

	if err := s.session.Write(ctx, session); err != nil {
		return err
	}
	s.sessionFeed.publish(session)
	return nil
}

func (s *settings) SaveLoginSession(ctx context.Context, user models.User) error {
	session, err := s.session.Update(ctx, func(cur models.UserSession) models.UserSession {
		cur.UserID = user.UserID
		cur.Username = user.Username
		cur.SessionToken = uuid.NewString()
		cur.LastActiveAt = s.now()
		return cur
	})
	if err != nil {
		return err
	}
	s.sessionFeed.publish(session)
	return nil
}

func (s *settings) SaveUserSecurity(ctx context.Context, security models.UserSecurity) error {
	if err := s.security.Write(ctx, security); err != nil {
		return err
	}
	s.securityFeed.publish(security)
	return nil
}

func (s *settings) UpdatePinAttempt(ctx context.Context, fn func(models.PinPromptAttempt) models.PinPromptAttempt) (models.PinPromptAttempt, error) {
	return s.attempt.Update(ctx, fn)
}

func (s *settings) ChangeAddBottomSheetValue(ctx context.Context, open bool) error {
	session, err := s.session.Update(ctx, func(cur models.UserSession) models.UserSession {
		cur.AddBottomSheetOpen = open
		return cur
	})
	if err != nil {
		return err
	}
	s.sessionFeed.publish(session)
	return nil
}

func (s *settings) TouchSession(ctx context.Context) error {
	_, err := s.session.Update(ctx, func(cur models.UserSession) models.UserSession {
		cur.LastActiveAt = s.now()
		return cur
	})
	return err
}

func (s *settings) CheckSessionExpired(ctx context.Context) (bool, error) {
	session, err := s.session.Read(ctx)
	if err != nil {
		return false, err
	}
	if !session.LoggedIn() {
		return true, nil
	}

	security, err := s.security.Read(ctx)
	if err != nil {
		return false, err
	}

	elapsed := s.now().Sub(session.LastActiveAt)
	return elapsed > security.SessionExpiryDuration, nil
}

func (s *settings) ClearSession(ctx context.Context) error {
	session, err := s.session.Update(ctx, func(cur models.UserSession) models.UserSession {
		def := DefaultUserSession()
		// Display preferences survive logout; identity does not.
		def.ExpensesFormat = cur.ExpensesFormat
		def.CurrencySymbol = cur.CurrencySymbol
		def.DecimalSeparator = cur.DecimalSeparator
		def.ThousandSeparator = cur.ThousandSeparator
		return def
	})
	if err != nil {
		return err
	}
	s.sessionFeed.publish(session)
	return nil
}

func (s *settings) WatchUserSession(ctx context.Context) <-chan models.UserSession {
	return s.sessionFeed.subscribe(ctx)
}

func (s *settings) WatchUserSecurity(ctx context.Context) <-chan models.UserSecurity {
	return s.securityFeed.subscribe(ctx)
}

// broadcaster fans written preference values out to watch subscribers.
// Delivery is best-effort: a subscriber that stops draining its channel
// loses updates instead of blocking writers.
type broadcaster[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: make(map[int]chan T)}
}

func (b *broadcaster[T]) subscribe(ctx context.Context) <-chan T {
	b.mu.Lock()
	id := b.next
	b.next++
	ch := make(chan T, 8)
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (b *broadcaster[T]) publish(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- value:
		default:
		}
	}
}
