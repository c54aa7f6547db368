package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/mock"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockEncryptionService, *mock.MockPinSession, *mock.MockSettings) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockCipher := mock.NewMockEncryptionService(ctrl)
	mockPinSession := mock.NewMockPinSession(ctrl)
	mockSettings := mock.NewMockSettings(ctrl)

	svc := NewAuthService(mockUsers, mockCipher, mockPinSession, mockSettings, logger.Nop()).(*authService)
	return svc, mockUsers, mockCipher, mockPinSession, mockSettings
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockCipher, _, mockSettings := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	encryptedPin := models.EncryptedField{Ciphertext: "cGluLWN0", IV: "aXYtMTIzNDU2"}

	gomock.InOrder(
		mockCipher.EXPECT().Encrypt("1234").Return(encryptedPin, nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, encryptedPin, u.PinField)
				assert.Empty(t, u.Pin, "plaintext pin must never reach the store")
				u.UserID = 1
				return u, nil
			},
		),
		mockSettings.EXPECT().SaveRegisterSession(ctx, gomock.Any()).Return(nil),
	)

	user, err := svc.Register(ctx, "alice", "1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Register_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "1234")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockCipher, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockCipher.EXPECT().Encrypt("1234").Return(models.EncryptedField{Ciphertext: "ct", IV: "iv"}, nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserExists)

	_, err := svc.Register(ctx, "alice", "1234")
	assert.ErrorIs(t, err, store.ErrUserExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, mockPinSession, mockSettings := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foundUser := models.User{UserID: 1, Username: "alice", PinField: models.EncryptedField{Ciphertext: "ct", IV: "iv"}}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(foundUser, nil),
		mockPinSession.EXPECT().CheckPin(ctx, foundUser, "1234").Return(nil),
		mockSettings.EXPECT().SaveLoginSession(ctx, foundUser).Return(nil),
	)

	user, err := svc.Login(ctx, "alice", "1234")
	require.NoError(t, err)
	assert.Equal(t, foundUser, user)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "nobody").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "nobody", "1234")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_WrongPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, mockPinSession, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foundUser := models.User{UserID: 1, Username: "alice"}

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(foundUser, nil)
	mockPinSession.EXPECT().CheckPin(ctx, foundUser, "0000").Return(ErrCredentialsIncorrect)

	_, err := svc.Login(ctx, "alice", "0000")
	assert.ErrorIs(t, err, ErrCredentialsIncorrect)
}

func TestAuthService_Login_LockedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _, mockPinSession, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	foundUser := models.User{UserID: 1, Username: "alice"}

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(foundUser, nil)
	// lockout applies regardless of which pin is offered
	mockPinSession.EXPECT().CheckPin(ctx, foundUser, "1234").Return(ErrLockedOut)

	_, err := svc.Login(ctx, "alice", "1234")
	assert.ErrorIs(t, err, ErrLockedOut)
}

func TestAuthService_Login_EncryptErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCipher, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	encryptErr := errors.New("cipher unavailable")
	mockCipher.EXPECT().Encrypt("1234").Return(models.EncryptedField{}, encryptErr)

	_, err := svc.Register(ctx, "alice", "1234")
	assert.ErrorIs(t, err, encryptErr)
}
