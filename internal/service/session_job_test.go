package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/mock"
	"github.com/galahseno/SpendLess-sub000/models"
)

func TestSessionExpiryJob_ClearsExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPinSession := mock.NewMockPinSession(ctrl)
	mockSettings := mock.NewMockSettings(ctrl)

	cleared := make(chan struct{})

	mockPinSession.EXPECT().IsSessionExpired(gomock.Any()).Return(true, nil).MinTimes(1)
	mockSettings.EXPECT().GetUserSession(gomock.Any()).Return(models.UserSession{UserID: 1, SessionToken: "tok"}, nil).MinTimes(1)
	mockSettings.EXPECT().ClearSession(gomock.Any()).DoAndReturn(func(context.Context) error {
		select {
		case cleared <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	job := NewSessionExpiryJob(mockPinSession, mockSettings, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	select {
	case <-cleared:
	case <-time.After(2 * time.Second):
		t.Fatal("expired session was never cleared")
	}
}

func TestSessionExpiryJob_LeavesActiveSessionAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPinSession := mock.NewMockPinSession(ctrl)
	mockSettings := mock.NewMockSettings(ctrl)

	checked := make(chan struct{})
	mockPinSession.EXPECT().IsSessionExpired(gomock.Any()).DoAndReturn(func(context.Context) (bool, error) {
		select {
		case checked <- struct{}{}:
		default:
		}
		return false, nil
	}).MinTimes(1)
	// no GetUserSession, no ClearSession

	job := NewSessionExpiryJob(mockPinSession, mockSettings, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry check never ran")
	}
	job.Stop()
}

func TestSessionExpiryJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewSessionExpiryJob(mock.NewMockPinSession(ctrl), mock.NewMockSettings(ctrl), logger.Nop())

	// never started
	job.Stop()

	job.Start(context.Background(), time.Hour)
	job.Stop()
	job.Stop()
}
