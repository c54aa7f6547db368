package service

import (
	"github.com/galahseno/SpendLess-sub000/internal/config"
	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/internal/store"
)

type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	DashboardService   DashboardService
	PinSession         PinSession
	SessionExpiryJob   SessionExpiryJob
}

func NewServices(storages *store.Storages, cipher crypto.EncryptionService, settings prefs.Settings, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	transactionCrypto := NewTransactionCrypto(cipher, logger)
	pinSession := NewPinSession(cipher, settings, cfg.Security, logger)

	return &Services{
		AuthService:        NewAuthService(storages.Users, cipher, pinSession, settings, logger),
		TransactionService: NewTransactionService(storages.Transactions, transactionCrypto, logger),
		DashboardService:   NewDashboardService(storages.Transactions, transactionCrypto, settings, logger),
		PinSession:         pinSession,
		SessionExpiryJob:   NewSessionExpiryJob(pinSession, settings, logger),
	}
}
