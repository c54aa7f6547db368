package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/galahseno/SpendLess-sub000/internal/config"
	"github.com/galahseno/SpendLess-sub000/internal/crypto"
	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/internal/service"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/internal/workers"
)

// keyPassphrase selects the app's key slot in the keystore. The passphrase
// itself is not the secret: the keystore wraps the random data key under an
// Argon2id-derived KEK, emulating a device secure element.
const keyPassphrase = "spendless.core"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("spendless")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	keystore, err := crypto.NewFileKeystore(cfg.Storage.Keystore.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening keystore")
	}
	key, err := keystore.GetOrCreateKey([]byte(keyPassphrase))
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving data key")
	}
	cipher := crypto.NewEncryptionService(key)

	byteStore, err := prefs.NewFileByteStore(cfg.Storage.Preferences.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening preference store")
	}
	settings := prefs.NewSettings(byteStore, cipher, log)

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	storages, err := store.NewStorages(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cipher, settings, *cfg, log)

	services.SessionExpiryJob.Start(ctx, 30*time.Second)
	defer services.SessionExpiryJob.Stop()

	background := workers.NewWorkers(
		workers.WorkerFunc(func() { go watchSecurityChanges(ctx, settings, log) }),
	)
	background.Run()

	log.Info().Str("version", cfg.App.Version).Msg("spendless is ready")

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

// watchSecurityChanges logs every persisted security preference change so
// lockout policy edits are visible in the audit trail.
func watchSecurityChanges(ctx context.Context, settings prefs.Settings, log *logger.Logger) {
	for security := range settings.WatchUserSecurity(ctx) {
		log.Info().
			Dur("locked_out_duration", security.LockedOutDuration).
			Dur("session_expiry_duration", security.SessionExpiryDuration).
			Bool("biometrics", security.BiometricPromptEnabled).
			Msg("security preferences changed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
