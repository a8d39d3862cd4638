package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/secrets-server/internal/api/http/context"
	"github.com/dtroode/secrets-server/internal/api/http/handler"
	"github.com/dtroode/secrets-server/internal/api/http/router"
	httpServer "github.com/dtroode/secrets-server/internal/api/http/server"
	"github.com/dtroode/secrets-server/internal/config"
	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
	"github.com/dtroode/secrets-server/internal/oauth"
	"github.com/dtroode/secrets-server/internal/password"
	"github.com/dtroode/secrets-server/internal/repository/memory"
	"github.com/dtroode/secrets-server/internal/repository/postgres"
	"github.com/dtroode/secrets-server/internal/repository/redis"
	"github.com/dtroode/secrets-server/internal/server"
	"github.com/dtroode/secrets-server/internal/service"
	storage "github.com/dtroode/secrets-server/internal/storage/minio"
	"github.com/dtroode/secrets-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	checkers := map[string]handler.HealthChecker{"postgres": db}

	sessionStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize session store", "error", err, "backend", cfg.Session.Backend)
	}
	defer sessionStore.Close()
	if pinger, ok := sessionStore.(handler.HealthChecker); ok {
		checkers[cfg.Session.Backend] = pinger
	}

	mode, err := password.ParseMode(cfg.Password.Mode)
	if err != nil {
		logger.Fatal("invalid password mode", "error", err)
	}
	hasher, err := password.New(mode, password.Options{
		BcryptCost:    cfg.Password.BcryptCost,
		EncryptionKey: cfg.Password.EncryptionKey,
	})
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err, "mode", mode)
	}
	if mode != password.ModeBcrypt {
		logger.Warn("passwords are not stored as one-way hashes", "mode", mode)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	checkers["minio"] = storageClient

	principalRepo := postgres.NewPrincipalRepository(db)
	authService := service.NewAuth(principalRepo, hasher, service.AuthPolicy{NormalizeEmail: cfg.Auth.NormalizeEmail}, logger)
	sessionService := service.NewSessions(sessionStore, principalRepo, cfg.Session.TTL, logger)
	noteService := service.NewNotes(principalRepo, storageClient, logger)

	providers := newProviderRegistry(cfg)
	logger.Info("identity providers enabled", "providers", providers.Names())

	e := router.New(router.Options{
		AuthService:    authService,
		SessionService: sessionService,
		NoteService:    noteService,
		Providers:      providers,
		StateSigner:    token.NewState(cfg.Session.StateSecret),
		ContextManager: httpctx.NewManager(),
		HealthCheckers: checkers,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.HTTP.EnableHTTPS || cfg.IsProduction(),
			TTL:    sessionService.TTL(),
		},
		RevealFailureReason: cfg.Auth.RevealFailureReason,
		Logger:              logger,
	}).Register()

	srv := httpServer.NewHTTPServer(e, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

type sessionBackend interface {
	model.SessionStore
	io.Closer
}

func newSessionStore(ctx context.Context, cfg *config.Config) (sessionBackend, error) {
	if cfg.Session.Backend == "memory" {
		return memory.NewSessionStore(cfg.Session.TTL)
	}
	return redis.NewSessionStoreWithURL(ctx, cfg.Redis.URL)
}

func newProviderRegistry(cfg *config.Config) *oauth.Registry {
	var providers []model.IdentityProvider

	if cfg.Google.Enabled() {
		providers = append(providers, oauth.NewGoogle(credentialsOf(cfg.Google)))
	}
	if cfg.Facebook.Enabled() {
		providers = append(providers, oauth.NewFacebook(credentialsOf(cfg.Facebook)))
	}
	if cfg.GitHub.Enabled() {
		providers = append(providers, oauth.NewGitHub(credentialsOf(cfg.GitHub)))
	}

	return oauth.NewRegistry(providers...)
}

func credentialsOf(c config.OAuth) oauth.Credentials {
	return oauth.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		CallbackURL:  c.CallbackURL,
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
