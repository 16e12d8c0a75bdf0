package httpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"internship-assistant/internal/chat"
	"internship-assistant/internal/middleware"
	"internship-assistant/internal/router"
	"internship-assistant/internal/talent"
	"internship-assistant/pkg/log"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatUC   chat.UseCase
	router   router.Router
	talentUC talent.UseCase
	db       Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	// TrustedProxies lists proxy IPs or CIDRs allowed to set forwarding headers.
	// Empty trusts none, so the client IP is the TCP peer.
	TrustedProxies []string

	// ChatUseCase may be nil; /chat then answers 503.
	ChatUseCase chat.UseCase
	Router      router.Router

	TalentUseCase talent.UseCase
	Database      Pinger
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		chatUC:      cfg.ChatUseCase,
		router:      cfg.Router,
		talentUC:    cfg.TalentUseCase,
		db:          cfg.Database,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.talentUC == nil {
		return errors.New("talent use case is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
