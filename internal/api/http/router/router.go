package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/secrets-server/internal/api/http/handler"
	"github.com/dtroode/secrets-server/internal/api/http/middleware"
	"github.com/dtroode/secrets-server/internal/logger"
	"github.com/dtroode/secrets-server/internal/model"
)

// Router wires handlers and middleware into an echo instance.
type Router struct {
	authService    handler.AuthService
	sessionService handler.SessionService
	noteService    handler.NoteService
	providers      handler.ProviderRegistry
	stateSigner    model.StateSigner
	contextManager model.ContextManager
	checkers       map[string]handler.HealthChecker
	cookie         handler.CookieConfig
	revealReason   bool
	logger         *logger.Logger
}

// Options carries everything the router needs.
type Options struct {
	AuthService         handler.AuthService
	SessionService      handler.SessionService
	NoteService         handler.NoteService
	Providers           handler.ProviderRegistry
	StateSigner         model.StateSigner
	ContextManager      model.ContextManager
	HealthCheckers      map[string]handler.HealthChecker
	Cookie              handler.CookieConfig
	RevealFailureReason bool
	Logger              *logger.Logger
}

// New creates a new Router instance.
func New(opts Options) *Router {
	return &Router{
		authService:    opts.AuthService,
		sessionService: opts.SessionService,
		noteService:    opts.NoteService,
		providers:      opts.Providers,
		stateSigner:    opts.StateSigner,
		contextManager: opts.ContextManager,
		checkers:       opts.HealthCheckers,
		cookie:         opts.Cookie,
		revealReason:   opts.RevealFailureReason,
		logger:         opts.Logger,
	}
}

// Register builds the echo instance with all routes.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.revealReason, r.logger)

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionService, r.contextManager, r.cookie.Name, r.logger)

	e.Use(echomw.RequestID())
	e.Use(logging.Handle)
	e.Use(echomw.Recover())

	r.registerHealthRoutes(e)
	r.registerAuthRoutes(e, authenticate)
	r.registerOAuthRoutes(e)
	r.registerSecretRoutes(e, authenticate)

	return e
}

func (r *Router) registerHealthRoutes(e *echo.Echo) {
	h := handler.NewHealth(r.checkers, r.logger)
	e.GET("/health", h.Live)
	e.GET("/ready", h.Ready)
}

func (r *Router) registerAuthRoutes(e *echo.Echo, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.authService, r.sessionService, r.contextManager, r.cookie, r.logger)
	e.GET("/", h.Home, authenticate.Optional)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)
	e.GET("/me", h.Me, authenticate.Required)
}

func (r *Router) registerOAuthRoutes(e *echo.Echo) {
	h := handler.NewOAuth(r.providers, r.stateSigner, r.authService, r.sessionService, r.cookie, r.logger)
	g := e.Group("/auth/:provider")
	g.GET("", h.Begin)
	g.GET("/callback", h.Callback)
	// callback path registered with providers by earlier deployments
	g.GET("/sneakybeaky", h.Callback)
}

func (r *Router) registerSecretRoutes(e *echo.Echo, authenticate *middleware.Authenticate) {
	h := handler.NewSecrets(r.noteService, r.contextManager, r.logger)
	e.GET("/secrets", h.List, authenticate.Required)
	e.POST("/submit", h.Submit, authenticate.Required)
	e.GET("/me/secret", h.Mine, authenticate.Required)
	e.DELETE("/me/secret", h.Forget, authenticate.Required)
}
