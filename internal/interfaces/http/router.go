// Package http wires repositories, usecases, handlers and middleware into
// the gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "gestiontickets/internal/application/auth/usecases"
	memberusecases "gestiontickets/internal/application/member/usecases"
	ticketusecases "gestiontickets/internal/application/ticket/usecases"
	"gestiontickets/internal/infrastructure/auth"
	"gestiontickets/internal/infrastructure/config"
	"gestiontickets/internal/infrastructure/email"
	"gestiontickets/internal/infrastructure/permission"
	"gestiontickets/internal/infrastructure/ratelimit"
	"gestiontickets/internal/infrastructure/repository"
	"gestiontickets/internal/infrastructure/storage"
	authhandlers "gestiontickets/internal/interfaces/http/handlers/auth"
	memberhandlers "gestiontickets/internal/interfaces/http/handlers/member"
	tickethandlers "gestiontickets/internal/interfaces/http/handlers/ticket"
	"gestiontickets/internal/interfaces/http/middleware"
	"gestiontickets/internal/interfaces/http/routes"
	"gestiontickets/internal/shared/authorization"
	"gestiontickets/internal/shared/db"
	"gestiontickets/internal/shared/logger"
	"gestiontickets/internal/shared/services/markdown"
	"gestiontickets/internal/shared/utils"
)

// Router holds the gin engine and everything SetupRoutes needs.
type Router struct {
	engine               *gin.Engine
	cfg                  *config.Config
	logger               logger.Interface
	ticketHandler        *tickethandlers.TicketHandler
	memberHandler        *memberhandlers.MemberHandler
	authHandler          *authhandlers.AuthHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimit       gin.HandlerFunc
	photoDir             string
}

// tokenIssuerAdapter converts the infrastructure token pair into the
// application-layer one the auth usecases expect.
type tokenIssuerAdapter struct {
	*auth.JWTService
}

func (a *tokenIssuerAdapter) Generate(userID uint, role authorization.UserRole) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *tokenIssuerAdapter) Refresh(refreshToken string) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	memberRepo := repository.NewMemberRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	statusRepo := repository.NewStatusRepository(database)
	userRepo := repository.NewUserRepository(database)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenIssuer := &tokenIssuerAdapter{jwtSvc}

	photoStore, err := storage.NewPhotoStore(&cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	markdownSvc := markdown.NewMarkdownService()

	var notifier ticketusecases.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(&cfg.Email)
	} else {
		notifier = email.NoopNotifier{}
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		limiter = ratelimit.NewRedisRateLimiter(goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	} else {
		limiter = ratelimit.NewMemoryRateLimiter()
	}

	enforcer, err := permission.NewEnforcer(database, cfg.Auth.CasbinModel, log)
	if err != nil {
		return nil, err
	}
	if err := permission.InitDefaultPermissions(enforcer.Casbin(), log); err != nil {
		return nil, err
	}

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, memberRepo, statusRepo, txManager, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, memberRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, memberRepo, statusRepo, markdownSvc, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, memberRepo, statusRepo, log)
	appendHistoryUC := ticketusecases.NewAppendHistoryUseCase(ticketRepo, memberRepo, statusRepo, userRepo, notifier, log)

	createMemberUC := memberusecases.NewCreateMemberUseCase(memberRepo, log)
	updateMemberUC := memberusecases.NewUpdateMemberUseCase(memberRepo, log)
	deleteMemberUC := memberusecases.NewDeleteMemberUseCase(memberRepo, ticketRepo, photoStore, log)
	getMemberUC := memberusecases.NewGetMemberUseCase(memberRepo, photoStore, log)
	listMembersUC := memberusecases.NewListMembersUseCase(memberRepo, photoStore, log)
	uploadPhotoUC := memberusecases.NewUploadPhotoUseCase(memberRepo, photoStore, log)
	importMembersUC := memberusecases.NewImportMembersUseCase(memberRepo, txManager, log)

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, tokenIssuer, log)
	refreshTokenUC := authusecases.NewRefreshTokenUseCase(tokenIssuer, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, deleteTicketUC,
		getTicketUC, listTicketsUC, appendHistoryUC, userRepo,
	)
	memberHandler := memberhandlers.NewMemberHandler(
		createMemberUC, updateMemberUC, deleteMemberUC,
		getMemberUC, listMembersUC, uploadPhotoUC, importMembersUC,
	)
	authHandler := authhandlers.NewAuthHandler(loginUC, refreshTokenUC, cfg.Auth)

	return &Router{
		engine:               engine,
		cfg:                  cfg,
		logger:               log,
		ticketHandler:        ticketHandler,
		memberHandler:        memberHandler,
		authHandler:          authHandler,
		authMiddleware:       middleware.NewAuthMiddleware(jwtSvc, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		loginRateLimit:       middleware.LoginRateLimit(limiter, log),
		photoDir:             photoStore.Dir(),
	}, nil
}

// SetupRoutes applies the global middleware and registers all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", healthCheck)

	// Member photos are served straight from disk under opaque keys.
	r.engine.Static(r.cfg.Storage.PhotoBaseURL, r.photoDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		LoginRateLimit: r.loginRateLimit,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupMemberRoutes(r.engine, &routes.MemberRouteConfig{
		MemberHandler:        r.memberHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
