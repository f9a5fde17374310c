package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	httptransport "github.com/rushikeshwankhede/admaxify-admin-service/internal/api/http"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/http/handlers"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/auth"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/config"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/events"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/identity"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/observability"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/persistence"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/repository"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewAdminUserRepository(pool)
	roleRepo := repository.NewAdminRoleRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	teamRepo := repository.NewTeamMemberRepository(pool)
	awardRepo := repository.NewAwardRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	if err := seedAdmin(ctx, cfg.Seed, cfg.Auth, userRepo, roleRepo, logger); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	identityService := identity.NewService(identity.Dependencies{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		Tokens:   identity.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		Sessions: identity.NewSessionStore(redis.Client),
		Logger:   logger,
	})

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(identityService, logger)
	contentService := service.NewContentService(service.ContentDependencies{
		ServiceRepo:     serviceRepo,
		TestimonialRepo: testimonialRepo,
		TeamMemberRepo:  teamRepo,
		AwardRepo:       awardRepo,
	})
	intakeService := service.NewIntakeService(service.IntakeDependencies{
		SubmissionRepo: submissionRepo,
		BookingRepo:    bookingRepo,
		Dispatcher:     dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(identityService, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, logger),
		Site:           handlers.NewSiteHandler(contentService, intakeService),
		Services:       handlers.NewServicesHandler(contentService),
		Testimonials:   handlers.NewTestimonialsHandler(contentService),
		Team:           handlers.NewTeamHandler(contentService),
		Awards:         handlers.NewAwardsHandler(contentService),
		Submissions:    handlers.NewSubmissionsHandler(intakeService),
		Bookings:       handlers.NewBookingsHandler(intakeService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// seedAdmin bootstraps the first administrator account when SEED_ADMIN_*
// env vars are set. Existing accounts are left untouched apart from the
// role record, so a redeploy can promote or demote the seeded user.
func seedAdmin(ctx context.Context, seed config.SeedConfig, authCfg config.AuthConfig, users repository.AdminUserRepository, roles repository.AdminRoleRepository, logger *zap.Logger) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	role, err := domain.ParseRole(seed.AdminRole)
	if err != nil {
		return err
	}

	user, err := users.GetByEmail(ctx, seed.AdminEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		hash, hashErr := auth.HashPassword(seed.AdminPassword, authCfg.BcryptCost)
		if hashErr != nil {
			return hashErr
		}
		user = &domain.AdminUser{Email: seed.AdminEmail, PasswordHash: hash}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		logger.Info("seeded admin account", zap.String("email", seed.AdminEmail))
	} else if err != nil {
		return err
	}

	return roles.Upsert(ctx, user.ID, role)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
