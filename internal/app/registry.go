package app

import (
	"context"
	"net/http"
	"path/filepath"

	"go-hr-analytics/internal/auth"
	"go-hr-analytics/internal/bootstrap"
	"go-hr-analytics/internal/config"
	"go-hr-analytics/internal/demographics"
	"go-hr-analytics/internal/engagement"
	"go-hr-analytics/internal/hiring"
	"go-hr-analytics/internal/issues"
	"go-hr-analytics/internal/job"
	"go-hr-analytics/internal/leavers"
	"go-hr-analytics/internal/messaging/kafka"
	"go-hr-analytics/internal/metrics"
	"go-hr-analytics/internal/middleware"
	"go-hr-analytics/internal/monthlymetric"
	"go-hr-analytics/internal/payroll"
	"go-hr-analytics/internal/rbac"
	"go-hr-analytics/internal/rbac/infra"
	"go-hr-analytics/internal/report"
	"go-hr-analytics/internal/shared/cache"
	"go-hr-analytics/internal/shared/clock"
	"go-hr-analytics/internal/shared/storage"
	"go-hr-analytics/internal/training"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	in *stores,
	logger *zap.Logger,
) error {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	audit := bootstrap.NewStdoutAuditLogger(logger)
	clk := clock.System
	optionsCache := cache.NewOptionsCache(in.rdb, cfg.OptionsCacheTTL, logger)
	uploadCfg := report.UploadConfig{
		Dir:      filepath.Join(cfg.UploadDir, "tmp"),
		MaxBytes: cfg.MaxUploadBytes,
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(in.gormDB), enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(in.gormDB)
	outboxRepo := kafka.NewOutboxRepository(in.sqlDB)
	jobRepo := job.NewRepository(in.gormDB)

	// --- Services ---
	authService := auth.NewService(
		in.sqlDB,
		authRepo,
		outboxRepo,
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, clk),
		auth.Options{
			CodeTTL:             cfg.CodeTTL,
			BootstrapAdminEmail: cfg.BootstrapAdminEmail,
			Clock:               clk,
		},
		logger,
	)
	jobService := job.NewService(jobRepo, storage.NewLocalStore(cfg.UploadDir), cfg.MaxUploadBytes, clk, logger)

	demographicsService := demographics.NewService(demographics.NewRepository(in.docs), optionsCache, clk, logger)
	payrollService := payroll.NewService(payroll.NewRepository(in.docs), optionsCache, clk, logger)
	hiringService := hiring.NewService(hiring.NewRepository(in.docs), optionsCache, clk, logger)
	leaversService := leavers.NewService(leavers.NewRepository(in.docs), optionsCache, clk, logger)
	issuesService := issues.NewService(issues.NewRepository(in.docs), optionsCache, clk, logger)
	trainingService := training.NewService(training.NewRepository(in.docs), optionsCache, clk, logger)
	engagementService := engagement.NewService(engagement.NewRepository(in.docs), optionsCache, clk, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, auth.NewHandler(authService, cfg.IsProduction()), cfg.JWTSecret)
		rbac.RegisterRoutes(api, rbac.NewHandler(rbacService), rbacService, cfg.JWTSecret)
		job.RegisterRoutes(api, job.NewHandler(jobService, in.rdb, audit, logger), rbacService, cfg.JWTSecret, in.rdb)

		demographics.RegisterRoutes(api, demographics.NewHandler(demographicsService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		payroll.RegisterRoutes(api, payroll.NewHandler(payrollService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		hiring.RegisterRoutes(api, hiring.NewHandler(hiringService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		leavers.RegisterRoutes(api, leavers.NewHandler(leaversService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		issues.RegisterRoutes(api, issues.NewHandler(issuesService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		training.RegisterRoutes(api, training.NewHandler(trainingService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		engagement.RegisterRoutes(api, engagement.NewHandler(engagementService, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)

		for _, kind := range monthlymetric.Kinds {
			svc := monthlymetric.NewService(kind, monthlymetric.NewRepository(in.docs, kind), cfg.LastMonthsDefault, optionsCache, clk, logger)
			monthlymetric.RegisterRoutes(api, monthlymetric.NewHandler(kind, svc, uploadCfg, audit, logger), rbacService, cfg.JWTSecret)
		}
	}

	logger.Named("app").Info("modules registered", zap.Int("report_domains", 7+len(monthlymetric.Kinds)))
	return nil
}
