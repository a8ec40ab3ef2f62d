package app

import (
	"context"
	"database/sql"
	"time"

	"go-hr-analytics/internal/auth"
	"go-hr-analytics/internal/config"
	"go-hr-analytics/internal/job"
	"go-hr-analytics/internal/messaging/kafka"
	"go-hr-analytics/internal/rbac"
	"go-hr-analytics/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// stores holds every connection the API needs. Redis is optional: nil turns
// the options cache and idempotent applies off.
type stores struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	mongo  *mongo.Client
	docs   *mongo.Database
	rdb    *redis.Client
}

func (i *stores) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if i.mongo != nil {
		_ = i.mongo.Disconnect(ctx)
	}
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectPostgres(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, connectRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the stores, runs migrations and mounts every module on
// router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")
	in := &stores{}

	var err error
	in.gormDB, in.sqlDB, err = connectPostgres(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("postgres connection established")

	in.mongo, in.docs, err = connection.ConnectMongoWithRetry(cfg.MongoURI, cfg.MongoDB, connectRetries)
	if err != nil {
		in.close()
		return nil, err
	}
	log.Info("mongodb connection established", zap.String("database", cfg.MongoDB))

	in.rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		// cache hanya optimasi, API tetap jalan tanpa Redis
		log.Warn("redis unavailable, running without cache", zap.Error(err))
		in.rdb = nil
	} else {
		log.Info("redis connection established")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrate(ctx, in); err != nil {
		in.close()
		return nil, err
	}

	if err := registerModules(ctx, router, cfg, in, logger); err != nil {
		in.close()
		return nil, err
	}
	return in.close, nil
}

// migrate creates the relational schema and seeds the default RBAC policy.
func migrate(ctx context.Context, in *stores) error {
	if err := in.gormDB.WithContext(ctx).AutoMigrate(
		&auth.User{},
		&job.Job{},
		&job.Application{},
		&rbac.RolePermissionRow{},
		&rbac.RoleInheritanceRow{},
	); err != nil {
		return err
	}
	if err := kafka.EnsureOutboxTable(ctx, in.sqlDB); err != nil {
		return err
	}
	return rbac.NewRepository(in.gormDB).SeedDefaults(ctx)
}
