package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var (
	// DB is used for raw statements (invoice number sequence, health checks)
	DB *pgxpool.Pool
	// Gorm backs the invoice store
	Gorm *gorm.DB
)

// InitDB opens both the pgx pool and the GORM handle on the invoicing database
func InitDB(cfg *Config) error {
	dsn := cfg.PostgresDSN()
	if cfg.DatabaseURL == "" {
		utils.Log.Warn("⚠️ DATABASE_URL not set, using local default")
	}

	if err := initPgx(dsn); err != nil {
		return err
	}
	return initGORM(dsn, cfg.IsProduction())
}

func initPgx(dsn string) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	var err error
	DB, err = pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err = DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	utils.Log.Info("✅ Database connected (pgx)")
	return nil
}

func initGORM(dsn string, production bool) error {
	gormLogger := logger.Default.LogMode(logger.Info)
	if production {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	Gorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database with GORM: %w", err)
	}
	if sqlDB, err := Gorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	utils.Log.Info("✅ Database connected (GORM)")
	return nil
}

// PingDB is used by the health endpoint
func PingDB(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}
	return DB.Ping(ctx)
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		utils.Log.Info("✅ Database connection closed (pgx)")
	}

	if Gorm != nil {
		sqlDB, _ := Gorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			utils.Log.Info("✅ Database connection closed (GORM)")
		}
	}
}
