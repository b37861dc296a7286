package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/storage"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the gorm connection for the sqlite and mysql drivers.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DBDSN)
	case DriverMySQL:
		dialector = mysql.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("storage driver %q has no database", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StorageDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	utils.InfoLogger.Infof("connected to %s device storage", cfg.StorageDriver)
	return db, nil
}

func InitRedis(cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
	}
	utils.InfoLogger.Infof("connected to redis at %s", cfg.RedisAddr)
	return client, nil
}

// NewStorage builds the device storage selected by STORAGE_DRIVER.
func NewStorage(cfg *Config) (storage.KeyValue, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		return storage.NewMemory(), nil
	case DriverRedis:
		client, err := InitRedis(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedis(client, "shell"), nil
	}

	db, err := InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewGorm(db)
}
