package storage

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStorage backs the session store with a SQLite database. The expected
// DSN is ":memory:", which keeps the store session-scoped while exercising
// the same query path as a file-backed database would.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(driver, dsn string) (*GormStorage, error) {
	if driver != "sqlite" {
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return &GormStorage{db: db}, nil
}

func (s *GormStorage) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&CustomTariff{})
}

func (s *GormStorage) ListCustomTariffs(ctx context.Context) ([]CustomTariff, error) {
	var out []CustomTariff
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) AppendCustomTariff(ctx context.Context, t CustomTariff) error {
	return s.db.WithContext(ctx).Create(&t).Error
}

func (s *GormStorage) CountCustomTariffs(ctx context.Context) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&CustomTariff{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *GormStorage) Ping(ctx context.Context) error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (s *GormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
