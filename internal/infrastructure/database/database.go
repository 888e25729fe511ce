package database

import (
	"context"
	"fmt"

	"designer-shortlist/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens Postgres when dsn is set, otherwise SQLite at sqlitePath (":memory:" when empty).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") behind connection poolers such as PgBouncer.
func Open(dsn, sqlitePath string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if dsn != "" {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	}
	if sqlitePath == "" {
		sqlitePath = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(sqlitePath), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", sqlitePath, err)
	}
	if sqlitePath == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// AutoMigrate creates the designer and shortlist tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.DesignerRecord{}, &domain.ShortlistEntry{})
}

// Seed inserts the sample designers when the designers table is empty.
// Returns the number of rows inserted.
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.DesignerRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count designers: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	samples := domain.SampleDesigners()
	rows := make([]domain.DesignerRecord, 0, len(samples))
	for _, d := range samples {
		rows = append(rows, domain.NewDesignerRecord(d))
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("seed designers: %w", err)
	}
	log.Info().Int("designers", len(rows)).Msg("Seeded sample designers")
	return len(rows), nil
}

// Setup opens, migrates and seeds the database.
func Setup(ctx context.Context, dsn, sqlitePath string) (*gorm.DB, error) {
	db, err := Open(dsn, sqlitePath)
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if _, err := Seed(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}
