// Package postgres implements the store interfaces over a relational
// datastore using gorm.
package postgres

import (
	"errors"
	"fmt"

	"posservice/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Open connects to the database, instruments it for tracing and migrates
// the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Use(tracing.NewPlugin()); err != nil {
		return nil, fmt.Errorf("failed to instrument database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Employee{},
		&domain.Customer{},
		&domain.Ingredient{},
		&domain.Product{},
		&domain.ProductIngredient{},
		&domain.Order{},
		&domain.OrderLineItem{},
		&domain.Review{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// notFoundOr maps gorm's record-not-found to the domain taxonomy and
// wraps anything else as a persistence failure.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError(entity + " not found")
	}
	return domain.PersistenceError("query "+entity, err)
}
