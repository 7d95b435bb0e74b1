// Package store opens the process-lifetime in-memory database that
// backs every registry and hands out typed lookups over it.
package store

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"leasedesk/internal/models"
)

var openSeq atomic.Uint64

// Open connects a fresh in-memory sqlite database and migrates every
// registered model into it. Each call yields an independent database;
// state lasts exactly as long as the process.
func Open() (*gorm.DB, error) {
	// mode=memory keeps the database off disk; cache=shared keeps
	// pooled connections on the same state. The sequence number
	// isolates independently opened stores within one process.
	dsn := fmt.Sprintf("file:leasedesk%d?mode=memory&cache=shared", openSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	tables := make([]interface{}, 0, len(models.ModelTypeRegistry))
	for _, model := range models.ModelTypeRegistry {
		tables = append(tables, model)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return nil, fmt.Errorf("failed to migrate models: %v", err)
	}

	return db, nil
}
