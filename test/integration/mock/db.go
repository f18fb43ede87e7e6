// Package mock provides in-memory stand-ins for the API's external
// dependencies, used by the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a shared in-memory sqlite database migrated with the
// application's persistence models, keyed by table name.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens (once per process) an in-memory database, migrates the given
// models and returns a handle the steps can reset between scenarios. The
// name becomes the sqlite database identifier so suites do not collide.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = openDb(name, models)
	})
	return sharedDb
}

func openDb(name string, models map[string]any) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open sqlite: %v", err))
	}

	// A single connection keeps the shared in-memory database alive for the
	// whole suite.
	conn.SetMaxOpenConns(1)

	gormDb, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect gorm to sqlite: %v", err))
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := gormDb.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test schema: %v", err))
	}
	for _, model := range modelList {
		if !gormDb.Migrator().HasTable(model) {
			panic(fmt.Sprintf("table for model %T was not created", model))
		}
	}

	return &Db{DbConn: gormDb, models: models}
}

// ClearDB removes all rows from every registered table and resets sqlite's
// autoincrement counters.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error
		if err != nil {
			return err
		}
	}

	err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error
	if err != nil && !strings.Contains(err.Error(), "no such table") {
		return err
	}
	return nil
}

// GetModel returns the persistence model registered for the given table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
