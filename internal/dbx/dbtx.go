// Package dbx provides tiny DB helpers shared by repositories: opening a gorm
// handle over PostgreSQL and running functions inside a transaction.
package dbx

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormConfig is the gorm configuration used by every handle the server opens.
// Repositories issue single statements, so gorm's implicit per-write
// transaction is disabled; multi-step work goes through WithTx.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	}
}

// Open connects to PostgreSQL through pgx.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), GormConfig())
}

// OpenConn wraps an existing connection pool, e.g. a *sql.DB from sqlmock.
func OpenConn(conn gorm.ConnPool) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: conn}), GormConfig())
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx *gorm.DB) error {
//	    // use tx instead of db
//	    return tx.Create(&row).Error
//	})
func WithTx(ctx context.Context, db *gorm.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin(opts)
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit().Error
	}()

	err = fn(ctx, tx)
	return err
}
