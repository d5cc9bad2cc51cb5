package store

import "github.com/jmoiron/sqlx"

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sqlx.DB and *sqlx.Tx, allowing store
// implementations to run against the pool or inside a transaction.
type DBTX interface {
	sqlx.ExtContext
}
