// Package postgres provides PostgreSQL implementations of the interfaces
// defined in internal/store. It owns query composition (including the
// allow-listed ORDER BY clause of the article listing), the translation of
// Postgres error codes into store errors, and the schema and seed data used
// to provision development and test databases.
package postgres
