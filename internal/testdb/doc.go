//go:build integration

// Package testdb provisions a real Postgres database for integration tests.
//
// Tests are skipped unless DATABASE_URL is set. GetTestDBWithT applies the
// embedded goose migrations and reloads the development dataset, so every
// test package starts from the same known rows. WithTx runs a test body in
// a transaction that is always rolled back:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        articles := postgres.NewPostgresArticleStore(tx, nil)
//	        ...
//	    })
//	}
package testdb
