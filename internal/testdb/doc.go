// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured, apply the embedded schema with
// SetupTestDatabaseSchema, and isolate their writes with WithTx:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.SetupTestDatabaseSchema(t, db)
//
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    heroes := postgres.NewPostgresHeroStore(tx, nil)
//	    // test code using heroes
//	})
//
// Every transaction is rolled back when the callback returns, so tests never
// see each other's rows and need no manual cleanup.
package testdb
