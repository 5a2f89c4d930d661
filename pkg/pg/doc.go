// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool
// from environment configuration, goose schema migrations, a health-check
// closure, and error classification helpers.
//
// The pool is the only shared resource between concurrent requests;
// everything request-scoped checks a connection out and runs its
// statements through the Querier interface, which is satisfied by
// *pgxpool.Pool, *pgxpool.Conn and pgx.Tx alike.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // fatal: the process cannot start without a database
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    // fatal: schema must be current before serving
//	}
//
// Error helpers such as [IsNotFoundError] and [IsDuplicateKeyError] keep
// pgx error classification out of business logic.
package pg
