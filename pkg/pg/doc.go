// Package pg bootstraps the PostgreSQL layer: a pgx/v5 pool with
// retrying Connect, goose schema migrations, a readiness probe, and
// error classification helpers (duplicate key, foreign key, not found).
//
// Configuration comes from environment variables via the Config struct;
// see the field tags for variable names and defaults.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
package pg
