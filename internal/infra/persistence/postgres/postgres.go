package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"agrinet/config"
	"agrinet/internal/domain/lifecycle"
	"agrinet/internal/errors"
	"agrinet/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the agrinet database (primary plus any configured replicas), exports pool stats
// when metrics are wired and watches the pool for connection waits while the app runs.
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, "primary"); err != nil {
			return nil, err
		}
	}

	watcher := newPoolWatcher(sqlDB.Stats, params.Logger)
	watchCtx, stopWatching := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			params.Logger.Info("PostgreSQL connected", slog.Int("replicas", len(params.Config.Postgres.Replicas)))

			go watcher.run(watchCtx, poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatching()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// open connects through go-lib and returns a session without gorm's implicit per-statement
// transaction. Multi-step writes go through the transaction manager instead.
func open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}), nil
}

// poolWatcher logs connection checkouts that had to wait since the previous sample.
type poolWatcher struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	last   sql.DBStats
}

func newPoolWatcher(stats func() sql.DBStats, logger *slog.Logger) *poolWatcher {
	return &poolWatcher{stats: stats, logger: logger, last: stats()}
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

// sample reports whether any checkout waited since the last call. Waits adding up to
// poolSlowWait or more log at warn level, shorter ones at debug.
func (w *poolWatcher) sample(ctx context.Context) bool {
	cur := w.stats()
	waits := cur.WaitCount - w.last.WaitCount
	waited := cur.WaitDuration - w.last.WaitDuration
	w.last = cur

	if waits <= 0 {
		return false
	}

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "PostgreSQL connection wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)

	return true
}
