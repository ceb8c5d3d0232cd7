package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"salas/config"
	"salas/infras/postgres"
	"salas/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

var errUnknownAction = errors.New("unknown migration action")

// actions maps each CLI verb to the golang-migrate call it runs. version only reports.
var actions = map[string]func(*migrate.Migrate) error{
	"up":      (*migrate.Migrate).Up,
	"down":    func(m *migrate.Migrate) error { return m.Steps(-1) },
	"step-up": func(m *migrate.Migrate) error { return m.Steps(1) },
	"drop":    (*migrate.Migrate).Down,
	"version": func(*migrate.Migrate) error { return nil },
}

// ConnectionString builds the golang-migrate DSN for the write database.
func ConnectionString(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	dsn, _ := url.Parse(postgres.DSN(pg, pg.Write))

	if pg.MigrationTable != "" {
		query := dsn.Query()
		query.Set("x-migrations-table", pg.MigrationTable)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String()
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, ConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open migration target: %w", err)
	}

	return mig, nil
}

// Runner applies action against the write database and logs the resulting schema version.
// Having nothing to migrate is not an error.
func Runner(cfg *config.Config, action string) error {
	run, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	event := log.Info()
	if dirty {
		event = log.Warn()
	}

	event.Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("schema migrated")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}
