package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"salas/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns = 10
	maxOpenConns = 10
)

var errNotConnected = errors.New("postgres connection not established")

// Connection pairs the read pool with the write pool. Repositories query Read and
// write through Write or a transaction opened on it.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", pg, pg.Read),
		Write: connect("write", pg, pg.Write),
	}
}

// DSN renders the lib/pq URL for node.
func DSN(pg config.Postgres, node config.Node) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     pg.DatabaseName(node),
		RawQuery: url.Values{"sslmode": {node.SSLMode}}.Encode(),
	}

	return dsn.String()
}

// connect retries up to MaxRetry times and gives up with a nil pool.
func connect(role string, pg config.Postgres, node config.Node) *sqlx.DB {
	logger := log.With().Str("name", role).Str("host", node.Host).Str("port", node.Port).Str("dbName", pg.DatabaseName(node)).Logger()

	for attempt := 1; attempt <= pg.MaxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", DSN(pg, node))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	return nil
}

// Ping checks both pools can reach the database.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Read == nil || c.Write == nil {
		return errNotConnected
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write connection: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read connection: %w", err)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Write, c.Read} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
