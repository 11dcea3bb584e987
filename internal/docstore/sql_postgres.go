package docstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-chem-crm/internal/config"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/utils"
	"github.com/MKhiriev/go-chem-crm/migrations"
)

// NewConnectPostgres opens the PostgreSQL-backed document store, verifies the
// connection, and applies pending schema migrations.
func NewConnectPostgres(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (DocumentStore, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		return nil, err
	}

	return &sqlStore{
		db:      conn,
		dialect: postgresDialect,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}, nil
}
