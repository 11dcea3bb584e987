package docstore

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chem-crm/internal/config"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
)

// New opens the document store selected by cfg.DB.Driver.
func New(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (DocumentStore, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported document store driver %q", cfg.DB.Driver)
	}
}
