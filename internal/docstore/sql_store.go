package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/utils"
)

// sqlStore implements [DocumentStore] on top of a single documents table.
// The backends share every query; the dialect carries the differences.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// Upsert implements [DocumentStore].
func (s *sqlStore) Upsert(ctx context.Context, collection, id string, fields map[string]any, merge bool) error {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingFields, err)
	}

	query, args, err := s.dialect.buildUpsertQuery(collection, id, fieldsJSON, merge)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logDBError(ctx, err, "*sqlStore.Upsert")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Add implements [DocumentStore].
func (s *sqlStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := s.ids.Generate()
	if err := s.Upsert(ctx, collection, id, fields, false); err != nil {
		return "", err
	}

	return id, nil
}

// Get implements [DocumentStore].
func (s *sqlStore) Get(ctx context.Context, collection, id string) (Document, error) {
	query, args, err := s.dialect.buildGetQuery(collection, id)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	row := s.db.QueryRowContext(ctx, query, args...)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrDocumentNotFound
	}
	if err != nil {
		s.logDBError(ctx, err, "*sqlStore.Get")
		return Document{}, err
	}

	return doc, nil
}

// Query implements [DocumentStore].
func (s *sqlStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	query, args, err := s.dialect.buildFieldQuery(collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return s.queryDocuments(ctx, query, args)
}

// List implements [DocumentStore].
func (s *sqlStore) List(ctx context.Context, collection, orderBy string, desc bool) ([]Document, error) {
	query, args, err := s.dialect.buildListQuery(collection, orderBy, desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return s.queryDocuments(ctx, query, args)
}

// Delete implements [DocumentStore].
func (s *sqlStore) Delete(ctx context.Context, collection, id string) error {
	query, args, err := s.dialect.buildDeleteQuery(collection, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logDBError(ctx, err, "*sqlStore.Delete")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Close implements [DocumentStore].
func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) queryDocuments(ctx context.Context, query string, args []any) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logDBError(ctx, err, "*sqlStore.queryDocuments")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var documents []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		documents = append(documents, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return documents, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc        Document
		fieldsJSON []byte
	)
	if err := row.Scan(&doc.ID, &fieldsJSON); err != nil {
		return Document{}, err
	}

	if err := json.Unmarshal(fieldsJSON, &doc.Fields); err != nil {
		return Document{}, fmt.Errorf("decode document fields: %w", err)
	}

	return doc, nil
}

func (s *sqlStore) logDBError(ctx context.Context, err error, fn string) {
	log := logger.FromContext(ctx)
	event := log.Err(err).Str("func", fn)
	if classifyDBError(err) == Retryable {
		event = event.Bool("retryable", true)
	}
	event.Msg("document store operation failed")
}
