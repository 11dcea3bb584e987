package docstore

//go:generate mockgen -source=interfaces.go -destination=../mock/document_store_mock.go -package=mock

import "context"

// Document is a single stored record: its collection-scoped ID and the JSON
// object held under it.
type Document struct {
	ID     string
	Fields map[string]any
}

// DocumentStore is the contract for collection/document persistence.
//
// Field values must be JSON-serialisable. Timestamps are stored as RFC 3339
// strings by convention, which keeps lexicographic and chronological order
// identical for sorting.
type DocumentStore interface {
	// Upsert writes the document under (collection, id). With merge true the
	// given fields are merged into an existing document (existing keys not
	// named are kept); with merge false the document is replaced whole.
	Upsert(ctx context.Context, collection, id string, fields map[string]any, merge bool) error

	// Add stores fields under a freshly generated document ID and returns
	// that ID.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Get reads one document. Returns [ErrDocumentNotFound] if it does not
	// exist.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Query returns all documents in collection whose named field equals
	// value. An empty result is not an error.
	Query(ctx context.Context, collection, field, value string) ([]Document, error)

	// List returns all documents in collection ordered by the named field,
	// descending when desc is true.
	List(ctx context.Context, collection, orderBy string, desc bool) ([]Document, error)

	// Delete removes the document under (collection, id). Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Close releases the underlying database connection.
	Close() error
}
