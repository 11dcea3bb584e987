package docstore

import "errors"

// Sentinel errors returned by [DocumentStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned by Get when no document exists under
	// the given (collection, id) pair.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it ever reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values from a result
	// set fails.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrEncodingFields is returned when a document's fields cannot be
	// serialised to JSON for storage.
	ErrEncodingFields = errors.New("failed to encode document fields")
)
