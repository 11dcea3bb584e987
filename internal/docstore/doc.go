// Package docstore persists schemaless documents grouped into named
// collections. Each document is a JSON object addressed by (collection, id);
// the storage backend is a single relational table with a JSON fields column,
// so new document shapes need no schema changes.
//
// Two backends implement the same contract: PostgreSQL (shared deployments)
// and SQLite (a local single-user file). Both are selected by configuration.
package docstore
