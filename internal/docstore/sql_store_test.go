package docstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*sqlStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := &sqlStore{
		db:      db,
		dialect: postgresDialect,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger.Nop(),
	}
	return store, mock
}

func TestUpsert_ReplaceExecutesBuiltQuery(t *testing.T) {
	store, mock := newMockStore(t)

	query, _, err := postgresDialect.buildUpsertQuery("users", "uid-1", []byte(`{"email":"a@b.c"}`), false)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("users", "uid-1", []byte(`{"email":"a@b.c"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Upsert(context.Background(), "users", "uid-1", map[string]any{"email": "a@b.c"}, false)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ExecErrorIsWrapped(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(errors.New("connection reset"))

	err := store.Upsert(context.Background(), "users", "uid-1", map[string]any{"a": 1}, true)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAdd_GeneratesDocumentID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := store.Add(context.Background(), "tasks", map[string]any{"text": "order reagents"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ReturnsDecodedDocument(t *testing.T) {
	store, mock := newMockStore(t)

	query, _, err := postgresDialect.buildGetQuery("users", "uid-1")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "fields"}).
		AddRow("uid-1", []byte(`{"email":"chemist@example.com","verified":true}`))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("users", "uid-1").
		WillReturnRows(rows)

	doc, err := store.Get(context.Background(), "users", "uid-1")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", doc.ID)
	assert.Equal(t, "chemist@example.com", doc.Fields["email"])
	assert.Equal(t, true, doc.Fields["verified"])
}

func TestGet_MissingDocument(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, fields FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fields"}))

	_, err := store.Get(context.Background(), "users", "uid-missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestQuery_ReturnsAllMatches(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "fields"}).
		AddRow("t-1", []byte(`{"text":"first","user_id":"uid-1"}`)).
		AddRow("t-2", []byte(`{"text":"second","user_id":"uid-1"}`))
	mock.ExpectQuery("SELECT id, fields FROM documents").
		WillReturnRows(rows)

	docs, err := store.Query(context.Background(), "tasks", "user_id", "uid-1")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "t-1", docs[0].ID)
	assert.Equal(t, "second", docs[1].Fields["text"])
}

func TestQuery_NoMatchesIsNotAnError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, fields FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fields"}))

	docs, err := store.Query(context.Background(), "tasks", "user_id", "uid-none")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestList_CorruptRowIsScanError(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "fields"}).
		AddRow("p-1", []byte(`{not json`))
	mock.ExpectQuery("SELECT id, fields FROM documents").
		WillReturnRows(rows)

	_, err := store.List(context.Background(), "price_updates", "date", true)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestDelete_MissingDocumentIsNoOp(t *testing.T) {
	store, mock := newMockStore(t)

	query, _, err := postgresDialect.buildDeleteQuery("tasks", "task-gone")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("tasks", "task-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = store.Delete(context.Background(), "tasks", "task-gone")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
