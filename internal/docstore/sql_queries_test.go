// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertQuery_Replace(t *testing.T) {
	query, args, err := postgresDialect.buildUpsertQuery("tasks", "task-1", []byte(`{"text":"call supplier"}`), false)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict (collection, id)")
	require.Contains(t, q, "fields = excluded.fields")
	assert.NotContains(t, q, "||", "replace upsert must not merge")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	require.Len(t, args, 3)
	assert.Equal(t, "tasks", args[0])
	assert.Equal(t, "task-1", args[1])
}

func Test_buildUpsertQuery_MergePerDialect(t *testing.T) {
	tests := []struct {
		name        string
		dialect     dialect
		wantMerge   string
		placeholder string
	}{
		{
			name:        "postgres merges with || operator",
			dialect:     postgresDialect,
			wantMerge:   "documents.fields || excluded.fields",
			placeholder: "$1",
		},
		{
			name:        "sqlite merges with json_patch",
			dialect:     sqliteDialect,
			wantMerge:   "json_patch(documents.fields, excluded.fields)",
			placeholder: "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.dialect.buildUpsertQuery("users", "uid-1", []byte(`{}`), true)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantMerge)
			assert.Contains(t, query, tt.placeholder)
			require.Len(t, args, 3)
		})
	}
}

func Test_buildGetQuery(t *testing.T) {
	query, args, err := postgresDialect.buildGetQuery("users", "uid-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "where")
	require.Contains(t, q, "collection")
	require.Contains(t, q, "id")

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"users", "uid-1"}, args)
}

func Test_buildFieldQuery(t *testing.T) {
	query, args, err := postgresDialect.buildFieldQuery("tasks", "user_id", "uid-42")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "fields->>")

	// collection filter plus the field name and value as arguments
	require.Len(t, args, 3)
	assert.Equal(t, "tasks", args[0])
	assert.Equal(t, "user_id", args[1])
	assert.Equal(t, "uid-42", args[2])
}

func Test_buildListQuery(t *testing.T) {
	tests := []struct {
		name          string
		desc          bool
		wantDirection string
	}{
		{name: "ascending", desc: false, wantDirection: "ASC"},
		{name: "descending", desc: true, wantDirection: "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := postgresDialect.buildListQuery("price_updates", "date", tt.desc)
			require.NoError(t, err)

			assert.Contains(t, query, "ORDER BY")
			assert.Contains(t, query, tt.wantDirection)
			require.Len(t, args, 2)
			assert.Equal(t, "price_updates", args[0])
			assert.Equal(t, "date", args[1], "order-by field is passed as an argument, not interpolated")
		})
	}
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := sqliteDialect.buildDeleteQuery("tasks", "task-9")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from documents")
	require.Contains(t, q, "where")
	require.Contains(t, query, "?")

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"tasks", "task-9"}, args)
}
