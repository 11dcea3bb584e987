package docstore

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

// dialect captures the two points where the backends diverge: the SQL
// placeholder style and the JSON merge expression used on upsert conflicts.
type dialect struct {
	placeholder sq.PlaceholderFormat
	mergeExpr   string
}

var (
	postgresDialect = dialect{
		placeholder: sq.Dollar,
		mergeExpr:   "documents.fields || excluded.fields",
	}
	sqliteDialect = dialect{
		placeholder: sq.Question,
		mergeExpr:   "json_patch(documents.fields, excluded.fields)",
	}
)

// buildUpsertQuery builds an INSERT with an ON CONFLICT clause that either
// replaces the stored fields or JSON-merges the new ones into them.
func (d dialect) buildUpsertQuery(collection, id string, fieldsJSON []byte, merge bool) (string, []any, error) {
	conflictTarget := "fields = excluded.fields"
	if merge {
		conflictTarget = fmt.Sprintf("fields = %s", d.mergeExpr)
	}

	return sq.Insert(documentsTable).
		Columns("collection", "id", "fields").
		Values(collection, id, fieldsJSON).
		Suffix(fmt.Sprintf("ON CONFLICT (collection, id) DO UPDATE SET %s", conflictTarget)).
		PlaceholderFormat(d.placeholder).
		ToSql()
}

func (d dialect) buildGetQuery(collection, id string) (string, []any, error) {
	return sq.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(d.placeholder).
		ToSql()
}

// buildFieldQuery selects documents whose JSON field equals value. The ->>
// extraction operator works identically on both backends.
func (d dialect) buildFieldQuery(collection, field, value string) (string, []any, error) {
	return sq.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		Where(sq.Expr("fields->>? = ?", field, value)).
		PlaceholderFormat(d.placeholder).
		ToSql()
}

func (d dialect) buildListQuery(collection, orderBy string, desc bool) (string, []any, error) {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	return sq.Select("id", "fields").
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderByClause(sq.Expr(fmt.Sprintf("fields->>? %s", direction), orderBy)).
		PlaceholderFormat(d.placeholder).
		ToSql()
}

func (d dialect) buildDeleteQuery(collection, id string) (string, []any, error) {
	return sq.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(d.placeholder).
		ToSql()
}
