package optionsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/formkit/pkg/field"
)

// Querier is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SQL loads options with query. Columns are mapped onto O by name, honoring
// `db` struct tags.
//
//	type country struct {
//		ID   string `db:"code"`
//		Name string `db:"name"`
//	}
//	src := optionsource.SQL[country](pool, "SELECT code, name FROM countries ORDER BY name")
func SQL[O any](q Querier, query string, args ...any) field.OptionsSource[O] {
	return func(ctx context.Context) ([]O, error) {
		return collect[O](ctx, q, query, args)
	}
}

// SQLSearch answers search queries with query, which receives the search
// text as $1 followed by args. Blank search texts run the query with "".
//
//	optionsource.SQLSearch[country](pool,
//		"SELECT code, name FROM countries WHERE name ILIKE '%' || $1 || '%' LIMIT 20")
func SQLSearch[O any](q Querier, query string, args ...any) field.OptionsProvider[O] {
	return func(ctx context.Context, search string) ([]O, error) {
		params := append([]any{strings.TrimSpace(search)}, args...)
		return collect[O](ctx, q, query, params)
	}
}

func collect[O any](ctx context.Context, q Querier, query string, args []any) ([]O, error) {
	if q == nil {
		return nil, ErrNilClient
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("optionsource: query options: %w", err)
	}
	opts, err := pgx.CollectRows(rows, pgx.RowToStructByName[O])
	if err != nil {
		return nil, fmt.Errorf("optionsource: scan options: %w", err)
	}
	return opts, nil
}
