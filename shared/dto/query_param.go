package dto

import (
	"net/http"
	"net/url"
	"salas/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	// ThenBy holds secondary "column DIR" orderings applied after SortBy.
	ThenBy []string `json:"-"`
}

// SortColumns maps the sort_by names a client may send to the qualified columns they order by.
type SortColumns map[string]string

// OrderClause renders the ORDER BY clause, empty when no sort column is set or the
// column is not a plain, optionally qualified, identifier.
func (q *QueryParams) OrderClause() string {
	if q.SortBy == "" || q.SortDir == "" || !isIdentifier(q.SortBy) {
		return ""
	}

	orderings := append([]string{q.SortBy + " " + q.SortDir}, q.ThenBy...)

	return "ORDER BY " + strings.Join(orderings, ", ")
}

// LimitClause renders LIMIT/OFFSET for the page and adds its named args to args.
// A limit without a page returns the first rows only; no limit returns everything.
func (q *QueryParams) LimitClause(args map[string]any) string {
	switch {
	case q.Limit <= 0:
		return ""
	case q.Page > 0:
		args["limit"] = q.Limit
		args["offset"] = (q.Page - 1) * q.Limit

		return "LIMIT :limit OFFSET :offset"
	default:
		args["limit"] = q.Limit

		return "LIMIT :limit"
	}
}

// FromRequest reads paging and sorting from the query string. Values that do not parse
// are ignored, as is a sort_by missing from sortable. withDefaults fills an unset page
// and limit so large tables are never listed whole.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool, sortable SortColumns) {
	values := r.URL.Query()

	q.Page = positive(values, constant.RequestParamPage, q.Page)
	q.Limit = positive(values, constant.RequestParamLimit, q.Limit)

	if column, ok := sortable[values.Get(constant.RequestParamSortBy)]; ok {
		q.SortBy = column
		q.SortDir = SortDirAsc
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positive(values url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

func isIdentifier(column string) bool {
	for _, part := range strings.Split(column, ".") {
		if part == "" {
			return false
		}

		for _, r := range part {
			if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				return false
			}
		}
	}

	return true
}
