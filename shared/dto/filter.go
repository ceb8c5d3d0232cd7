package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is one predicate of a WHERE clause. Value is bound as the named arg ArgName,
// which defaults to Field; set ArgName when the same field appears twice in a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in less_eq greater_eq is_null"`
	Table    string
}

func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

// Like matches field containing value, ignoring case.
func Like(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorLike}
}

func In(table, field string, values any) Filter {
	return Filter{Table: table, Field: field, Value: values, Operator: FilterOperatorIn}
}

// OnOrAfter matches field >= value, bound as argName.
func OnOrAfter(table, field, argName string, value any) Filter {
	return Filter{Table: table, Field: field, ArgName: argName, Value: value, Operator: FilterOperatorGreaterEq}
}

// OnOrBefore matches field <= value, bound as argName.
func OnOrBefore(table, field, argName string, value any) Filter {
	return Filter{Table: table, Field: field, ArgName: argName, Value: value, Operator: FilterOperatorLessEq}
}

func IsNull(table, field string) Filter {
	return Filter{Table: table, Field: field, Operator: FilterIsNull}
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, name := f.column(), f.argName()

	compare := func(op string) string {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, name)
	}

	switch f.Operator {
	case FilterOperatorEq:
		return compare("="), args
	case FilterOperatorLessEq:
		return compare("<="), args
	case FilterOperatorGreaterEq:
		return compare(">="), args
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), args
	case FilterOperatorIn:
		return f.inClause(column, name, args), args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// inClause expands a slice into one named arg per element. An empty slice matches nothing.
func (f *Filter) inClause(column, name string, args map[string]any) string {
	val := reflect.ValueOf(f.Value)

	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		args[name] = f.Value

		return fmt.Sprintf("%s = :%s", column, name)
	}

	if val.Len() == 0 {
		return "FALSE"
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		named[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", "))
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// And groups filters (Filter or FilterGroup values) so that all must match.
func And(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

// Or groups filters so that any may match.
func Or(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorOr, Filters: filters}
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, filter := range f.Filters {
		var where string
		var arg map[string]any

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+f.Operator+" ")), args
}
