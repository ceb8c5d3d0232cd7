package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/shared/constant"
	"salas/shared/dto"
	"salas/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

// expr renders the column for a SELECT list.
func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository maps the db-tagged fields of T onto one table, plus any columns T pulls
// in through the join returned by its GetJoinQuery method.
//
// Field tags:
//
//	db:"name"              column of the repository table, also written on insert
//	table:"rooms"          column read from a joined table, never written
//	column:"name"          source column when db carries an alias
//
// Reads go to the read connection, writes to the write connection or the given tx.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	insertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQuery(zero),
		insertColumns: insertColumns,
	}
}

func joinQuery(model any) string {
	method := reflect.ValueOf(model).MethodByName("GetJoinQuery")
	if !method.IsValid() {
		return ""
	}

	out := method.Call(nil)
	if len(out) == 0 {
		return ""
	}

	return out[0].String()
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, err error, action string) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// queryRow runs a named query on the read connection and scans one row into dest.
func (repo *Repository[T]) queryRow(ctx context.Context, scope otel.Scope, query string, args map[string]any, dest any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.insertColumns))
	for idx, col := range repo.insertColumns {
		placeholders[idx] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model any, operation string) error {
	ctx, scope := repo.scope(ctx, operation)
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, err, operation)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model, "insert")
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model, "insert")
}

// InsertBulkTx writes every model with one multi-row INSERT inside tx.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, sqltx, models, "bulk insert")
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	if err := repo.queryRow(ctx, scope, query, args, &exist); err != nil {
		return false, repo.fail(scope, err, "check exist data")
	}

	return exist, nil
}

// Get returns the first matching row, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns...), repo.table, repo.join, where)

	err := repo.queryRow(ctx, scope, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, err, "get data")
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	pagination := params.LimitClause(args)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns...), repo.table, repo.join, where, params.OrderClause(), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, err, "prepare statement")
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, err, "get all data")
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	var count int

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	if err := repo.queryRow(ctx, scope, query, args, &count); err != nil {
		return 0, repo.fail(scope, err, "count data")
	}

	return count, nil
}

// Update sets the columns in mod on every row matching filter. An empty filter is refused.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "update")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	fields := slices.Sorted(maps.Keys(mod))
	assignments := make([]string, len(fields))

	for idx, col := range fields {
		assignments[idx] = fmt.Sprintf("%s = :%s", col, col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, err, "update data")
	}

	return nil
}

func (repo *Repository[T]) selectList(only ...string) string {
	exprs := []string{}

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for field := range fields(reflectType) {
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if name := field.Tag.Get("column"); name != "" {
			columns = append(columns, column{name: name, table: source, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: source})
		}
	}

	return columns, insertColumns
}

func fields(reflectType reflect.Type) func(yield func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := range reflectType.NumField() {
			if !yield(reflectType.Field(i)) {
				return
			}
		}
	}
}
