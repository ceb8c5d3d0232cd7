package dto_test

import (
	"net/http/httptest"
	"net/url"
	"salas/shared/constant"
	"salas/shared/dto"
	"salas/shared/model"
	"salas/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.In(timezone.Location()).Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.In(timezone.Location()).Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestNewMetadata(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	stamp := model.NewMetadata("user-1", at)
	assert.Equal(t, model.Metadata{CreatedAt: at, ModifiedAt: at, CreatedBy: "user-1", ModifiedBy: "user-1"}, stamp)

	rendered := dto.NewMetadata(stamp)
	assert.Equal(t, rendered.CreatedAt, rendered.ModifiedAt)
	assert.Equal(t, "user-1", rendered.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	sortable := dto.SortColumns{"name": "rooms.name", "capacity": "rooms.capacity"}

	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "rooms.name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when disabled",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction keeps ascending",
			query:    "sort_by=capacity&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "rooms.capacity", SortDir: dto.SortDirAsc},
		},
		{
			name:     "descending",
			query:    "sort_by=capacity&sort_dir=desc",
			expected: dto.QueryParams{SortBy: "rooms.capacity", SortDir: dto.SortDirDesc},
		},
		{
			name:     "column outside the allow-list ignored",
			query:    "sort_by=is_public",
			expected: dto.QueryParams{},
		},
		{
			name:     "expression in sort_by ignored",
			query:    "sort_by=" + url.QueryEscape("(CASE WHEN (SELECT count(*) FROM reservations)>0 THEN name ELSE location END)") + "&sort_dir=asc",
			expected: dto.QueryParams{SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest, sortable)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_OrderClause(t *testing.T) {
	assert.Empty(t, (&dto.QueryParams{SortBy: "name"}).OrderClause())
	assert.Empty(t, (&dto.QueryParams{SortBy: "name; DROP TABLE rooms", SortDir: dto.SortDirAsc}).OrderClause())
	assert.Empty(t, (&dto.QueryParams{SortBy: "(SELECT 1)", SortDir: dto.SortDirAsc}).OrderClause())
	assert.Empty(t, (&dto.QueryParams{SortBy: "rooms.", SortDir: dto.SortDirAsc}).OrderClause())
	assert.Equal(t, "ORDER BY rooms.name ASC", (&dto.QueryParams{SortBy: "rooms.name", SortDir: dto.SortDirAsc}).OrderClause())

	params := dto.QueryParams{
		SortBy:  "reservations.date",
		SortDir: dto.SortDirDesc,
		ThenBy:  []string{"time_blocks.start_time DESC"},
	}

	assert.Equal(t, "ORDER BY reservations.date DESC, time_blocks.start_time DESC", params.OrderClause())
}

func TestQueryParams_LimitClause(t *testing.T) {
	args := map[string]any{}
	assert.Empty(t, (&dto.QueryParams{Page: 2}).LimitClause(args))
	assert.Empty(t, args)

	assert.Equal(t, "LIMIT :limit", (&dto.QueryParams{Limit: 10}).LimitClause(args))
	assert.Equal(t, map[string]any{"limit": 10}, args)

	args = map[string]any{}
	assert.Equal(t, "LIMIT :limit OFFSET :offset", (&dto.QueryParams{Page: 3, Limit: 10}).LimitClause(args))
	assert.Equal(t, map[string]any{"limit": 10, "offset": 20}, args)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		group    dto.FilterGroup
		where    string
		expected map[string]any
	}{
		{
			name:     "empty group",
			group:    dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd},
			expected: map[string]any{},
		},
		{
			name: "slot lookup",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Table: "reservations", Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
					dto.Filter{Table: "reservations", Field: "date", Value: "2026-10-19", Operator: dto.FilterOperatorEq},
				},
			},
			where:    "(reservations.room_id = :room_id AND reservations.date = :date)",
			expected: map[string]any{"room_id": "r1", "date": "2026-10-19"},
		},
		{
			name: "in operator expands slice",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
				},
			},
			where:    "(status IN (:status_0, :status_1))",
			expected: map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name: "nested whole day or block",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "time_block_id", Operator: dto.FilterIsNull},
							dto.Filter{Field: "time_block_id", Value: "b1", Operator: dto.FilterOperatorEq},
						},
					},
				},
			},
			where:    "(room_id = :room_id AND (time_block_id IS NULL OR time_block_id = :time_block_id))",
			expected: map[string]any{"room_id": "r1", "time_block_id": "b1"},
		},
		{
			name:     "empty in matches nothing",
			group:    dto.And(dto.In("reservations", "id", []string{})),
			where:    "(FALSE)",
			expected: map[string]any{},
		},
		{
			name:     "empty nested group is skipped",
			group:    dto.And(dto.Eq("rooms", "is_active", true), dto.Or()),
			where:    "(rooms.is_active = :is_active)",
			expected: map[string]any{"is_active": true},
		},
		{
			name: "date window built from helpers",
			group: dto.And(
				dto.Eq("reservations", "user_id", "u1"),
				dto.OnOrAfter("reservations", "date", "from", "2026-10-19"),
				dto.OnOrBefore("reservations", "date", "to", "2026-10-21"),
			),
			where:    "(reservations.user_id = :user_id AND reservations.date >= :from AND reservations.date <= :to)",
			expected: map[string]any{"user_id": "u1", "from": "2026-10-19", "to": "2026-10-21"},
		},
		{
			name: "arg name overrides field",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{ArgName: "from", Field: "date", Value: "2026-10-19", Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{ArgName: "to", Field: "date", Value: "2026-10-21", Operator: dto.FilterOperatorLessEq},
				},
			},
			where:    "(date >= :from AND date <= :to)",
			expected: map[string]any{"from": "2026-10-19", "to": "2026-10-21"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.expected, args)
		})
	}
}
