package service_test

import (
	"context"
	"fmt"
	"sync"

	"salas/internal/domains/reservation/model"
	timeBlockModel "salas/internal/domains/timeblock/model"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/timezone"

	"github.com/lib/pq"
)

// memoryLedger is an in-memory reservation store holding the same
// (room_id, date, time_block_id, status) unique key as the reservations table.
type memoryLedger struct {
	mu     sync.Mutex
	rows   map[string]model.Reservation
	blocks map[string]timeBlockModel.TimeBlock
}

func newMemoryLedger(blocks ...timeBlockModel.TimeBlock) *memoryLedger {
	l := &memoryLedger{
		rows:   map[string]model.Reservation{},
		blocks: map[string]timeBlockModel.TimeBlock{},
	}

	for _, block := range blocks {
		l.blocks[block.ID] = block
	}

	return l
}

func argsOf(filter gDto.FilterGroup) map[string]any {
	_, args := filter.GetWhereClause()

	return args
}

func (l *memoryLedger) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	args := argsOf(filter)

	row, ok := l.rows[fmt.Sprint(args[model.FieldID])]
	if !ok || row.UserID != args[model.FieldUserID] {
		return model.Reservation{}, nil
	}

	return row, nil
}

func (l *memoryLedger) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Reservation, error) {
	return []model.Reservation{}, nil
}

// Count answers the max-active query: the user's active reservations from a date on.
func (l *memoryLedger) Count(_ context.Context, filter gDto.FilterGroup) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	args := argsOf(filter)
	count := 0

	for _, row := range l.rows {
		if row.UserID == args[model.FieldUserID] && timezone.FormatDate(row.Date) >= fmt.Sprint(args[model.FieldDate]) && row.Status.Active() {
			count++
		}
	}

	return count, nil
}

func (l *memoryLedger) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	args := argsOf(filter)

	for _, row := range l.rows {
		if row.RoomID == args[model.FieldRoomID] &&
			row.TimeBlockID == args[model.FieldTimeBlockID] &&
			timezone.FormatDate(row.Date) == args[model.FieldDate] &&
			row.Status.Active() {
			return true, nil
		}
	}

	return false, nil
}

func (l *memoryLedger) Update(_ context.Context, mod map[string]any, filter gDto.FilterGroup) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := fmt.Sprint(argsOf(filter)[model.FieldID])
	row := l.rows[id]
	row.Status = model.Status(fmt.Sprint(mod[model.FieldStatus]))

	if l.taken(row, id) {
		return &pq.Error{Code: constant.PqErrorCodeUniqueViolation}
	}

	l.rows[id] = row

	return nil
}

func (l *memoryLedger) Commit(_ context.Context, reservation model.Reservation, _ []model.ReservationMaterial) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.taken(reservation, reservation.ID) {
		return fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
	}

	l.rows[reservation.ID] = reservation

	return nil
}

func (l *memoryLedger) taken(candidate model.Reservation, except string) bool {
	for id, row := range l.rows {
		if id != except &&
			row.RoomID == candidate.RoomID &&
			row.TimeBlockID == candidate.TimeBlockID &&
			row.Date.Equal(candidate.Date) &&
			row.Status == candidate.Status {
			return true
		}
	}

	return false
}

func (l *memoryLedger) detail(row model.Reservation) model.Detail {
	block := l.blocks[row.TimeBlockID]

	return model.Detail{
		ID:          row.ID,
		UserID:      row.UserID,
		RoomID:      row.RoomID,
		TimeBlockID: row.TimeBlockID,
		Date:        row.Date,
		Status:      row.Status,
		DayOfWeek:   block.DayOfWeek,
		StartTime:   block.StartTime,
		EndTime:     block.EndTime,
	}
}

func (l *memoryLedger) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	row, err := l.Get(ctx, filter)
	if err != nil || row.ID == "" {
		return model.Detail{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.detail(row), nil
}

// ListDetails answers the per-day quota query: the user's active reservations on one date.
func (l *memoryLedger) ListDetails(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	args := argsOf(filter)
	res := []model.Detail{}

	for _, row := range l.rows {
		if row.UserID == args[model.FieldUserID] && timezone.FormatDate(row.Date) == args[model.FieldDate] && row.Status.Active() {
			res = append(res, l.detail(row))
		}
	}

	return res, nil
}

func (l *memoryLedger) ListMaterials(context.Context, []string) ([]model.RequestedMaterial, error) {
	return []model.RequestedMaterial{}, nil
}

func (l *memoryLedger) seed(row model.Reservation) {
	l.mu.Lock()
	l.rows[row.ID] = row
	l.mu.Unlock()
}

func (l *memoryLedger) status(id string) model.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rows[id].Status
}
