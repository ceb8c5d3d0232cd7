package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"salas/config"
	"salas/infras/kafka"
	"salas/infras/otel"
	availabilityModel "salas/internal/domains/availability/model"
	availabilityService "salas/internal/domains/availability/service"
	materialModel "salas/internal/domains/material/model"
	materialRepository "salas/internal/domains/material/repository"
	profileService "salas/internal/domains/profile/service"
	"salas/internal/domains/reservation/model"
	"salas/internal/domains/reservation/model/dto"
	"salas/internal/domains/reservation/repository"
	roomService "salas/internal/domains/room/service"
	ruleService "salas/internal/domains/rule/service"
	timeBlockModel "salas/internal/domains/timeblock/model"
	timeBlockService "salas/internal/domains/timeblock/service"
	"salas/shared"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/failure"
	gRepo "salas/shared/repository"
	"salas/shared/timezone"

	"github.com/rs/zerolog/log"
)

const minutesPerHour = 60

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (dto.CancelResponse, error)
	Mine(ctx context.Context) (dto.MyReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	// Wait blocks until the post-commit work of earlier calls has finished.
	Wait()
}

type serviceImpl struct {
	rooms        roomService.Room
	timeBlocks   timeBlockService.TimeBlock
	materials    materialRepository.Material
	rules        ruleService.Rules
	profiles     profileService.Profile
	availability availabilityService.Availability
	repo         repository.Reservation
	publisher    kafka.Client
	cfg          *config.Config
	clock        timezone.Clock
	otel         otel.Otel

	pending sync.WaitGroup
}

func New(
	rooms roomService.Room,
	timeBlocks timeBlockService.TimeBlock,
	materials materialRepository.Material,
	rules ruleService.Rules,
	profiles profileService.Profile,
	availability availabilityService.Availability,
	repo repository.Reservation,
	publisher kafka.Client,
	cfg *config.Config,
	clock timezone.Clock,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		rooms:        rooms,
		timeBlocks:   timeBlocks,
		materials:    materials,
		rules:        rules,
		profiles:     profiles,
		availability: availability,
		repo:         repo,
		publisher:    publisher,
		cfg:          cfg,
		clock:        clock,
		otel:         otel,
	}
}

func ownedBy(userID string) gDto.Filter {
	return gDto.Eq(model.TableName, model.FieldUserID, userID)
}

func activeStatus() gDto.Filter {
	return gDto.In(model.TableName, model.FieldStatus, model.ActiveStatuses)
}

func onDate(date time.Time) gDto.Filter {
	return gDto.Eq(model.TableName, model.FieldDate, timezone.FormatDate(date))
}

func fromDate(date time.Time) gDto.Filter {
	return gDto.OnOrAfter(model.TableName, model.FieldDate, model.FieldDate, timezone.FormatDate(date))
}

func ownReservation(id, userID string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldID, id), ownedBy(userID))
}

// Create validates the request against every reservation rule in a fixed order and
// commits the first failure-free request as a confirmed reservation.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	scope.SetAttributes(map[string]any{
		"reservation.room_id":       req.RoomID,
		"reservation.time_block_id": req.TimeBlockID,
		"reservation.date":          req.Date,
		"reservation.role":          role,
	})

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !room.IsActive {
		return res, failure.Rejection(http.StatusNotFound, failure.ReasonInactive, "room is not active") // nolint:wrapcheck
	}

	block, err := s.timeBlocks.Get(ctx, req.TimeBlockID)
	if err != nil {
		return res, err
	}

	if !block.IsActive {
		return res, failure.Rejection(http.StatusNotFound, failure.ReasonInactive, "time block is not active") // nolint:wrapcheck
	}

	capability, err := s.profiles.Resolve(ctx, user, role)
	if err != nil {
		return res, err
	}

	if !capability.CanReserve {
		return res, failure.Forbidden("your role cannot make reservations") // nolint:wrapcheck
	}

	if !room.IsPublic && !capability.CanReserveInternalRooms {
		return res, failure.Forbidden("your role cannot reserve internal rooms") // nolint:wrapcheck
	}

	rules, err := s.rules.Current(ctx)
	if err != nil {
		return res, err
	}

	today := timezone.Today(s.clock)

	if date.Before(today) {
		return res, failure.Rejection(http.StatusBadRequest, failure.ReasonPastDate, "cannot reserve a past date") // nolint:wrapcheck
	}

	if date.After(today.AddDate(0, 0, rules.MaxAdvanceDays())) {
		return res, failure.Rejection( // nolint:wrapcheck
			http.StatusBadRequest,
			failure.ReasonTooFarInAdvance,
			fmt.Sprintf("reservations can be made at most %d days in advance", rules.MaxAdvanceDays()),
		)
	}

	state, err := s.availability.SlotState(ctx, room.ID, date, block.ID)
	if err != nil {
		return res, err
	}

	switch state {
	case availabilityModel.SlotStateBooked:
		return res, failure.Rejection(http.StatusConflict, failure.ReasonAlreadyReserved, "the slot is already reserved") // nolint:wrapcheck
	case availabilityModel.SlotStateBlocked:
		return res, failure.Rejection(http.StatusConflict, failure.ReasonBlocked, "the room is not available on that slot") // nolint:wrapcheck
	}

	if err = s.checkQuota(ctx, user, date, block, rules.EffectiveMaxHours(capability)); err != nil {
		return res, err
	}

	if s.cfg.Booking.EnforceMaxActive {
		if err = s.checkMaxActive(ctx, user, today, rules.MaxActiveReservations); err != nil {
			return res, err
		}
	}

	materials, err := s.requestedMaterials(ctx, room.ID, req.MaterialIDs())
	if err != nil {
		return res, err
	}

	reservation := req.ToModel(user, date, s.clock.Now())

	links := make([]model.ReservationMaterial, len(materials))
	for i, material := range materials {
		links[i] = model.ReservationMaterial{ReservationID: reservation.ID, MaterialID: material.ID}
	}

	if err = s.repo.Commit(ctx, reservation, links); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Rejection(http.StatusConflict, failure.ReasonAlreadyReserved, "the slot is already reserved") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("room_id", room.ID).Str("time_block_id", block.ID).Msg("failed to commit reservation")

		return res, fmt.Errorf("failed to commit reservation: %w", err)
	}

	scope.AddEvent(model.EventCreated, map[string]any{"reservation.id": reservation.ID, "reservation.materials": len(links)})
	s.afterCommit(ctx, model.EventCreated, reservation)

	res.FromCreated(reservation, room, block, materials)

	return res, nil
}

func (s *serviceImpl) checkQuota(ctx context.Context, user string, date time.Time, block timeBlockModel.TimeBlock, maxHours int) error {
	details, err := s.repo.ListDetails(ctx, gDto.QueryParams{}, gDto.And(ownedBy(user), onDate(date), activeStatus()))
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to list reservations of the day")

		return fmt.Errorf("failed to list reservations of the day: %w", err)
	}

	used := model.UsedMinutes(details)
	if used+block.DurationMinutes() > maxHours*minutesPerHour {
		return failure.Rejection( // nolint:wrapcheck
			http.StatusUnprocessableEntity,
			failure.ReasonQuotaExceeded,
			fmt.Sprintf("daily limit exceeded: %.1f hours already reserved, limit is %d hours", float64(used)/minutesPerHour, maxHours),
		)
	}

	return nil
}

func (s *serviceImpl) checkMaxActive(ctx context.Context, user string, today time.Time, limit int) error {
	active, err := s.repo.Count(ctx, gDto.And(ownedBy(user), fromDate(today), activeStatus()))
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to count active reservations")

		return fmt.Errorf("failed to count active reservations: %w", err)
	}

	if active >= limit {
		return failure.Rejection( // nolint:wrapcheck
			http.StatusUnprocessableEntity,
			failure.ReasonMaxActiveExceeded,
			fmt.Sprintf("you already have %d active reservations, limit is %d", active, limit),
		)
	}

	return nil
}

// requestedMaterials resolves ids against the room's active catalog, rejecting any id it does not offer.
func (s *serviceImpl) requestedMaterials(ctx context.Context, roomID string, ids []string) ([]materialModel.OfferedMaterial, error) {
	if len(ids) == 0 {
		return []materialModel.OfferedMaterial{}, nil
	}

	offered, err := s.materials.ListOfferedByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to list room materials")

		return nil, fmt.Errorf("failed to list room materials: %w", err)
	}

	byID := make(map[string]materialModel.OfferedMaterial, len(offered))
	for _, material := range offered {
		byID[material.ID] = material
	}

	res := make([]materialModel.OfferedMaterial, 0, len(ids))

	for _, id := range ids {
		material, ok := byID[id]
		if !ok {
			return nil, failure.Rejection( // nolint:wrapcheck
				http.StatusBadRequest,
				failure.ReasonInvalidMaterial,
				fmt.Sprintf("material %s is not offered by this room", id),
			)
		}

		res = append(res, material)
	}

	return res, nil
}

// afterCommit drops the cached grid of the reservation's date and publishes the event.
// Neither step can fail the request.
func (s *serviceImpl) afterCommit(ctx context.Context, eventType string, reservation model.Reservation) {
	event := model.NewEvent(eventType, reservation, s.clock.Now())

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		c := context.WithoutCancel(ctx)

		s.availability.InvalidateGrid(c, reservation.Date)

		err := s.publisher.SendMessages(c, s.cfg.Kafka.Topic.Reservation, kafka.Message{
			Key:     reservation.RoomID,
			Value:   event,
			Headers: map[string]string{"event_type": eventType},
		})
		if err != nil {
			log.Error().Err(err).Str("reservation_id", reservation.ID).Str("event", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) Wait() {
	s.pending.Wait()
}

// Cancel cancels one of the caller's reservations. Cancelling twice is not an error.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, ownReservation(id, user))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if timezone.DateOf(reservation.Date).Before(timezone.Today(s.clock)) {
		return res, failure.Rejection(http.StatusBadRequest, failure.ReasonCannotCancelPast, "cannot cancel a past reservation") // nolint:wrapcheck
	}

	res.ID = reservation.ID

	if reservation.Status == model.StatusCancelled {
		res.Status = model.StatusCancelled
		res.AlreadyCancelled = true
		res.Message = "reservation was already cancelled"

		return res, nil
	}

	now := s.clock.Now()
	update := map[string]any{
		model.FieldStatus: string(model.StatusCancelled),
		"modified_at":     now,
		"modified_by":     user,
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Rejection( // nolint:wrapcheck
				http.StatusConflict,
				failure.ReasonInvariantViolation,
				"a cancelled reservation already exists for this slot",
			)
		}

		log.Error().Err(err).Str("id", id).Msg("failed to cancel reservation")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = model.StatusCancelled
	reservation.ModifiedAt = now
	reservation.ModifiedBy = user

	s.afterCommit(ctx, model.EventCancelled, reservation)

	res.Status = model.StatusCancelled
	res.Message = "reservation cancelled"

	return res, nil
}

// Mine lists the caller's upcoming active reservations and their most recent past ones.
func (s *serviceImpl) Mine(ctx context.Context) (res dto.MyReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Mine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	today := timezone.Today(s.clock)

	active, err := s.repo.ListDetails(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldDate,
		SortDir: gDto.SortDirAsc,
		ThenBy:  []string{timeBlockModel.TableName + "." + timeBlockModel.FieldStartTime + " " + gDto.SortDirAsc},
	}, gDto.And(ownedBy(user), activeStatus(), fromDate(today)))
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to list active reservations")

		return res, fmt.Errorf("failed to list active reservations: %w", err)
	}

	pastFilter := gDto.And(
		ownedBy(user),
		gDto.OnOrBefore(model.TableName, model.FieldDate, model.FieldDate, timezone.FormatDate(today.AddDate(0, 0, -1))),
	)

	past, err := s.repo.ListDetails(ctx, gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldDate,
		SortDir: gDto.SortDirDesc,
		ThenBy:  []string{timeBlockModel.TableName + "." + timeBlockModel.FieldStartTime + " " + gDto.SortDirDesc},
		Page:    1,
		Limit:   s.cfg.Booking.PastHistoryLimit,
	}, pastFilter)
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to list past reservations")

		return res, fmt.Errorf("failed to list past reservations: %w", err)
	}

	ids := make([]string, 0, len(active)+len(past))
	for _, detail := range append(active, past...) {
		ids = append(ids, detail.ID)
	}

	materials, err := s.repo.ListMaterials(ctx, ids)
	if err != nil {
		log.Error().Err(err).Str("user_id", user).Msg("failed to list reservation materials")

		return res, fmt.Errorf("failed to list reservation materials: %w", err)
	}

	res.FromDetails(active, past, materials)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	detail, err := s.repo.GetDetail(ctx, ownReservation(id, user))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	materials, err := s.repo.ListMaterials(ctx, []string{detail.ID})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to list reservation materials")

		return res, fmt.Errorf("failed to list reservation materials: %w", err)
	}

	res.FromDetail(detail, materials)

	return res, nil
}
