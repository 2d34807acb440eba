package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/repository"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/cache"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	ListByDate(ctx context.Context, date string) ([]dto.ReservationResponse, error)
	SearchByMobileNumber(ctx context.Context, number string) ([]dto.ReservationResponse, error)
	Get(ctx context.Context, id int64) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id int64) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Policy(s.cfg); err != nil {
		return res, err
	}

	reservation, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString("reservation_date must be a valid date format!") // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read created reservation")

		return res, fmt.Errorf("failed to read created reservation: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return res, nil
}

func (s *serviceImpl) ListByDate(ctx context.Context, date string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldReservationTime,
		SortDir: gDto.SortDirAsc,
	}
	filter := listByDateFilter(date)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = dto.NewReservationsResponse(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

// SearchByMobileNumber is uncached: partial-number searches are rare,
// ad-hoc, and too varied to make useful cache entries.
func (s *serviceImpl) SearchByMobileNumber(ctx context.Context, number string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchByMobileNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.SearchByMobileNumber(ctx, shared.DigitsOnly(number))
	if err != nil {
		log.Error().Err(err).Msg("failed to search reservations")

		return res, fmt.Errorf("failed to search reservations: %w", err)
	}

	return dto.NewReservationsResponse(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("Reservation with id: %d not found.", id)) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("Reservation with id: %d not found.", id)) // nolint:wrapcheck
	}

	if current.Status == model.StatusFinished {
		return res, failure.BadRequestFromString("a finished reservation cannot be updated") // nolint:wrapcheck
	}

	if err = req.Policy(s.cfg); err != nil {
		return res, err
	}

	fields, err := req.ToFields()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString("reservation_date must be a valid date format!") // nolint:wrapcheck
	}

	if req.Status != "" && req.Status != current.Status {
		// Seating and finishing only happen through the table seat/unseat
		// flow, never through an edit.
		if req.Status == model.StatusSeated || req.Status == model.StatusFinished {
			return res, failure.BadRequestFromString("Status cannot be already seated or finished.") // nolint:wrapcheck
		}

		if err = model.ValidateTransition(current.Status, req.Status); err != nil {
			return res, err
		}

		fields[model.FieldStatus] = req.Status
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read updated reservation")

		return res, fmt.Errorf("failed to read updated reservation: %w", err)
	}

	res.FromModel(updated)

	s.invalidateReservation(ctx, id)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, status string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("Reservation with id: %d not found.", id)) // nolint:wrapcheck
	}

	if !model.KnownStatus(status) {
		return res, failure.BadRequestFromString("Status is unknown.") // nolint:wrapcheck
	}

	// Seating and finishing only happen through the table seat/unseat
	// flow, never by direct status submission.
	if status == model.StatusSeated || status == model.StatusFinished {
		return res, failure.BadRequestFromString("Status cannot be already seated or finished.") // nolint:wrapcheck
	}

	if err = model.ValidateTransition(current.Status, status); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, statusFields(status), filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return res, fmt.Errorf("failed to update reservation status: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to read updated reservation")

		return res, fmt.Errorf("failed to read updated reservation: %w", err)
	}

	res.FromModel(updated)

	s.invalidateReservation(ctx, id)

	return res, nil
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}

// listByDateFilter keeps the dashboard list to active reservations only:
// finished and cancelled ones stay out of the day's view.
func listByDateFilter(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "status_finished",
				Field:    model.FieldStatus,
				Value:    model.StatusFinished,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "status_cancelled",
				Field:    model.FieldStatus,
				Value:    model.StatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}
}

func statusFields(status string) map[string]any {
	return map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
	}
}
