package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kadynthorpe/starter-restaurant-reservation/config"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	reservationModel "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	reservationRepo "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/repository"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/repository"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/cache"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTable    = "table:get"
	cacheGetAllTable = "table:gets"

	// Seat and unseat also change reservation state, so their cache
	// invalidation reaches into the reservation prefixes.
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

type Table interface {
	Create(ctx context.Context, req dto.CreateTableRequest) (dto.TableResponse, error)
	GetAll(ctx context.Context) ([]dto.TableResponse, error)
	Get(ctx context.Context, id int64) (dto.TableResponse, error)
	Seat(ctx context.Context, tableID, reservationID int64) (dto.TableResponse, error)
	Unseat(ctx context.Context, tableID int64) (dto.TableResponse, error)
}

type serviceImpl struct {
	repo            repository.Table
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Table, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Table {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create table")

		return res, fmt.Errorf("failed to create table: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read created table")

		return res, fmt.Errorf("failed to read created table: %w", err)
	}

	res.FromModel(created)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldTableName,
		SortDir: gDto.SortDirAsc,
	}
	filter := gDto.FilterGroup{}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTable, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res = dto.NewTablesResponse(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTable, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for table")

		return res, nil
	}

	table, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("table cannot be found. %d", id)) // nolint:wrapcheck
	}

	res.FromModel(table)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table to cache")
		}
	}()

	return res, nil
}

// Seat assigns a booked reservation to a free table. The guard order
// follows the dashboard flow: the table and reservation must exist, the
// table must be free and big enough, and the reservation must not be
// seated elsewhere already.
func (s *serviceImpl) Seat(ctx context.Context, tableID, reservationID int64) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seat")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.repo.Get(ctx, shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("table cannot be found. %d", tableID)) // nolint:wrapcheck
	}

	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(reservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("Reservation with id: %d does not exists.", reservationID)) // nolint:wrapcheck
	}

	if table.Occupied() {
		return res, failure.BadRequestFromString("Table is occupied") // nolint:wrapcheck
	}

	if table.Capacity < reservation.People {
		return res, failure.BadRequestFromString("Table does not have sufficient capacity.") // nolint:wrapcheck
	}

	if reservation.Status == reservationModel.StatusSeated {
		return res, failure.BadRequestFromString("reservation_id is already seated") // nolint:wrapcheck
	}

	if err = reservationModel.ValidateTransition(reservation.Status, reservationModel.StatusSeated); err != nil {
		return res, err
	}

	if err = s.repo.Seat(ctx, tableID, reservationID); err != nil {
		log.Error().Err(err).Msg("failed to seat reservation")

		return res, fmt.Errorf("failed to seat reservation: %w", err)
	}

	seated, err := s.repo.Get(ctx, shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read seated table")

		return res, fmt.Errorf("failed to read seated table: %w", err)
	}

	res.FromModel(seated)

	s.invalidateSeating(ctx, tableID, reservationID)

	return res, nil
}

// Unseat frees an occupied table and finishes the reservation that was
// seated at it.
func (s *serviceImpl) Unseat(ctx context.Context, tableID int64) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unseat")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.repo.Get(ctx, shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == 0 {
		return res, failure.NotFound(fmt.Sprintf("table cannot be found. %d", tableID)) // nolint:wrapcheck
	}

	if !table.Occupied() {
		return res, failure.BadRequestFromString("Table is not occupied.") // nolint:wrapcheck
	}

	reservationID := table.ReservationID.Int64

	if err = s.repo.Unseat(ctx, tableID, reservationID); err != nil {
		log.Error().Err(err).Msg("failed to unseat table")

		return res, fmt.Errorf("failed to unseat table: %w", err)
	}

	freed, err := s.repo.Get(ctx, shared.FilterByID(tableID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to read unseated table")

		return res, fmt.Errorf("failed to read unseated table: %w", err)
	}

	res.FromModel(freed)

	s.invalidateSeating(ctx, tableID, reservationID)

	return res, nil
}

func (s *serviceImpl) invalidateSeating(ctx context.Context, tableID, reservationID int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTable, strconv.FormatInt(tableID, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete table from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, strconv.FormatInt(reservationID, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}
