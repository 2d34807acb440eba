package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/postgres"
	reservationModel "github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/logger"
	gRepo "github.com/kadynthorpe/starter-restaurant-reservation/shared/repository"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
)

type Table interface {
	Insert(ctx context.Context, model model.Table) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Table, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Table, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Seat(ctx context.Context, tableID, reservationID int64) error
	Unseat(ctx context.Context, tableID, reservationID int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Table]
	reservations gRepo.Repository[reservationModel.Reservation]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Table](model.EntityName, model.TableName, model.FieldID, db, otel),
		reservations: gRepo.NewRepository[reservationModel.Reservation](reservationModel.EntityName, reservationModel.TableName, reservationModel.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

// Seat links the table to the reservation and marks the reservation
// seated in one transaction. A failure of either write rolls back both,
// so a table never points at a reservation that is not seated.
func (repo *repositoryImpl) Seat(ctx context.Context, tableID, reservationID int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".table.Seat")
	defer scope.End()

	return repo.linkReservation(ctx, tableID, reservationID, true)
}

// Unseat clears the table's occupancy pointer and marks the reservation
// finished, atomically, mirroring Seat.
func (repo *repositoryImpl) Unseat(ctx context.Context, tableID, reservationID int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".table.Unseat")
	defer scope.End()

	return repo.linkReservation(ctx, tableID, reservationID, false)
}

func (repo *repositoryImpl) linkReservation(ctx context.Context, tableID, reservationID int64, seat bool) (err error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	var tableReservationID any

	status := reservationModel.StatusFinished
	if seat {
		tableReservationID = reservationID
		status = reservationModel.StatusSeated
	}

	now := timezone.Now()

	tableFields := map[string]any{
		model.FieldReservationID: tableReservationID,
		constant.FieldModifiedAt: now,
	}

	if err = repo.UpdateTx(ctx, tx, tableFields, shared.FilterByID(tableID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update table occupancy: %w", err)
	}

	reservationFields := map[string]any{
		reservationModel.FieldStatus: status,
		constant.FieldModifiedAt:     now,
	}

	if err = repo.reservations.UpdateTx(ctx, tx, reservationFields, shared.FilterByID(reservationID, reservationModel.FieldID, reservationModel.TableName)); err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
