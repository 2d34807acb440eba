package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/infras/postgres"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/logger"
	gRepo "github.com/kadynthorpe/starter-restaurant-reservation/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	SearchByMobileNumber(ctx context.Context, digits string) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SearchByMobileNumber matches reservations whose stored phone number,
// stripped of formatting characters, contains the given digit sequence.
// The stripping happens in SQL so formatted and bare numbers match alike.
func (repo *repositoryImpl) SearchByMobileNumber(ctx context.Context, digits string) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.SearchByMobileNumber")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE translate(%s, '() -', '') LIKE :%s ORDER BY %s",
		model.TableName,
		model.FieldMobileNumber,
		model.FieldMobileNumber,
		model.FieldReservationDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		model.FieldMobileNumber: "%" + digits + "%",
	}

	var models []model.Reservation

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to search reservations: %w", err)
	}

	return models, nil
}
