package table

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/table/service"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/validator"
	"github.com/kadynthorpe/starter-restaurant-reservation/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTable)
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Get("/{id}", handler.GetTableByID)
		routerGroup.Put("/{id}/seat", handler.SeatTable)
		routerGroup.Delete("/{id}/seat", handler.UnseatTable)
	})
}

// CreateTable handles the creation of a new table.
// @Summary Create a new table
// @Description Create a new dining table with a name and capacity.
// @Tags Table
// @Accept json
// @Produce json
// @Param request body gDto.Request[dto.CreateTableRequest] true "Create Table Request"
// @Success 201 {object} response.Data[dto.TableResponse] "Table created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables [post]
func (handler *Handler) CreateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	req := gDto.Request[dto.CreateTableRequest]{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, *req.Data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Table created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTables lists all tables.
// @Summary Get all tables
// @Description Retrieve all tables ordered by name.
// @Tags Table
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.TableResponse] "List of tables"
// @Failure 500 {object} response.Error
// @Router /tables [get]
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetTableByID retrieves a single table.
// @Summary Get a table
// @Description Retrieve a table by its identifier.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} response.Data[dto.TableResponse] "Table"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables/{id} [get]
func (handler *Handler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableByID")
	defer scope.End()

	id, err := tableID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SeatTable seats a reservation at a table.
// @Summary Seat a reservation
// @Description Assign a booked reservation to a free table with sufficient capacity.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body gDto.Request[dto.SeatTableRequest] true "Seat Table Request"
// @Success 200 {object} response.Data[dto.TableResponse] "Seated table"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables/{id}/seat [put]
func (handler *Handler) SeatTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SeatTable")
	defer scope.End()

	id, err := tableID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := gDto.Request[dto.SeatTableRequest]{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Seat(ctx, id, req.Data.ReservationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seat reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation seated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UnseatTable frees an occupied table and finishes its reservation.
// @Summary Unseat a table
// @Description Free an occupied table and mark its reservation finished.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} response.Data[dto.TableResponse] "Freed table"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables/{id}/seat [delete]
func (handler *Handler) UnseatTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnseatTable")
	defer scope.End()

	id, err := tableID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Unseat(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unseat table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table unseated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// tableID reads the id path parameter, treating a non-numeric id the same
// as a missing table.
func tableID(r *http.Request) (int64, error) {
	idParam := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return 0, failure.NotFound(fmt.Sprintf("table cannot be found. %s", idParam)) //nolint:wrapcheck
	}

	return id, nil
}
