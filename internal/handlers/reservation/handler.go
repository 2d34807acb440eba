package reservation

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kadynthorpe/starter-restaurant-reservation/infras/otel"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/model/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/domains/reservation/service"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/constant"
	gDto "github.com/kadynthorpe/starter-restaurant-reservation/shared/dto"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/failure"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/timezone"
	"github.com/kadynthorpe/starter-restaurant-reservation/shared/validator"
	"github.com/kadynthorpe/starter-restaurant-reservation/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Put("/{id}/status", handler.UpdateReservationStatus)
	})
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Create a new reservation after running the booking rules.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body gDto.Request[dto.CreateReservationRequest] true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := gDto.Request[dto.CreateReservationRequest]{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, *req.Data)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations for a date, or searches by phone number.
// @Summary List reservations
// @Description List active reservations for a date, or search all dates by partial mobile number.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param date query string false "Reservation date (YYYY-MM-DD), defaults to today"
// @Param mobile_number query string false "Partial mobile number, overrides date"
// @Success 200 {object} response.Data[[]dto.ReservationResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	var (
		res []dto.ReservationResponse
		err error
	)

	if mobileNumber := r.URL.Query().Get(constant.RequestParamMobileNumber); mobileNumber != "" {
		res, err = handler.service.SearchByMobileNumber(ctx, mobileNumber)
	} else {
		date := r.URL.Query().Get(constant.RequestParamDate)
		if date == "" {
			date = timezone.Now().Format(constant.ReservationDateFormat)
		}

		res, err = handler.service.ListByDate(ctx, date)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationByID retrieves a single reservation.
// @Summary Get a reservation
// @Description Retrieve a reservation by its identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := reservationID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservation edits the fields of an existing reservation.
// @Summary Update a reservation
// @Description Update the editable fields of a reservation that is not finished.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body gDto.Request[dto.UpdateReservationRequest] true "Update Reservation Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Updated reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{id} [put]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id, err := reservationID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := gDto.Request[dto.UpdateReservationRequest]{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, *req.Data, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservationStatus transitions a reservation's lifecycle status.
// @Summary Update a reservation's status
// @Description Transition a reservation to a new status, subject to the lifecycle rules.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body gDto.Request[dto.UpdateReservationStatusRequest] true "Update Status Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Updated reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{id}/status [put]
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id, err := reservationID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := gDto.Request[dto.UpdateReservationStatusRequest]{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req.Data.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation status updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// reservationID reads the id path parameter. A non-numeric id can never
// match a reservation, so it reports the same not-found failure a missing
// row would.
func reservationID(r *http.Request) (int64, error) {
	idParam := chi.URLParam(r, constant.RequestParamID)

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return 0, failure.NotFound(fmt.Sprintf("Reservation with id: %s not found.", idParam)) //nolint:wrapcheck
	}

	return id, nil
}
