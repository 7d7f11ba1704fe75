package api

import (
	"net/http"
	"strconv"

	reqdto "carconnect/internal/handler/dto/request"
	resdto "carconnect/internal/handler/dto/response"
	"carconnect/internal/handler/httperr"
	"carconnect/internal/usecase/commands"
	"carconnect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	cost queries.CostQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cost queries.CostQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, cost: cost}
}

// @Summary Calculate rental cost
// @Description Daily rate times whole days between the dates; unknown vehicles cost 0
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param vehicleId query int true "Vehicle ID"
// @Param startDate query string true "Start (RFC 3339)"
// @Param endDate query string true "End (RFC 3339)"
// @Success 200 {object} resdto.CostResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/cost [get]
func (h *ReservationHandler) CalculateCost(c *gin.Context) {
	var q reqdto.CostQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	cost, err := h.cost.CalculateTotalCost(c.Request.Context(), q.VehicleID, q.StartDate, q.EndDate)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCostResponse(q.VehicleID, q.StartDate, q.EndDate, cost))
}

// @Summary Create reservation
// @Description Create a reservation; total cost is computed when omitted
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromReservationView(view)
	c.Header("Location", "/api/reservations/"+strconv.FormatInt(id, 10))
	respond(c, http.StatusCreated, body, mapErr)
}

// @Summary List reservations
// @Description List every reservation (admin only)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromReservationViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get reservation
// @Description Get a reservation by ID; customers see only their own
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromReservationView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary List customer reservations
// @Description List the reservations of one customer
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id}/reservations [get]
func (h *ReservationHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}

	views, err := h.q.GetByCustomerID(c.Request.Context(), customerID, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromReservationViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Update reservation status
// @Description Overwrite the status; no transition check is made (admin only)
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel reservation
// @Description Cancel a Pending or Confirmed reservation and release its vehicle
// @Tags reservations
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
