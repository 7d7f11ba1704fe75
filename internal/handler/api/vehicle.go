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

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Failure 404 {object} httperr.Response
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	views, err := h.q.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromVehicleViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary List available vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} resdto.VehicleResponse
// @Failure 404 {object} httperr.Response
// @Router /vehicles/available [get]
func (h *VehicleHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.GetAvailable(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromVehicleViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromVehicleView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Add vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Add(c *gin.Context) {
	var req reqdto.AddVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Add(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/vehicles/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update vehicle
// @Description Set availability and daily rate by registration number
// @Tags vehicles
// @Accept json
// @Security BearerAuth
// @Param registrationNumber path string true "Registration number"
// @Param request body reqdto.UpdateVehicleRequest true "Changes"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{registrationNumber} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	var req reqdto.UpdateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateByRegistration(c.Request.Context(), c.Param("registrationNumber"), req); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
