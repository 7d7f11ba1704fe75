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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Register customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCustomerRequest true "Customer"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/customers/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.q.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromCustomerViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
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
	body, mapErr := resdto.FromCustomerView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get customer by username
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/by-username/{username} [get]
func (h *CustomerHandler) GetByUsername(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.q.GetByUsername(c.Request.Context(), c.Param("username"), actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromCustomerView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Update customer
// @Description Change name, phone number and address; blank fields are kept
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param request body reqdto.UpdateCustomerRequest true "Changes"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{username} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), c.Param("username"), req, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
