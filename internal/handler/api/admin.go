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

// AdminHandler serves /api/admins; every route sits behind RequireAdmin.
type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Register admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterAdminRequest true "Admin"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admins [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req reqdto.RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/admins/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdminResponse
// @Failure 404 {object} httperr.Response
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	views, err := h.q.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromAdminViews(views)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} resdto.AdminResponse
// @Failure 404 {object} httperr.Response
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromAdminView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Get admin by username
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} resdto.AdminResponse
// @Failure 404 {object} httperr.Response
// @Router /admins/by-username/{username} [get]
func (h *AdminHandler) GetByUsername(c *gin.Context) {
	view, err := h.q.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	body, mapErr := resdto.FromAdminView(view)
	respond(c, http.StatusOK, body, mapErr)
}

// @Summary Update admin
// @Tags admins
// @Accept json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param request body reqdto.UpdateAdminRequest true "Changes"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admins/{username} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	var req reqdto.UpdateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), c.Param("username"), req); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete admin
// @Tags admins
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
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
