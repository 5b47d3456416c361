package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseotaviopc/api-ari/internal/logging"
)

// ClienteHandler handles /cliente. Every operation is scoped to the caller's
// base.
type ClienteHandler struct {
	svc ClienteService
	log logging.Logger
}

func NewClienteHandler(svc ClienteService, log logging.Logger) *ClienteHandler {
	return &ClienteHandler{svc: svc, log: log}
}

// List godoc
// @Summary List clientes of the caller's base
// @Tags cliente
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Cliente
// @Failure 401 {object} ErrorResponse
// @Router /cliente [get]
func (h *ClienteHandler) List(c *gin.Context) {
	id, err := identity(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.List(c.Request.Context(), id.User.BaseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a cliente
// @Tags cliente
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cliente ID"
// @Success 200 {object} models.Cliente
// @Failure 404 {object} ErrorResponse
// @Router /cliente/{id} [get]
func (h *ClienteHandler) Get(c *gin.Context) {
	who, err := identity(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.Get(c.Request.Context(), who.User.BaseID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a cliente in the caller's base
// @Tags cliente
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ClienteRequest true "New cliente"
// @Success 201 {object} models.Cliente
// @Failure 400 {object} ErrorResponse
// @Router /cliente [post]
func (h *ClienteHandler) Create(c *gin.Context) {
	who, err := identity(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req ClienteRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.Create(c.Request.Context(), who.User.BaseID, req.model())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Update godoc
// @Summary Update a cliente
// @Tags cliente
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cliente ID"
// @Param request body UpdateClienteRequest true "Fields to change"
// @Success 200 {object} models.Cliente
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cliente/{id} [patch]
func (h *ClienteHandler) Update(c *gin.Context) {
	who, err := identity(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req UpdateClienteRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.Update(c.Request.Context(), who.User.BaseID, id, req.patch())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete a cliente
// @Tags cliente
// @Security BearerAuth
// @Param id path int true "Cliente ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /cliente/{id} [delete]
func (h *ClienteHandler) Delete(c *gin.Context) {
	who, err := identity(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), who.User.BaseID, id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
