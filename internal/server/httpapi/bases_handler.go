package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// BaseHandler handles /bases.
type BaseHandler struct {
	svc BaseService
	log logging.Logger
}

func NewBaseHandler(svc BaseService, log logging.Logger) *BaseHandler {
	return &BaseHandler{svc: svc, log: log}
}

// List godoc
// @Summary List bases
// @Tags bases
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Base
// @Router /bases [get]
func (h *BaseHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a base
// @Tags bases
// @Security BearerAuth
// @Produce json
// @Param id path int true "Base ID"
// @Success 200 {object} models.Base
// @Failure 404 {object} ErrorResponse
// @Router /bases/{id} [get]
func (h *BaseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a base
// @Tags bases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BaseRequest true "New base"
// @Success 201 {object} models.Base
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /bases [post]
func (h *BaseHandler) Create(c *gin.Context) {
	var req BaseRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	ativo := req.Ativo == nil || *req.Ativo
	out, err := h.svc.Create(c.Request.Context(), req.Nome, ativo)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Update godoc
// @Summary Update a base
// @Tags bases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Base ID"
// @Param request body UpdateBaseRequest true "Fields to change"
// @Success 200 {object} models.Base
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bases/{id} [patch]
func (h *BaseHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req UpdateBaseRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, models.BasePatch{Nome: req.Nome, Ativo: req.Ativo})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete a base
// @Description Bases still referenced by users or clientes cannot be deleted.
// @Tags bases
// @Security BearerAuth
// @Param id path int true "Base ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bases/{id} [delete]
func (h *BaseHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
