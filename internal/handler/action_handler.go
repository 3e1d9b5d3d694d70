package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rohanb712/ecotrack/internal/dto"
	"github.com/rohanb712/ecotrack/internal/service"
	"github.com/rohanb712/ecotrack/pkg/apperror"
	"github.com/rohanb712/ecotrack/pkg/response"
)

type ActionHandler struct {
	service service.ActionService
}

func NewActionHandler(service service.ActionService) *ActionHandler {
	return &ActionHandler{service: service}
}

func (h *ActionHandler) ListActions(c *gin.Context) {
	actions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

func (h *ActionHandler) CreateAction(c *gin.Context) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	action, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

func (h *ActionHandler) GetAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	action, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) ReplaceAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	action, err := h.service.Replace(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) PatchAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	var req dto.ActionPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	action, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

func (h *ActionHandler) DeleteAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// actionID parses the :id path segment. A non-integer id means the URL
// matches no record, so it answers 404 the same way an unknown id does.
func actionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound)
		return 0, false
	}
	return id, true
}
