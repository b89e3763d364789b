package handlers

import (
	"net/http"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/dto"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
)

type SubtaskHandler struct {
	subtasks *service.SubtaskService
}

func NewSubtaskHandler(subtasks *service.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtasks: subtasks}
}

// Create godoc
// @Summary      Create a subtask
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSubtaskRequest  true  "Subtask body"
// @Success      201   {object}  dto.SubtaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /subtasks [post]
func (h *SubtaskHandler) Create(c *gin.Context) {
	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.subtasks.Create(c.Request.Context(), req.TaskID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SubtaskEnvelope{Subtask: subtaskToResponse(sub)})
}

// Get godoc
// @Summary      Get a subtask by ID
// @Tags         subtasks
// @Produce      json
// @Param        id   path      string  true  "Subtask ID"
// @Success      200  {object}  dto.SubtaskEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subtasks/{id} [get]
func (h *SubtaskHandler) Get(c *gin.Context) {
	sub, err := h.subtasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubtaskEnvelope{Subtask: subtaskToResponse(sub)})
}

// Update godoc
// @Summary      Update a subtask
// @Tags         subtasks
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Subtask ID"
// @Param        body  body      dto.UpdateSubtaskRequest  true  "Partial update"
// @Success      200   {object}  dto.SubtaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /subtasks/{id} [patch]
func (h *SubtaskHandler) Update(c *gin.Context) {
	var req dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.subtasks.Update(c.Request.Context(), c.Param("id"), req.Title, req.IsCompleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubtaskEnvelope{Subtask: subtaskToResponse(sub)})
}

// Delete godoc
// @Summary      Delete a subtask
// @Tags         subtasks
// @Param        id   path  string  true  "Subtask ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subtasks/{id} [delete]
func (h *SubtaskHandler) Delete(c *gin.Context) {
	if err := h.subtasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Flip a subtask's completion flag
// @Tags         subtasks
// @Produce      json
// @Param        id   path      string  true  "Subtask ID"
// @Success      200  {object}  dto.SubtaskEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /subtasks/{id}/toggle [post]
func (h *SubtaskHandler) Toggle(c *gin.Context) {
	sub, err := h.subtasks.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubtaskEnvelope{Subtask: subtaskToResponse(sub)})
}

func subtaskToResponse(s dom.Subtask) dto.SubtaskResponse {
	return dto.SubtaskResponse{
		ID:          s.ID,
		TaskID:      s.TaskID,
		Title:       s.Title,
		IsCompleted: s.IsCompleted,
		Position:    s.Position,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func subtasksToResponses(list []dom.Subtask) []dto.SubtaskResponse {
	out := make([]dto.SubtaskResponse, len(list))
	for i := range list {
		out[i] = subtaskToResponse(list[i])
	}
	return out
}
