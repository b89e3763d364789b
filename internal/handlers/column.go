package handlers

import (
	"net/http"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/dto"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	columns *service.ColumnService
	tasks   *service.TaskService
}

func NewColumnHandler(columns *service.ColumnService, tasks *service.TaskService) *ColumnHandler {
	return &ColumnHandler{columns: columns, tasks: tasks}
}

// Create godoc
// @Summary      Create a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateColumnRequest  true  "Column body"
// @Success      201   {object}  dto.ColumnEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	col, err := h.columns.Create(c.Request.Context(), req.BoardID, req.Name, req.Color, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ColumnEnvelope{Column: columnToResponse(col)})
}

// Get godoc
// @Summary      Get a column by ID
// @Tags         columns
// @Produce      json
// @Param        id   path      string  true  "Column ID"
// @Success      200  {object}  dto.ColumnEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /columns/{id} [get]
func (h *ColumnHandler) Get(c *gin.Context) {
	col, err := h.columns.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ColumnEnvelope{Column: columnToResponse(col)})
}

// Update godoc
// @Summary      Update a column's name or color
// @Tags         columns
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Column ID"
// @Param        body  body      dto.UpdateColumnRequest  true  "Partial update"
// @Success      200   {object}  dto.ColumnEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /columns/{id} [patch]
func (h *ColumnHandler) Update(c *gin.Context) {
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	col, err := h.columns.Update(c.Request.Context(), c.Param("id"), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ColumnEnvelope{Column: columnToResponse(col)})
}

// Delete godoc
// @Summary      Delete a column and its tasks
// @Tags         columns
// @Param        id   path  string  true  "Column ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	if err := h.columns.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Tasks godoc
// @Summary      List a column's tasks in order
// @Tags         columns
// @Produce      json
// @Param        id   path      string  true  "Column ID"
// @Success      200  {object}  dto.TasksEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /columns/{id}/tasks [get]
func (h *ColumnHandler) Tasks(c *gin.Context) {
	list, err := h.tasks.ListByColumn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TasksEnvelope{Tasks: tasksToResponses(list)})
}

func columnToResponse(col dom.Column) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        col.ID,
		BoardID:   col.BoardID,
		Name:      col.Name,
		Color:     col.Color,
		Position:  col.Position,
		CreatedAt: col.CreatedAt,
		UpdatedAt: col.UpdatedAt,
	}
}

func columnsToResponses(list []dom.Column) []dto.ColumnResponse {
	out := make([]dto.ColumnResponse, len(list))
	for i := range list {
		out[i] = columnToResponse(list[i])
	}
	return out
}
