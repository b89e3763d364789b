package handlers

import (
	"net/http"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/dto"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boards  *service.BoardService
	columns *service.ColumnService
	tasks   *service.TaskService
}

func NewBoardHandler(boards *service.BoardService, columns *service.ColumnService, tasks *service.TaskService) *BoardHandler {
	return &BoardHandler{boards: boards, columns: columns, tasks: tasks}
}

// List godoc
// @Summary      List all boards
// @Tags         boards
// @Produce      json
// @Success      200  {object}  dto.BoardsEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	list, err := h.boards.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BoardsEnvelope{Boards: boardsToResponses(list)})
}

// Create godoc
// @Summary      Create a board with default columns
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateBoardRequest  true  "Board body"
// @Success      201   {object}  dto.BoardEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.boards.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BoardEnvelope{Board: boardToResponse(b)})
}

// Get godoc
// @Summary      Get a board by ID
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  dto.BoardEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /boards/{id} [get]
func (h *BoardHandler) Get(c *gin.Context) {
	b, err := h.boards.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BoardEnvelope{Board: boardToResponse(b)})
}

// Update godoc
// @Summary      Rename a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Board ID"
// @Param        body  body      dto.UpdateBoardRequest  true  "Partial update"
// @Success      200   {object}  dto.BoardEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /boards/{id} [patch]
func (h *BoardHandler) Update(c *gin.Context) {
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BoardEnvelope{Board: boardToResponse(b)})
}

// Delete godoc
// @Summary      Delete a board and everything beneath it
// @Tags         boards
// @Param        id   path  string  true  "Board ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.boards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Columns godoc
// @Summary      List a board's columns in order
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  dto.ColumnsEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /boards/{id}/columns [get]
func (h *BoardHandler) Columns(c *gin.Context) {
	list, err := h.columns.ListByBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ColumnsEnvelope{Columns: columnsToResponses(list)})
}

// Tasks godoc
// @Summary      List a board's tasks grouped by column
// @Tags         boards
// @Produce      json
// @Param        id   path      string  true  "Board ID"
// @Success      200  {object}  dto.TasksEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /boards/{id}/tasks [get]
func (h *BoardHandler) Tasks(c *gin.Context) {
	list, err := h.tasks.ListByBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TasksEnvelope{Tasks: tasksToResponses(list)})
}

func boardToResponse(b dom.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func boardsToResponses(list []dom.Board) []dto.BoardResponse {
	out := make([]dto.BoardResponse, len(list))
	for i := range list {
		out[i] = boardToResponse(list[i])
	}
	return out
}
