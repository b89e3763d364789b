package handlers

import (
	"net/http"

	dom "github.com/RaulLuz/kanban-spec/internal/domain"
	"github.com/RaulLuz/kanban-spec/internal/dto"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks    *service.TaskService
	subtasks *service.SubtaskService
}

func NewTaskHandler(tasks *service.TaskService, subtasks *service.SubtaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks, subtasks: subtasks}
}

// Create godoc
// @Summary      Create a task at the end of a column
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.tasks.Create(c.Request.Context(), req.ColumnID, req.BoardID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TaskEnvelope{Task: taskToResponse(t)})
}

// Get godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskEnvelope{Task: taskToResponse(t)})
}

// Update godoc
// @Summary      Update a task
// @Description  Changing columnId moves the task to the end of the target column.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.tasks.Update(c.Request.Context(), c.Param("id"), req.Title, req.Description, req.ColumnID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskEnvelope{Task: taskToResponse(t)})
}

// Delete godoc
// @Summary      Delete a task and its subtasks
// @Tags         tasks
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Move godoc
// @Summary      Move a task to a column and position
// @Description  Positions past the end of the destination column append the task last.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.MoveTaskRequest  true  "Move request"
// @Success      200   {object}  dto.TaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tasks/move [post]
func (h *TaskHandler) Move(c *gin.Context) {
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.tasks.Move(c.Request.Context(), req.TaskID, req.TargetColumnID, *req.NewPosition)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TaskEnvelope{Task: taskToResponse(t)})
}

// Subtasks godoc
// @Summary      List a task's subtasks in order
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.SubtasksEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /tasks/{id}/subtasks [get]
func (h *TaskHandler) Subtasks(c *gin.Context) {
	list, err := h.subtasks.ListByTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubtasksEnvelope{Subtasks: subtasksToResponses(list)})
}

// CreateSubtask godoc
// @Summary      Add a subtask to a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Task ID"
// @Param        body  body      dto.CreateSubtaskRequest  true  "Subtask body"
// @Success      201   {object}  dto.SubtaskEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tasks/{id}/subtasks [post]
func (h *TaskHandler) CreateSubtask(c *gin.Context) {
	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.subtasks.Create(c.Request.Context(), c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SubtaskEnvelope{Subtask: subtaskToResponse(sub)})
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		ColumnID:    t.ColumnID,
		BoardID:     t.BoardID,
		Title:       t.Title,
		Description: t.Description,
		Position:    t.Position,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
