package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(ctx *gin.Context) {
	tasks, err := h.tasks.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, newTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *TaskHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "task_id")

	if !ok {
		return
	}

	task, err := h.tasks.Get(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(*task))
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	var input services.CreateTaskInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.Create(input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newTaskResponse(*task))
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "task_id")

	if !ok {
		return
	}

	var input services.UpdateTaskInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.Update(id, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(*task))
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "task_id")

	if !ok {
		return
	}

	if err := h.tasks.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *TaskHandler) MarkComplete(ctx *gin.Context) {
	id, ok := parseID(ctx, "task_id")

	if !ok {
		return
	}

	task, err := h.tasks.MarkComplete(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newTaskResponse(*task))
}
