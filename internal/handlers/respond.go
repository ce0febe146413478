package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/services"
	"github.com/taskflow-dev/taskflow/internal/types"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type TaskResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Assignee     string          `json:"assignee"`
	Priority     string          `json:"priority"`
	Status       string          `json:"status"`
	DueDate      string          `json:"dueDate"`
	Progress     int             `json:"progress"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Project      *ProjectSummary `json:"project,omitempty"`
	AssignedUser *UserResponse   `json:"assignedUser,omitempty"`
}

type ProjectResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Deadline    string         `json:"deadline"`
	Priority    string         `json:"priority"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CreatedBy   *UserResponse  `json:"created_by,omitempty"`
	Tasks       []TaskResponse `json:"tasks"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func newTaskResponse(task models.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Assignee:    task.Assignee,
		Priority:    task.Priority,
		Status:      task.Status,
		DueDate:     task.DueDate.Format(types.DateFormat),
		Progress:    task.Progress,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Project != nil {
		response.Project = &ProjectSummary{ID: task.Project.ID, Title: task.Project.Title}
	}

	if task.AssignedUser != nil {
		user := newUserResponse(*task.AssignedUser)
		response.AssignedUser = &user
	}

	return response
}

func newProjectResponse(project models.Project) ProjectResponse {
	tasks := make([]TaskResponse, 0, len(project.Tasks))

	for _, task := range project.Tasks {
		tasks = append(tasks, newTaskResponse(task))
	}

	response := ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Deadline:    project.Deadline.Format(types.DateFormat),
		Priority:    project.Priority,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		Tasks:       tasks,
	}

	if project.CreatedBy != nil {
		user := newUserResponse(*project.CreatedBy)
		response.CreatedBy = &user
	}

	return response
}

// respondError maps service errors onto status codes. Anything outside
// the NotFound/Validation taxonomy is an infrastructure failure.
func respondError(ctx *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}

	return uint(id), true
}
