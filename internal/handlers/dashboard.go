package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/services"
	"github.com/taskflow-dev/taskflow/internal/types"
)

const recentTaskLimit = 5

type DashboardResponse struct {
	Projects    ProjectsSummary `json:"projects"`
	Tasks       TasksSummary    `json:"tasks"`
	TeamMembers int             `json:"team_members"`
	RecentTasks []TaskResponse  `json:"recent_tasks"`
}

type ProjectsSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type TasksSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type DashboardHandler struct {
	projects *services.ProjectService
	tasks    *services.TaskService
	users    *services.UserService
}

func NewDashboardHandler(projects *services.ProjectService, tasks *services.TaskService, users *services.UserService) *DashboardHandler {
	return &DashboardHandler{projects: projects, tasks: tasks, users: users}
}

// Get aggregates the lists the dashboard renders: project and task
// totals, team size and the most recent tasks.
func (h *DashboardHandler) Get(ctx *gin.Context) {
	projects, err := h.projects.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	tasks, err := h.tasks.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	users, err := h.users.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	var activeProjects int

	for _, project := range projects {
		if project.Status == types.ProjectStatusPlanning || project.Status == types.ProjectStatusInProgress {
			activeProjects++
		}
	}

	var pendingTasks, completedTasks int

	for _, task := range tasks {
		if task.Status == types.TaskStatusCompleted {
			completedTasks++
		} else {
			pendingTasks++
		}
	}

	recent := make([]TaskResponse, 0, recentTaskLimit)

	for _, task := range tasks {
		if len(recent) == recentTaskLimit {
			break
		}
		recent = append(recent, newTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		Projects: ProjectsSummary{
			Total:  len(projects),
			Active: activeProjects,
		},
		Tasks: TasksSummary{
			Total:     len(tasks),
			Pending:   pendingTasks,
			Completed: completedTasks,
		},
		TeamMembers: len(users),
		RecentTasks: recent,
	})
}
