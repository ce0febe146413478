package services

import (
	"errors"
	"time"

	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateTaskInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Assignee       string `json:"assignee"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	DueDate        string `json:"dueDate"`
	Progress       *int   `json:"progress"`
	ProjectID      *uint  `json:"projectId"`
	AssignedUserID *uint  `json:"assignedUserId"`
}

// UpdateTaskInput carries a partial update. Nil fields are left
// untouched on the stored row.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
	Progress    *int    `json:"progress"`
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// List returns every task with its project and assigned user, most
// recently created first.
func (s *TaskService) List() ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.Preload("Project").Preload("AssignedUser").Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *TaskService) Get(id uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.Preload("Project").Preload("AssignedUser").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Task", ID: id}
		}
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, invalid("title is required")
	}

	if input.Assignee == "" {
		return nil, invalid("assignee is required")
	}

	if input.Priority == "" {
		return nil, invalid("priority is required")
	}

	if input.Status == "" {
		return nil, invalid("status is required")
	}

	if input.DueDate == "" {
		return nil, invalid("dueDate is required")
	}

	if !types.ValidPriority(input.Priority) {
		return nil, invalid("invalid priority %q", input.Priority)
	}

	if !types.ValidTaskStatus(input.Status) {
		return nil, invalid("invalid status %q", input.Status)
	}

	dueDate, err := time.Parse(types.DateFormat, input.DueDate)

	if err != nil {
		return nil, invalid("invalid dueDate %q, expected YYYY-MM-DD", input.DueDate)
	}

	progress := 0

	if input.Progress != nil {
		progress = *input.Progress
	}

	if progress < 0 || progress > 100 {
		return nil, invalid("progress must be between 0 and 100")
	}

	if input.ProjectID != nil {
		if err := s.projectExists(*input.ProjectID); err != nil {
			return nil, err
		}
	}

	if input.AssignedUserID != nil {
		if err := s.userExists(*input.AssignedUserID); err != nil {
			return nil, err
		}
	}

	task := models.Task{
		Title:          input.Title,
		Description:    input.Description,
		Assignee:       input.Assignee,
		Priority:       input.Priority,
		Status:         input.Status,
		DueDate:        dueDate,
		Progress:       progress,
		ProjectID:      input.ProjectID,
		AssignedUserID: input.AssignedUserID,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) Update(id uint, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, invalid("title cannot be empty")
		}
		task.Title = *input.Title
	}

	if input.Description != nil {
		task.Description = *input.Description
	}

	if input.Assignee != nil {
		if *input.Assignee == "" {
			return nil, invalid("assignee cannot be empty")
		}
		task.Assignee = *input.Assignee
	}

	if input.Priority != nil {
		if !types.ValidPriority(*input.Priority) {
			return nil, invalid("invalid priority %q", *input.Priority)
		}
		task.Priority = *input.Priority
	}

	if input.Status != nil {
		if !types.ValidTaskStatus(*input.Status) {
			return nil, invalid("invalid status %q", *input.Status)
		}
		task.Status = *input.Status
	}

	if input.DueDate != nil {
		dueDate, err := time.Parse(types.DateFormat, *input.DueDate)
		if err != nil {
			return nil, invalid("invalid dueDate %q, expected YYYY-MM-DD", *input.DueDate)
		}
		task.DueDate = dueDate
	}

	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, invalid("progress must be between 0 and 100")
		}
		task.Progress = *input.Progress
	}

	if err := s.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the task row directly and reports NotFound when no row
// was affected, matching the project delete policy.
func (s *TaskService) Delete(id uint) error {
	result := s.db.Delete(&models.Task{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "Task", ID: id}
	}

	return nil
}

// MarkComplete forces the task into completed with full progress,
// regardless of its prior state. Calling it on an already completed
// task is a no-op write.
func (s *TaskService) MarkComplete(id uint) (*models.Task, error) {
	task, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	task.Status = types.TaskStatusCompleted
	task.Progress = 100

	if err := s.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) projectExists(id uint) error {
	var count int64

	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return invalid("project %d does not exist", id)
	}

	return nil
}

func (s *TaskService) userExists(id uint) error {
	var count int64

	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return invalid("assigned user %d does not exist", id)
	}

	return nil
}
