package services

import (
	"errors"
	"time"

	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedByID *uint  `json:"created_by"`
}

// UpdateProjectInput carries a partial update. Nil fields are left
// untouched on the stored row.
type UpdateProjectInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns every project with its tasks, most recently created first.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project

	if err := s.db.Preload("Tasks").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.Preload("Tasks").Preload("CreatedBy").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Project", ID: id}
		}
		return nil, err
	}

	return &project, nil
}

func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, invalid("title is required")
	}

	if input.Deadline == "" {
		return nil, invalid("deadline is required")
	}

	if input.Priority == "" {
		return nil, invalid("priority is required")
	}

	if input.Status == "" {
		return nil, invalid("status is required")
	}

	if !types.ValidPriority(input.Priority) {
		return nil, invalid("invalid priority %q", input.Priority)
	}

	if !types.ValidProjectStatus(input.Status) {
		return nil, invalid("invalid status %q", input.Status)
	}

	deadline, err := time.Parse(types.DateFormat, input.Deadline)

	if err != nil {
		return nil, invalid("invalid deadline %q, expected YYYY-MM-DD", input.Deadline)
	}

	if input.CreatedByID != nil {
		if err := s.userExists(*input.CreatedByID); err != nil {
			return nil, err
		}
	}

	project := models.Project{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    deadline,
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedByID: input.CreatedByID,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *ProjectService) Update(id uint, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, invalid("title cannot be empty")
		}
		project.Title = *input.Title
	}

	if input.Description != nil {
		project.Description = *input.Description
	}

	if input.Deadline != nil {
		deadline, err := time.Parse(types.DateFormat, *input.Deadline)
		if err != nil {
			return nil, invalid("invalid deadline %q, expected YYYY-MM-DD", *input.Deadline)
		}
		project.Deadline = deadline
	}

	if input.Priority != nil {
		if !types.ValidPriority(*input.Priority) {
			return nil, invalid("invalid priority %q", *input.Priority)
		}
		project.Priority = *input.Priority
	}

	if input.Status != nil {
		if !types.ValidProjectStatus(*input.Status) {
			return nil, invalid("invalid status %q", *input.Status)
		}
		project.Status = *input.Status
	}

	if err := s.db.Omit(clause.Associations).Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes the project row directly and reports NotFound when no
// row was affected, so deleting an id twice never succeeds silently.
func (s *ProjectService) Delete(id uint) error {
	result := s.db.Delete(&models.Project{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "Project", ID: id}
	}

	return nil
}

func (s *ProjectService) userExists(id uint) error {
	var count int64

	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return invalid("created_by user %d does not exist", id)
	}

	return nil
}
