package services

import (
	"errors"

	"github.com/taskflow-dev/taskflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateUserInput struct {
	Name string `json:"name"`
}

type UpdateUserInput struct {
	Name *string `json:"name"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User

	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "User", ID: id}
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if input.Name == "" {
		return nil, invalid("name is required")
	}

	user := models.User{Name: input.Name}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, invalid("name cannot be empty")
		}
		user.Name = *input.Name
	}

	if err := s.db.Omit(clause.Associations).Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// Delete refuses to remove a user who still created projects or has
// assigned tasks. There is no cascade.
func (s *UserService) Delete(id uint) error {
	var projects int64

	if err := s.db.Model(&models.Project{}).Where("created_by_id = ?", id).Count(&projects).Error; err != nil {
		return err
	}

	var tasks int64

	if err := s.db.Model(&models.Task{}).Where("assigned_user_id = ?", id).Count(&tasks).Error; err != nil {
		return err
	}

	if projects > 0 || tasks > 0 {
		return invalid("user %d still has projects or tasks and cannot be deleted", id)
	}

	result := s.db.Delete(&models.User{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "User", ID: id}
	}

	return nil
}
