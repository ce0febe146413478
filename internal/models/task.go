package models

import "time"

type Task struct {
	ID             uint      `gorm:"primaryKey"`
	Title          string    `gorm:"not null"`
	Description    string
	Assignee       string    `gorm:"not null"` // Display name, not a foreign key
	Priority       string    `gorm:"type:varchar(16);not null;default:'medium'"`
	Status         string    `gorm:"type:varchar(16);not null;default:'todo'"`
	DueDate        time.Time `gorm:"type:date;not null"`
	Progress       int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ProjectID      *uint `gorm:"index"`
	AssignedUserID *uint `gorm:"index"`

	// Relationships
	Project      *Project `gorm:"foreignKey:ProjectID"`
	AssignedUser *User    `gorm:"foreignKey:AssignedUserID"`
}
