package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time

	// Relationships
	Projects []Project `gorm:"foreignKey:CreatedByID"`
	Tasks    []Task    `gorm:"foreignKey:AssignedUserID"`
}
