package models

import "time"

type Project struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Deadline    time.Time `gorm:"type:date;not null"`
	Priority    string    `gorm:"type:varchar(16);not null;default:'medium'"`
	Status      string    `gorm:"type:varchar(16);not null;default:'planning'"`
	CreatedAt   time.Time
	CreatedByID *uint `gorm:"index"`

	// Relationships
	CreatedBy *User  `gorm:"foreignKey:CreatedByID"`
	Tasks     []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
