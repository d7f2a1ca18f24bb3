package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a target employee enrolled in awareness campaigns
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName   string    `json:"last_name" gorm:"type:varchar(255)"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null;unique;index"`
	Department string    `json:"department" gorm:"type:varchar(255);index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FullName returns the display name used in reports
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CreateUserRequest represents the request to create a new target user
type CreateUserRequest struct {
	FirstName  string `json:"first_name" binding:"required" example:"Jane"`
	LastName   string `json:"last_name" example:"Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Department string `json:"department" example:"Finance"`
}

// UpdateUserRequest represents the request to update a target user
type UpdateUserRequest struct {
	FirstName  string `json:"first_name" binding:"required" example:"Jane"`
	LastName   string `json:"last_name" example:"Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Department string `json:"department" example:"Finance"`
}
