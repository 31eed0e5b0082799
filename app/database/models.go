package database

import (
	"time"

	"gorm.io/gorm"

	"userblock/pkg/utils"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user account in the system
type User struct {
	ID             string      `json:"id" gorm:"primaryKey;<-:create"`
	Username       string      `json:"username" validate:"required"`
	Firstname      *string     `json:"firstname"`
	Lastname       *string     `json:"lastname"`
	Email          string      `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Phone          *string     `json:"phone"`
	PhoneSecondary *string     `json:"phone_secondary"`
	Salt           string      `json:"-"`
	PasswordHash   string      `json:"-" gorm:"column:password"`
	APIToken       string      `json:"api_token"`
	Roles          StringArray `json:"roles" gorm:"type:text[]"`
	Status         string      `json:"status"`
	CreateBy       string      `json:"create_by"`
	CreateDate     time.Time   `json:"create_date"`
	EditBy         string      `json:"edit_by"`
	EditDate       time.Time   `json:"edit_date"`
}

// TableName specifies the database table name for the User model
func (u *User) TableName() string {
	return "account.user"
}

// BeforeCreate fills the generated and audit fields before insertion.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.GenerateUserID()
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	now := time.Now()
	if u.CreateDate.IsZero() {
		u.CreateDate = now
	}
	if u.EditDate.IsZero() {
		u.EditDate = now
	}
	return nil
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
