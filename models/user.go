package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account that owns exactly one word store.
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null;size:100" json:"username"`
	PublicID     string `gorm:"size:100;uniqueIndex" json:"public_id"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:user" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PublicID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		u.PublicID = id
	}
	return nil
}

// IsAdmin is the single policy hook gating administrative operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
