// Package models defines server-side data models persisted in the database
// and the public projections returned to API callers.
package models

import "time"

// User is a credential record. It is looked up by ID or Email only.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;size:255;not null"`
	Name         string `gorm:"size:120;not null"`
	IsActive     bool   `gorm:"not null"`
	BaseID       int64  `gorm:"column:id_base;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the table name the schema has always used.
func (User) TableName() string { return "ari_users" }

// UserResponse is the public projection of a User. It never carries the
// password hash.
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"alice@prisma.io"`
	Name      string    `json:"name" example:"Alice"`
	IsActive  bool      `json:"isActive" example:"true"`
	BaseID    int64     `json:"idBase" example:"1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the projection of u that is safe to send to clients.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		BaseID:    u.BaseID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserPatch carries the mutable fields of a user; nil means unchanged.
type UserPatch struct {
	Name     *string
	IsActive *bool
	Password *string
}
