package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin marks users allowed to use the admin search surface.
const RoleAdmin = "admin"

// User mirrors the identity service's users table. This service only
// reads username, email and role; account lifecycle lives elsewhere.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
