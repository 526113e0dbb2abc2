package models

import "time"

type UserStatus string

const (
	UserStatusPending UserStatus = "PENDING" // registered, not yet activated
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string     `gorm:"not null" json:"first_name"`
	LastName    string     `gorm:"not null" json:"last_name"`
	Email       string     `gorm:"unique;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	BirthDate   time.Time  `json:"birth_date"`
	Status      UserStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Roles       []Role     `gorm:"many2many:user_roles" json:"roles,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
