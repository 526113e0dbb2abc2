package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Alias    string    `gorm:"unique;not null" json:"alias"`
	ParentID *uint     `json:"parent_id"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}
