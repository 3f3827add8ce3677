package models

import (
	"time"

	"gorm.io/gorm"
)

// ItemGroup is a user-defined category of items, e.g. "Vegetables".
type ItemGroup struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	GroupName   string    `gorm:"size:255;not null" json:"group_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table name stable across naming strategies.
func (ItemGroup) TableName() string {
	return "item_groups"
}

// BeforeCreate assigns the primary key.
func (g *ItemGroup) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}
