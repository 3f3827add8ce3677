package models

import (
	"time"

	"gorm.io/gorm"
)

// StorageArea is a physical place items live in (freezer, pantry shelf).
type StorageArea struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns the primary key.
func (s *StorageArea) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// StorageAreaGroup associates a group with a storage area. The pair is the key.
type StorageAreaGroup struct {
	StorageAreaID string `gorm:"primaryKey;size:36" json:"storage_area_id"`
	GroupID       string `gorm:"primaryKey;size:36;index" json:"group_id"`

	StorageArea *StorageArea `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Group       *ItemGroup   `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the join table name stable.
func (StorageAreaGroup) TableName() string {
	return "storage_area_groups"
}
