package models

import (
	"time"

	"gorm.io/gorm"
)

// ItemState is derived from the storage area and quantity, it is never stored.
type ItemState string

const (
	ItemStateUntracked ItemState = "untracked"
	ItemStateInStorage ItemState = "in_storage"
)

// Item is a tracked inventory entry. Quantity 0 keeps the row but makes it untracked.
type Item struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;not null;index" json:"user_id"`
	StorageAreaID *string   `gorm:"size:36;index" json:"storage_area_id"`
	GroupID       *string   `gorm:"size:36;index" json:"group_id"`
	ItemName      string    `gorm:"size:255;not null" json:"item_name"`
	Quantity      int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Category      string    `gorm:"size:255" json:"category"`
	ExpiryDate    *Date     `json:"expiry_date"`
	Barcode       string    `gorm:"size:255" json:"barcode"`
	DateAdded     Date      `gorm:"not null" json:"date_added"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	State         ItemState `gorm:"-" json:"state"`

	User        *User        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	StorageArea *StorageArea `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Group       *ItemGroup   `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName keeps the freezer_items name existing databases use.
func (Item) TableName() string {
	return "freezer_items"
}

// DeriveState reports in_storage iff the item sits in a storage area with a positive quantity.
func (i *Item) DeriveState() ItemState {
	if i.StorageAreaID != nil && *i.StorageAreaID != "" && i.Quantity > 0 {
		return ItemStateInStorage
	}
	return ItemStateUntracked
}

// BeforeCreate assigns the primary key and defaults date_added to today.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	newID(&i.ID)
	if i.DateAdded.IsZero() {
		i.DateAdded = Today()
	}
	return nil
}

// AfterSave refreshes the derived state.
func (i *Item) AfterSave(tx *gorm.DB) error {
	i.State = i.DeriveState()
	return nil
}

// AfterFind refreshes the derived state.
func (i *Item) AfterFind(tx *gorm.DB) error {
	i.State = i.DeriveState()
	return nil
}
