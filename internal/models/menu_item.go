package models

import (
	"time"
)

// MenuItem represents a sellable item belonging to exactly one Restaurant.
// The restaurant reference is set at creation and never reassigned.
type MenuItem struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	RestaurantID    uint       `json:"restaurantId" gorm:"index;not null"`
	Restaurant      Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
	ItemName        string     `json:"itemName" gorm:"type:varchar(100);index;not null"`
	ItemDescription string     `json:"itemDescription" gorm:"type:text"`
	ItemPrice       float64    `json:"itemPrice" gorm:"type:decimal(10,2)"`
	IsAvailable     bool       `json:"isAvailable"`

	IsDeleted  bool `json:"-" gorm:"default:false"`
	IsArchived bool `json:"-" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItemRequest is the payload for menu item addition and update
type MenuItemRequest struct {
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	ItemPrice       float64 `json:"itemPrice"`
	IsAvailable     bool    `json:"isAvailable"`
}

// MenuItemResponse is the projection returned to callers
type MenuItemResponse struct {
	ID              uint    `json:"id"`
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	ItemPrice       float64 `json:"itemPrice"`
	IsAvailable     bool    `json:"isAvailable"`
}
