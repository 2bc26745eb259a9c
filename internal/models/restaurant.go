package models

import (
	"time"
)

// StatusActive is the only restaurant status surfaced in projections.
// The column does not exist; status is derived at response time.
const StatusActive = "ACTIVE"

// Restaurant represents a dining establishment owned by exactly one Owner
type Restaurant struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"type:varchar(100);not null"`
	Address     string   `json:"address" gorm:"type:text"`
	ContactNo   string   `json:"contactNo" gorm:"type:varchar(20);uniqueIndex;not null"`
	OpeningDays []string `json:"openingDays" gorm:"serializer:json"`
	OpeningTime string   `json:"openingTime" gorm:"type:varchar(10)"`
	ClosingTime string   `json:"closingTime" gorm:"type:varchar(10)"`
	DineIn      bool     `json:"dineIn"`
	TakeAway    bool     `json:"takeAway"`

	OwnerID uint  `json:"ownerId" gorm:"index;not null"`
	Owner   Owner `json:"-" gorm:"foreignKey:OwnerID"`

	IsDeleted  bool `json:"-" gorm:"default:false"`
	IsArchived bool `json:"-" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantRequest is the payload for restaurant registration and update.
// On update, ContactNo is validated for uniqueness but not persisted and
// OwnerID is ignored.
type RestaurantRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	ContactNo   string   `json:"contactNo"`
	OpeningDays []string `json:"openingDays"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
	DineIn      bool     `json:"dineIn"`
	TakeAway    bool     `json:"takeAway"`
	OwnerID     uint     `json:"ownerId"`
}

// RestaurantResponse is the projection returned to callers
type RestaurantResponse struct {
	RestaurantID uint   `json:"restaurantId"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactNo    string `json:"contactNo"`
	Status       string `json:"status"`
	DineIn       bool   `json:"dineIn"`
	TakeAway     bool   `json:"takeAway"`
	OwnerID      uint   `json:"ownerId,omitempty"`
}
