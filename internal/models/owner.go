package models

import (
	"time"
)

// Owner represents a restaurant owner account
type Owner struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(100);not null"`
	MobileNumber string `json:"mobileNumber" gorm:"type:varchar(20);uniqueIndex;not null"`
	Email        string `json:"email" gorm:"type:varchar(100)"`

	// Reserved lifecycle flags, never toggled by any exposed operation
	IsDeleted  bool `json:"-" gorm:"default:false"`
	IsArchived bool `json:"-" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerRequest is the payload for owner registration
type OwnerRequest struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
}

// OwnerResponse is the projection returned after owner registration
type OwnerResponse struct {
	OwnerID      uint   `json:"ownerId"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
}
