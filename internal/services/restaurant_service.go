package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scalableservices/restaurant-service/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides the registration, update and menu operations
// around the restaurant data model. Uniqueness rules are checked before
// every write and backed by unique indexes, so a check-then-write race
// between two concurrent registrations still yields at most one row.
type RestaurantService interface {
	// RegisterOwner registers a new restaurant owner, failing with Conflict
	// when the mobile number is already on file
	RegisterOwner(req models.OwnerRequest) (*models.OwnerResponse, error)
	// RegisterRestaurant registers a new restaurant under an existing owner
	RegisterRestaurant(req models.RestaurantRequest) (*models.RestaurantResponse, error)
	// UpdateRestaurant replaces the mutable fields of an existing restaurant.
	// The submitted contact number is validated against other restaurants but
	// is not persisted; the response echoes the stored value.
	UpdateRestaurant(restaurantID uint, req models.RestaurantRequest) (*models.RestaurantResponse, error)
	// AddMenuItems atomically attaches a batch of menu items to a restaurant,
	// preserving submission order in the returned projections
	AddMenuItems(restaurantID uint, items []models.MenuItemRequest) ([]models.MenuItemResponse, error)
	// UpdateMenuItem replaces all mutable fields of an existing menu item
	UpdateMenuItem(itemID uint, req models.MenuItemRequest) (*models.MenuItemResponse, error)
	// SearchMenus returns menu items whose name matches query, optionally
	// filtered to those whose description contains itemType
	SearchMenus(query string, itemType string) ([]models.MenuItem, error)
	// GetRestaurantByID retrieves a restaurant by its primary key
	GetRestaurantByID(restaurantID uint) (*models.Restaurant, error)
	// GetAllRestaurants retrieves every registered restaurant
	GetAllRestaurants() ([]models.Restaurant, error)
	// IsRestaurantOwner reports whether ownerID owns restaurantID
	IsRestaurantOwner(ownerID, restaurantID uint) (bool, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) RegisterOwner(req models.OwnerRequest) (*models.OwnerResponse, error) {
	var existing models.Owner
	err := s.db.Where("mobile_number = ?", req.MobileNumber).First(&existing).Error
	if err == nil {
		return nil, models.NewConflict(fmt.Sprintf("restaurant owner with mobile number %s already exists", req.MobileNumber))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	owner := models.Owner{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
	}
	if err := s.db.Create(&owner).Error; err != nil {
		// The unique index catches the race the lookup above cannot
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict(fmt.Sprintf("restaurant owner with mobile number %s already exists", req.MobileNumber))
		}
		return nil, err
	}

	return &models.OwnerResponse{
		OwnerID:      owner.ID,
		Name:         owner.Name,
		MobileNumber: owner.MobileNumber,
		Email:        owner.Email,
	}, nil
}

func (s *restaurantService) RegisterRestaurant(req models.RestaurantRequest) (*models.RestaurantResponse, error) {
	var existing models.Restaurant
	err := s.db.Where("contact_no = ?", req.ContactNo).First(&existing).Error
	if err == nil {
		return nil, models.NewBadRequest(fmt.Sprintf("restaurant with contact number %s already exists", req.ContactNo))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var owner models.Owner
	if err := s.db.First(&owner, req.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(fmt.Sprintf("owner with ID %d not found", req.OwnerID))
		}
		return nil, err
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		ContactNo:   req.ContactNo,
		OpeningDays: req.OpeningDays,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		DineIn:      req.DineIn,
		TakeAway:    req.TakeAway,
		OwnerID:     owner.ID,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewBadRequest(fmt.Sprintf("restaurant with contact number %s already exists", req.ContactNo))
		}
		return nil, err
	}

	return restaurantProjection(&restaurant, owner.ID), nil
}

func (s *restaurantService) UpdateRestaurant(restaurantID uint, req models.RestaurantRequest) (*models.RestaurantResponse, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("restaurant not found")
		}
		return nil, err
	}

	// Reject a contact number already held by a different restaurant even
	// though this operation never persists the submitted number
	var duplicate models.Restaurant
	err := s.db.Where("contact_no = ? AND id <> ?", req.ContactNo, restaurantID).First(&duplicate).Error
	if err == nil {
		return nil, models.NewBadRequest(fmt.Sprintf("restaurant with contact number %s already exists", req.ContactNo))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.OpeningDays = req.OpeningDays
	restaurant.OpeningTime = req.OpeningTime
	restaurant.ClosingTime = req.ClosingTime
	restaurant.DineIn = req.DineIn
	restaurant.TakeAway = req.TakeAway

	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, err
	}

	return restaurantProjection(&restaurant, 0), nil
}

func (s *restaurantService) AddMenuItems(restaurantID uint, items []models.MenuItemRequest) ([]models.MenuItemResponse, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(fmt.Sprintf("restaurant with ID %d not found", restaurantID))
		}
		return nil, err
	}

	if len(items) == 0 {
		return []models.MenuItemResponse{}, nil
	}

	menuItems := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		menuItems = append(menuItems, models.MenuItem{
			RestaurantID:    restaurant.ID,
			ItemName:        item.ItemName,
			ItemDescription: item.ItemDescription,
			ItemPrice:       item.ItemPrice,
			IsAvailable:     item.IsAvailable,
		})
	}

	// Single batch insert so a partial menu is never persisted
	if err := s.db.Create(&menuItems).Error; err != nil {
		return nil, err
	}

	response := make([]models.MenuItemResponse, 0, len(menuItems))
	for _, item := range menuItems {
		response = append(response, models.MenuItemResponse{
			ID:              item.ID,
			ItemName:        item.ItemName,
			ItemDescription: item.ItemDescription,
			ItemPrice:       item.ItemPrice,
			IsAvailable:     item.IsAvailable,
		})
	}
	return response, nil
}

func (s *restaurantService) UpdateMenuItem(itemID uint, req models.MenuItemRequest) (*models.MenuItemResponse, error) {
	var item models.MenuItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(fmt.Sprintf("menu item with ID %d not found", itemID))
		}
		return nil, err
	}

	item.ItemName = req.ItemName
	item.ItemDescription = req.ItemDescription
	item.ItemPrice = req.ItemPrice
	item.IsAvailable = req.IsAvailable

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}

	return &models.MenuItemResponse{
		ID:              item.ID,
		ItemName:        item.ItemName,
		ItemDescription: item.ItemDescription,
		ItemPrice:       item.ItemPrice,
		IsAvailable:     item.IsAvailable,
	}, nil
}

func (s *restaurantService) SearchMenus(query string, itemType string) ([]models.MenuItem, error) {
	var menus []models.MenuItem
	if err := s.db.Where("item_name = ?", query).Find(&menus).Error; err != nil {
		return nil, err
	}

	if itemType == "" {
		return menus, nil
	}

	// Case-sensitive substring containment on the description
	filtered := make([]models.MenuItem, 0, len(menus))
	for _, menu := range menus {
		if strings.Contains(menu.ItemDescription, itemType) {
			filtered = append(filtered, menu)
		}
	}
	return filtered, nil
}

func (s *restaurantService) GetRestaurantByID(restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound(fmt.Sprintf("restaurant with ID %d not found", restaurantID))
		}
		return nil, err
	}
	return &restaurant, nil
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) IsRestaurantOwner(ownerID, restaurantID uint) (bool, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFound(fmt.Sprintf("restaurant with ID %d not found", restaurantID))
		}
		return false, err
	}
	return restaurant.OwnerID == ownerID, nil
}

// restaurantProjection builds the caller-facing restaurant view. Status is
// always ACTIVE; ownerID is omitted from update responses when zero.
func restaurantProjection(restaurant *models.Restaurant, ownerID uint) *models.RestaurantResponse {
	return &models.RestaurantResponse{
		RestaurantID: restaurant.ID,
		Name:         restaurant.Name,
		Address:      restaurant.Address,
		ContactNo:    restaurant.ContactNo,
		Status:       models.StatusActive,
		DineIn:       restaurant.DineIn,
		TakeAway:     restaurant.TakeAway,
		OwnerID:      ownerID,
	}
}
