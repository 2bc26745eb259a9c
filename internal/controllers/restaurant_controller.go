package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scalableservices/restaurant-service/internal/middleware"
	"github.com/scalableservices/restaurant-service/internal/models"
	"github.com/scalableservices/restaurant-service/internal/services"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests for owners, restaurants and menus
type RestaurantController interface {
	// RegisterOwner registers a new restaurant owner
	RegisterOwner(c *gin.Context)
	// RegisterRestaurant registers a new restaurant under an owner
	RegisterRestaurant(c *gin.Context)
	// UpdateRestaurant updates an existing restaurant
	UpdateRestaurant(c *gin.Context)
	// AddMenuItems attaches a batch of menu items to a restaurant
	AddMenuItems(c *gin.Context)
	// UpdateMenuItem updates an existing menu item
	UpdateMenuItem(c *gin.Context)
	// SearchMenus searches menu items by name with an optional type filter
	SearchMenus(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(c *gin.Context)
	// GetAllRestaurants retrieves all registered restaurants
	GetAllRestaurants(c *gin.Context)
}

type controller struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *controller {
	return &controller{service: service}
}

// RegisterOwner godoc
// @Summary Register a restaurant owner
// @Description Register a new restaurant owner with a unique mobile number
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body models.OwnerRequest true "Owner registration payload"
// @Success 200 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /restaurant/owner/register [post]
func (c *controller) RegisterOwner(ctx *gin.Context) {
	var req models.OwnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := c.service.RegisterOwner(req)
	if err != nil {
		respondError(ctx, "error while registering restaurant owner", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(response))
}

// RegisterRestaurant godoc
// @Summary Register a restaurant
// @Description Register a new restaurant under an existing owner
// @Tags restaurants
// @Accept json
// @Produce json
// @Param X-UserType header string true "Role marker, must be restaurant_owner"
// @Param restaurant body models.RestaurantRequest true "Restaurant registration payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /restaurant/register [post]
func (c *controller) RegisterRestaurant(ctx *gin.Context) {
	var req models.RestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := c.service.RegisterRestaurant(req)
	if err != nil {
		respondError(ctx, "error while registering restaurant", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(response))
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Replace the mutable fields of an existing restaurant. When the
// @Description X-UserId header is present the caller must own the restaurant.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Param X-UserType header string true "Role marker, must be restaurant_owner"
// @Param X-UserId header int false "Owner ID for ownership verification"
// @Param restaurant body models.RestaurantRequest true "Restaurant update payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /restaurant/{restaurantId}/update-restaurant [put]
func (c *controller) UpdateRestaurant(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, "restaurantId")
	if !ok {
		return
	}

	var req models.RestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid request body"))
		return
	}

	// Ownership is only enforced when the caller identifies itself
	if userID := ctx.GetHeader(middleware.UserIDHeader); userID != "" {
		ownerID, err := strconv.ParseUint(userID, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid "+middleware.UserIDHeader+" header"))
			return
		}
		isOwner, err := c.service.IsRestaurantOwner(uint(ownerID), restaurantID)
		if err != nil {
			respondError(ctx, "error while verifying restaurant ownership", err)
			return
		}
		if !isOwner {
			ctx.JSON(http.StatusUnauthorized, models.Failed(models.ErrUnauthorized,
				"caller does not own this restaurant"))
			return
		}
	}

	response, err := c.service.UpdateRestaurant(restaurantID, req)
	if err != nil {
		respondError(ctx, "error while updating restaurant", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(response))
}

// AddMenuItems godoc
// @Summary Add menu items
// @Description Atomically attach a batch of menu items to an existing restaurant
// @Tags menus
// @Accept json
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Param X-UserType header string true "Role marker, must be restaurant_owner"
// @Param items body []models.MenuItemRequest true "Menu items"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /restaurant/{restaurantId}/menu [post]
func (c *controller) AddMenuItems(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, "restaurantId")
	if !ok {
		return
	}

	var items []models.MenuItemRequest
	if err := ctx.ShouldBindJSON(&items); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := c.service.AddMenuItems(restaurantID, items)
	if err != nil {
		respondError(ctx, "menu item addition failed", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(response))
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Replace all mutable fields of an existing menu item
// @Tags menus
// @Accept json
// @Produce json
// @Param itemId path int true "Menu item ID"
// @Param X-UserType header string true "Role marker, must be restaurant_owner"
// @Param item body models.MenuItemRequest true "Menu item payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /restaurant/menu/{itemId} [put]
func (c *controller) UpdateMenuItem(ctx *gin.Context) {
	itemID, ok := pathID(ctx, "itemId")
	if !ok {
		return
	}

	var req models.MenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid request body"))
		return
	}

	response, err := c.service.UpdateMenuItem(itemID, req)
	if err != nil {
		respondError(ctx, "menu item update failed", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(response))
}

// SearchMenus godoc
// @Summary Search menu items
// @Description Search menu items by exact name with an optional description filter
// @Tags menus
// @Accept json
// @Produce json
// @Param query query string true "Item name to match"
// @Param type query string false "Substring the description must contain"
// @Success 200 {object} models.APIResponse
// @Router /restaurant/menu/search [get]
func (c *controller) SearchMenus(ctx *gin.Context) {
	query := ctx.Query("query")
	itemType := ctx.Query("type")

	menus, err := c.service.SearchMenus(query, itemType)
	if err != nil {
		respondError(ctx, "menu search failed", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(menus))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Retrieve a single restaurant by its ID
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurantId path int true "Restaurant ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /restaurant/{restaurantId} [get]
func (c *controller) GetRestaurantByID(ctx *gin.Context) {
	restaurantID, ok := pathID(ctx, "restaurantId")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(restaurantID)
	if err != nil {
		respondError(ctx, "error while fetching restaurant", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(restaurant))
}

// GetAllRestaurants godoc
// @Summary List restaurants
// @Description Retrieve all registered restaurants
// @Tags restaurants
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /restaurant/all [get]
func (c *controller) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondError(ctx, "error while fetching restaurants", err)
		return
	}
	ctx.JSON(http.StatusOK, models.Success(restaurants))
}

// pathID parses a numeric path parameter, writing a BadRequest envelope on failure
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw, exists := ctx.Params.Get(name)
	if !exists {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "missing "+name+" path parameter"))
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.Failed(models.ErrBadRequest, "invalid "+name+" format"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error into the failure envelope. Domain errors
// keep their message; anything else is logged and rewritten to a generic
// internal error, with the raw message surfaced only in the description.
func respondError(ctx *gin.Context, operation string, err error) {
	if svcErr, ok := models.AsServiceError(err); ok {
		ctx.JSON(svcErr.Status, models.Failed(codeForStatus(svcErr.Status), svcErr.Message))
		return
	}

	log.WithError(err).Error(operation)
	ctx.JSON(http.StatusInternalServerError, models.Failed(models.ErrInternalServer, err.Error()))
}

// codeForStatus maps an HTTP status to its envelope error label
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return models.ErrBadRequest
	case http.StatusUnauthorized:
		return models.ErrUnauthorized
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrConflict
	default:
		return models.ErrInternalServer
	}
}
