package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/scalableservices/restaurant-service/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "restaurant.sqlite", "Path to the SQLite database")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Owner{}, &models.Restaurant{}, &models.MenuItem{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	// Check if the demo owner already exists
	var existing models.Owner
	if err := db.Where("mobile_number = ?", "555-0100").First(&existing).Error; err == nil {
		fmt.Println("Demo data already seeded!")
		fmt.Printf("Owner ID: %d\n", existing.ID)
		return
	}

	owner := models.Owner{
		Name:         "Ann",
		MobileNumber: "555-0100",
		Email:        "ann@example.com",
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatal("Failed to create demo owner:", err)
	}

	restaurant := models.Restaurant{
		Name:        "Ann's Diner",
		Address:     "1 Main St",
		ContactNo:   "555-0200",
		OpeningDays: []string{"MON", "TUE", "WED", "THU", "FRI"},
		OpeningTime: "09:00",
		ClosingTime: "21:00",
		DineIn:      true,
		TakeAway:    false,
		OwnerID:     owner.ID,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		log.Fatal("Failed to create demo restaurant:", err)
	}

	menuItems := []models.MenuItem{
		{RestaurantID: restaurant.ID, ItemName: "Margherita", ItemDescription: "veg pizza", ItemPrice: 10.99, IsAvailable: true},
		{RestaurantID: restaurant.ID, ItemName: "Pepperoni", ItemDescription: "non-veg pizza", ItemPrice: 12.99, IsAvailable: true},
		{RestaurantID: restaurant.ID, ItemName: "Tiramisu", ItemDescription: "dessert", ItemPrice: 6.50, IsAvailable: true},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		log.Fatal("Failed to create demo menu:", err)
	}

	fmt.Println("✓ Demo data seeded!")
	fmt.Printf("Owner ID: %d\n", owner.ID)
	fmt.Printf("Restaurant ID: %d\n", restaurant.ID)
	fmt.Println("\nTry the API:")
	fmt.Printf("curl http://localhost:8080/restaurant/%d\n", restaurant.ID)
	fmt.Printf("curl -X PUT http://localhost:8080/restaurant/menu/%d \\\n", menuItems[0].ID)
	fmt.Printf("  -H 'X-UserType: restaurant_owner' \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"itemName\":\"Margherita\",\"itemDescription\":\"veg pizza\",\"itemPrice\":11.49,\"isAvailable\":true}'\n")
}
