package database

import (
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData provisions the two shop_settings rows and a starter menu.
// Everything is FirstOrCreate so restarts never clobber rotated PINs or
// edited items.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("4242"), 10)
	if err != nil {
		log.Println("failed to hash default admin pin:", err)
		return
	}
	adminHash := string(bytes)

	settings := []model.ShopSetting{
		{Key: constants.SETTING_ADMIN_PIN, Value: adminHash},
		{Key: constants.SETTING_VERIFICATION_PIN, Value: "4821"},
	}
	for _, setting := range settings {
		if err := db.Where(model.ShopSetting{Key: setting.Key}).FirstOrCreate(&setting).Error; err != nil {
			log.Println("failed to seed setting:", setting.Key, "error:", err)
		}
	}

	items := []model.MenuItem{
		{Name: "Classic Burger", Description: "Beef patty, cheddar, house sauce", Price: 5.00, Category: "Burgers", IsAvailable: true},
		{Name: "Veggie Burger", Description: "Grilled halloumi and roast peppers", Price: 4.50, Category: "Burgers", IsAvailable: true},
		{Name: "Masala Fries", Description: "Fries tossed in masala spice", Price: 2.50, Category: "Sides", IsAvailable: true},
		{Name: "Mango Lassi", Description: "Fresh mango, yoghurt", Price: 3.00, Category: "Drinks", IsAvailable: true},
		{Name: "Filter Coffee", Description: "South Indian style", Price: 2.00, Category: "Drinks", IsAvailable: true},
	}
	for _, item := range items {
		if err := db.Where(model.MenuItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}
}
