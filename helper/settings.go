package helper

import (
	"errors"
	"fmt"
	"math/rand"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// GetSetting reads a shop_settings value straight from the store. No caching:
// every consumer sees the latest value at time of use, so a rotated
// verification PIN takes effect immediately for checkouts still in flight.
func GetSetting(key string) (string, error) {
	var setting model.ShopSetting
	if err := database.DB.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", constants.ErrNotFound
		}
		return "", err
	}
	return setting.Value, nil
}

func SetSetting(key, value string) error {
	result := database.DB.Model(&model.ShopSetting{}).
		Where("key = ?", key).
		Update("value", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return constants.ErrNotFound
	}
	return nil
}

// GenerateVerificationPin returns a fresh random 4-digit PIN.
func GenerateVerificationPin() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}
