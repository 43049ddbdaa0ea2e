package helper

import (
	"log"

	"restaurant_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary builds the client used for menu item image uploads.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Failed to connect to Cloudinary: %v", err)
	}
	return cld
}
