package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// The homepage previews a configurable set of categories. The default
// mirrors the original site's front page.
var defaultFeaturedCategories = []string{"Thai", "American", "Chinese"}

const defaultUploadDir = "public/uploads"

type ENV struct {
	DBHost             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBPort             string
	Port               string
	AppAuthKey         string
	AppEncKey          string
	CSRFKey            string
	UploadDir          string
	FeaturedCategories []string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:             os.Getenv("DB_HOST"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBPort:             os.Getenv("DB_PORT"),
		Port:               os.Getenv("APP_PORT"),
		AppAuthKey:         os.Getenv("APP_AUTH_KEY"),
		AppEncKey:          os.Getenv("APP_ENC_KEY"),
		CSRFKey:            os.Getenv("APP_CSRF_KEY"),
		UploadDir:          os.Getenv("UPLOAD_DIR"),
		FeaturedCategories: parseFeaturedCategories(os.Getenv("FEATURED_CATEGORIES")),
	}

	if env.UploadDir == "" {
		env.UploadDir = defaultUploadDir
	}

	return env
}

func parseFeaturedCategories(raw string) []string {
	if raw == "" {
		return defaultFeaturedCategories
	}

	var featured []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			featured = append(featured, name)
		}
	}
	if len(featured) == 0 {
		return defaultFeaturedCategories
	}
	return featured
}

var LoadENV = LoadEnv()
