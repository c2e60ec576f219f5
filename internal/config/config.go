package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	RedisURL            string
	IdentityBaseURL     string // identity-provider REST endpoint (Firebase-style)
	IdentityAPIKey      string
	IdentityProjectID   string
	StorageCloudName    string // object-storage/CDN account (Cloudinary-style)
	StorageAPIKey       string
	StorageAPISecret    string
	StorageFolder       string
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "3000"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL")
	if env == "test" {
		if u := viper.GetString("DATABASE_URL_TEST"); u != "" {
			dbURL = u
		}
	}

	folder := viper.GetString("STORAGE_FOLDER")
	if folder == "" {
		folder = "ReGive_Donations"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		IdentityBaseURL:     viper.GetString("IDENTITY_BASE_URL"),
		IdentityAPIKey:      viper.GetString("IDENTITY_API_KEY"),
		IdentityProjectID:   viper.GetString("IDENTITY_PROJECT_ID"),
		StorageCloudName:    viper.GetString("STORAGE_CLOUD_NAME"),
		StorageAPIKey:       viper.GetString("STORAGE_API_KEY"),
		StorageAPISecret:    viper.GetString("STORAGE_API_SECRET"),
		StorageFolder:       folder,
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
	}, nil
}
