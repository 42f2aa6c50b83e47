package config

import "os"

type Config struct {
	Port        string
	DatabaseURL string
	DBPath      string

	CatalogURL    string
	WhatsAppPhone string
	StoreURL      string

	UploadsDir string
	BackupDir  string

	AdminAPIKey string
}

// Load reads the environment into a Config. godotenv has already been
// applied by main, so plain os.Getenv is enough here.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBPath:        getEnv("DB_PATH", "milcolores.db"),
		CatalogURL:    getEnv("CATALOG_URL", "data/productos.json"),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "593998469884"),
		StoreURL:      getEnv("STORE_URL", "https://milcolores.ec"),
		UploadsDir:    getEnv("UPLOADS_DIR", "uploads"),
		BackupDir:     getEnv("BACKUP_DIR", "backup"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
