package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yenrise/milcolores-api/catalog"
	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/models"
	"github.com/yenrise/milcolores-api/routes"
	"github.com/yenrise/milcolores-api/state"
	"github.com/yenrise/milcolores-api/storage"
)

func main() {
	log.Println("✅ Starting Mil Colores storefront...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.KVEntry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Application state: snapshot store + rehydrated cart and checkout context
	kv := storage.NewGormStore(db)
	app := state.New(cfg, db, kv)

	// Initial catalog load. A failure is a degraded state, not a fatal
	// one: the grid simply shows zero products until an admin reload.
	loadCatalog(app, cfg.CatalogURL)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve banner images
	r.Static("/uploads", cfg.UploadsDir)

	// Setup routes
	routes.SetupRoutes(r, app)

	// Start snapshot backup routine at 2 AM daily, keep 4 days of backups
	if cfg.DatabaseURL == "" {
		go startDailyBackupAtFixedTime(cfg.DBPath, cfg.BackupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection: Postgres when
// DATABASE_URL is set, otherwise a local SQLite file.
func initDatabase(cfg config.Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open %s: %v", cfg.DBPath, err)
	}
	return db
}

// loadCatalog runs the startup fetch and logs the outcome. Parse failures
// get the offset and excerpt printed so the broken JSON can be fixed.
func loadCatalog(app *state.App, catalogURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := app.ReloadCatalog(ctx)
	if err != nil {
		if perr, ok := err.(*catalog.ParseError); ok {
			log.Printf("❌ Catalog JSON syntax error: %v", perr.Err)
			log.Printf("   Check near byte %d: %q", perr.Offset, perr.Excerpt)
		} else {
			log.Printf("❌ Catalog load failed: %v", err)
		}
		log.Println("⚠️  Serving an empty catalog until the next reload")
		return
	}
	log.Printf("✅ Catalog loaded: %d products", count)
}

// startDailyBackupAtFixedTime copies the SQLite snapshot file daily at a
// fixed hour and removes backups older than the retention window.
func startDailyBackupAtFixedTime(dbPath, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next snapshot backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		dest := filepath.Join(backupDir, timestamp+"_"+filepath.Base(dbPath))

		if err := copyFile(dbPath, dest); err != nil {
			log.Printf("❌ Failed to back up snapshot: %v", err)
		} else {
			log.Printf("✅ Snapshot backed up to %s", dest)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file, creating the destination directory.
func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup files older than the retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
