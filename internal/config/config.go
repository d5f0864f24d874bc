package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	Locale   string
}

func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "epicbyte.db"
	} // sqlite file in project root
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	locale := os.Getenv("DEFAULT_LOCALE")
	if locale == "" {
		locale = "en"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, Locale: locale}
	logrus.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"db_dsn":    cfg.DBDSN,
		"media_dir": cfg.MediaDir,
		"locale":    cfg.Locale,
	}).Info("config loaded")
	return cfg
}
