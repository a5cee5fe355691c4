package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/darkspy3580/interface/internal"
	"github.com/darkspy3580/interface/internal/config"
	"github.com/darkspy3580/interface/landing"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := internal.NewDefaultLogger()

	table, err := config.LoadLinks(cfg.Links.File)
	if err != nil {
		log.Fatal("Failed to load link table: ", err)
	}
	cards := table.Resolve(cfg.Links.Env, logger)

	app, err := landing.NewApp(landing.Config{Cards: cards}, logger)
	if err != nil {
		log.Fatal("Failed to create landing app: ", err)
	}

	port := os.Getenv("LANDING_PORT")
	if port == "" {
		port = "8501"
	}
	log.Fatal(app.Start(":" + port))
}
