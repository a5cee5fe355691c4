package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/darkspy3580/interface/adapters/forest"
	"github.com/darkspy3580/interface/domain/classify"
	"github.com/darkspy3580/interface/internal"
	"github.com/darkspy3580/interface/internal/config"
	"github.com/darkspy3580/interface/internal/pipeline"
	"github.com/darkspy3580/interface/ui"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := internal.NewDefaultLogger()

	// The model artifact is optional at startup: without it the analyzer
	// still serves mobility analysis and refuses only classification.
	var model *forest.Forest
	loaded, err := forest.Load(cfg.Model.Path)
	if err != nil {
		logger.Warn("model artifact not loaded (%v); ARG classification disabled", err)
	} else {
		model = loaded
		logger.Info("model artifact loaded from %s (%d trees)", cfg.Model.Path, len(model.Trees))
	}

	classifier := newClassifier(model)
	orchestrator := pipeline.NewOrchestrator(classifier, logger)

	server, err := ui.NewServer(ui.Config{GinMode: cfg.Server.GinMode}, orchestrator, logger)
	if err != nil {
		log.Fatal("Failed to create analyzer server: ", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return server.Start(":" + cfg.Server.Port)
	})
	if cfg.Profiling.Enabled {
		g.Go(func() error {
			logger.Info("pprof listening on :%s", cfg.Profiling.Port)
			return http.ListenAndServe(":"+cfg.Profiling.Port, nil)
		})
	}
	log.Fatal(g.Wait())
}

// newClassifier avoids handing a typed-nil model to the classifier
func newClassifier(model *forest.Forest) *classify.Classifier {
	if model == nil {
		return classify.NewClassifier(nil)
	}
	return classify.NewClassifier(model)
}
