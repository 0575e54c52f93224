package main

import (
	"fmt"

	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/handler"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/server"
	"github.com/dkurbatov/lifehub/internal/service"
	"github.com/dkurbatov/lifehub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lifehub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	entities := store.NewStore(store.SeedConfig{
		DemoOpenID: cfg.App.DemoOpenID,
		DemoName:   "Demo User",
		DemoEmail:  "demo@example.com",
	}, log)

	llm, err := adapter.NewLLMClient(cfg.Assistant, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating assistant client")
	}
	transcriber, err := adapter.NewTranscriptionClient(cfg.Voice, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating transcription client")
	}
	blobs, err := adapter.NewBlobClient(cfg.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob storage client")
	}

	services := service.NewServices(entities, service.Adapters{
		LLM:         llm,
		Transcriber: transcriber,
		Blobs:       blobs,
	}, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
