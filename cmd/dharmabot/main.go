package main

import (
	"log"

	"github.com/ub-intelligence/dharmabot/auth"
	"github.com/ub-intelligence/dharmabot/config"
	"github.com/ub-intelligence/dharmabot/drafting"
	"github.com/ub-intelligence/dharmabot/lawyers"
	"github.com/ub-intelligence/dharmabot/models/gemini"
	"github.com/ub-intelligence/dharmabot/research"
	"github.com/ub-intelligence/dharmabot/server"
	"github.com/ub-intelligence/dharmabot/sessions"
	"github.com/ub-intelligence/dharmabot/stores"
	"github.com/ub-intelligence/dharmabot/voicenotes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := stores.NewStore(cfg.StoreConfig())
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	client := gemini.NewClient(cfg.GeminiAPIKey)
	client.Model = cfg.GeminiModel

	chat := sessions.NewController(stores.NewSessionRepository(store), client)

	sweeper := sessions.NewRetentionSweeper(chat, cfg.MaxChatSessions, cfg.RetentionSchedule)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start retention sweeper: %v", err)
	}
	defer sweeper.Stop()

	srv := server.NewServer(
		chat,
		auth.NewService(stores.NewUserStore(store)),
		research.NewService(client, stores.NewResearchStore(store)),
		drafting.NewService(client),
		voicenotes.NewService(voicenotes.NewGenAITranscriber(), client, stores.NewVoiceNoteStore(store)),
		lawyers.NewDirectory(),
		stores.NewPreferenceStore(store),
	)

	log.Printf("Dharmabot listening on :%d", cfg.Port)
	if err := srv.Run(cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
