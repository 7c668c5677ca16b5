package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wcg-tools/osf-chargen/internal/auth"
	chargenClient "github.com/wcg-tools/osf-chargen/internal/clients/chargen"
	"github.com/wcg-tools/osf-chargen/internal/config"
	"github.com/wcg-tools/osf-chargen/internal/handlers/discord"
	chargenHandler "github.com/wcg-tools/osf-chargen/internal/handlers/discord/chargen"
	"github.com/wcg-tools/osf-chargen/internal/repositories/wizard_sessions"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
	"github.com/wcg-tools/osf-chargen/internal/sheets"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	client, err := chargenClient.New(&chargenClient.Config{
		BaseURL: cfg.Chargen.BaseURL,
		HTTPClient: &http.Client{
			Timeout: cfg.Chargen.RequestTimeout,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create chargen client: %v", err)
	}

	repo, redisClient := sessionRepository(cfg.Redis)

	var tokens auth.TokenSource
	if cfg.Google.AccessToken != "" {
		tokens = auth.NewStaticTokenSource(cfg.Google.AccessToken)
	} else {
		log.Println("No GOOGLE_ACCESS_TOKEN set, Google Sheets delivery is disabled")
	}

	service := chargenService.NewService(&chargenService.ServiceConfig{
		Repository:     repo,
		Client:         client,
		Tokens:         tokens,
		PDFSaver:       sheets.NewPDFSaver(cfg.Sheets.PDFDir),
		XLSXExporter:   sheets.NewXLSXExporter(cfg.Sheets.XLSXDir),
		CatalogTimeout: cfg.Chargen.CatalogTimeout,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		ChargenService: service,
		ChargenConfig: &chargenHandler.HandlerConfig{
			CatalogWait: cfg.Chargen.CatalogWait,
		},
	})

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
}

// sessionRepository uses Redis when it is configured and reachable, otherwise memory
func sessionRepository(cfg config.RedisConfig) (wizard_sessions.Repository, *redis.Client) {
	if cfg.URL == "" {
		log.Println("No REDIS_URL found, using in-memory wizard sessions")
		return wizard_sessions.NewInMemoryRepository(nil), nil
	}

	log.Println("Connecting to Redis")
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory wizard sessions")
		return wizard_sessions.NewInMemoryRepository(nil), nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory wizard sessions")
		_ = client.Close()
		return wizard_sessions.NewInMemoryRepository(nil), nil
	}

	log.Println("Using Redis for wizard sessions")
	return wizard_sessions.NewRedisRepository(&wizard_sessions.RedisRepoConfig{
		Client: client,
		TTL:    cfg.SessionTTL,
	}), client
}
