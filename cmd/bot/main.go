package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/maiden/internal/common/clock"
	"github.com/KirkDiggler/maiden/internal/common/uuid"
	"github.com/KirkDiggler/maiden/internal/dice"
	"github.com/KirkDiggler/maiden/internal/handlers/discord"
	maidenRepo "github.com/KirkDiggler/maiden/internal/repositories/maiden"
	"github.com/KirkDiggler/maiden/internal/repositories/names"
	"github.com/KirkDiggler/maiden/internal/repositories/rolllog"
	maidenService "github.com/KirkDiggler/maiden/internal/services/maiden"
)

func main() {
	// Load optional .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	gameRepo, err := maidenRepo.NewRedis(&maidenRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	namesRepo, err := names.NewRedis(&names.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create names repository: %v", err)
	}

	rollLogRepo, err := rolllog.NewFile(&rolllog.Config{
		Dir: getEnv("ROLL_LOG_DIR", "web/public/rolls"),
	})
	if err != nil {
		log.Fatalf("Failed to create roll log repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})

	// Initialize maiden service
	maidenSvc, err := maidenService.New(&maidenService.Config{
		GameRepo:      gameRepo,
		NamesRepo:     namesRepo,
		RollLogRepo:   rollLogRepo,
		DiceRoller:    diceRoller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		FastEmoji:     getEnv("FAST_EMOJI", maidenService.DefaultFastEmoji),
	})
	if err != nil {
		log.Fatalf("Failed to create maiden service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Get optional channel restriction
	channelID := getEnv("CHANNEL_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: applicationID,
		GuildID:       guildID,
		ChannelID:     channelID,
		MaidenService: maidenSvc,
		NamesRepo:     namesRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
