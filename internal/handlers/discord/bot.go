package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/maiden/internal/repositories/names"
	"github.com/KirkDiggler/maiden/internal/services/maiden"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Optional channel restriction: when set, commands only work there
	ChannelID string

	// Maiden service
	MaidenService maiden.Service

	// Names repository, so commands can keep display names fresh
	NamesRepo names.Repository
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MaidenService == nil {
		return nil, errors.New("maiden service cannot be nil")
	}

	if cfg.NamesRepo == nil {
		return nil, errors.New("names repository cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the roll command
	rollCmd := NewRollCommand(b.config.MaidenService, b.config.NamesRepo)
	if err := b.RegisterCommand(rollCmd); err != nil {
		return fmt.Errorf("failed to register roll command: %w", err)
	}

	// Register the highscore command
	highscoreCmd := NewHighScoreCommand(b.config.MaidenService)
	if err := b.RegisterCommand(highscoreCmd); err != nil {
		return fmt.Errorf("failed to register highscore command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Optionally restrict the game to a single channel
	if b.config.ChannelID != "" && b.config.ChannelID != i.ChannelID {
		if err := RespondWithEphemeralMessage(s, i, "Wrong channel, sorry!"); err != nil {
			log.Printf("Error responding to wrong-channel interaction: %v", err)
		}
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
		}
	}
}

// arenaForInteraction scopes all game state to the guild the command came from
func arenaForInteraction(i *discordgo.InteractionCreate) string {
	return "arena:" + i.GuildID
}

// displayNameForInteraction prefers the member's nickname over their username
func displayNameForInteraction(i *discordgo.InteractionCreate) string {
	if i.Member == nil || i.Member.User == nil {
		return ""
	}
	if i.Member.Nick != "" {
		return i.Member.Nick
	}
	return i.Member.User.Username
}
