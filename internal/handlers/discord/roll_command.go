package discord

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/maiden/internal/repositories/names"
	"github.com/KirkDiggler/maiden/internal/services/maiden"
	"github.com/bwmarrin/discordgo"
)

// RollCommand handles the /roll command
type RollCommand struct {
	BaseCommand
	maidenService maiden.Service
	namesRepo     names.Repository
}

// NewRollCommand creates a new roll command handler
func NewRollCommand(maidenService maiden.Service, namesRepo names.Repository) *RollCommand {
	return &RollCommand{
		BaseCommand: BaseCommand{
			Name:        "roll",
			Description: "Roll the dice!",
		},
		maidenService: maidenService,
		namesRepo:     namesRepo,
	}
}

// Handle processes the roll command
func (c *RollCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	arena := arenaForInteraction(i)

	if i.Member == nil || i.Member.User == nil {
		return RespondWithEphemeralMessage(s, i, "Sorry, I can only roll inside a server.")
	}
	playerID := i.Member.User.ID

	// Keep the name directory fresh. A stale or missing name never blocks
	// the roll itself.
	displayName := displayNameForInteraction(i)
	if displayName != "" {
		err := c.namesRepo.SetName(ctx, &names.SetNameInput{
			Arena:    arena,
			PlayerID: playerID,
			Name:     displayName,
		})
		if err != nil {
			log.Printf("Failed to store display name for %s: %v", playerID, err)
		}
	}

	output, err := c.maidenService.Roll(ctx, &maiden.RollInput{
		Arena:       arena,
		PlayerID:    playerID,
		DisplayName: displayName,
	})
	if err != nil {
		if errors.Is(err, maiden.ErrConsecutiveTurn) {
			return RespondWithEphemeralMessage(s, i, "The dice are hot!")
		}

		log.Printf("Error rolling for player %s: %v", playerID, err)
		return RespondWithEphemeralMessage(s, i, "Sorry, the dice slipped under the table. Try again.")
	}

	return RespondWithMessage(s, i, renderRollOutcome(output))
}
