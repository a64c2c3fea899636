package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/maiden/internal/services/maiden"
	"github.com/bwmarrin/discordgo"
)

// HighScoreCommand handles the /highscore command
type HighScoreCommand struct {
	BaseCommand
	maidenService maiden.Service
}

// NewHighScoreCommand creates a new highscore command handler
func NewHighScoreCommand(maidenService maiden.Service) *HighScoreCommand {
	return &HighScoreCommand{
		BaseCommand: BaseCommand{
			Name:        "highscore",
			Description: "Show the xd100 rolling record.",
		},
		maidenService: maidenService,
	}
}

// Handle processes the highscore command
func (c *HighScoreCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.maidenService.GetHighScore(ctx, &maiden.GetHighScoreInput{
		Arena: arenaForInteraction(i),
	})
	if err != nil {
		log.Printf("Error fetching high scores: %v", err)
		return RespondWithEphemeralMessage(s, i, "Sorry, the record board is unreadable right now.")
	}

	return RespondWithMessage(s, i, renderHighScore(output))
}
