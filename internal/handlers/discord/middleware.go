package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())
				respondWithError(s, i, "An unexpected error occurred. Your choices so far are saved.")
			}
		}()

		handler(s, i)
	}
}

// respondWithError tries each way of reaching the user until one works,
// since the interaction may or may not have been acknowledged already
func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	responses := []func() error{
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("❌ %s", message),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: fmt.Sprintf("❌ %s", message),
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	log.Printf("Failed to send error response to user: %s", message)
}
