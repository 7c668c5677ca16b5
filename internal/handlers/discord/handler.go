package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wcg-tools/osf-chargen/internal/handlers/discord/chargen"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
)

// Handler handles all Discord interactions
type Handler struct {
	chargenHandler *chargen.Handler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ChargenService chargenService.Service
	ChargenConfig  *chargen.HandlerConfig
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	chargenCfg := cfg.ChargenConfig
	if chargenCfg == nil {
		chargenCfg = &chargen.HandlerConfig{}
	}
	if chargenCfg.Service == nil {
		chargenCfg.Service = cfg.ChargenService
	}

	return &Handler{
		chargenHandler: chargen.NewHandler(chargenCfg),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		chargen.Command(),
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		h.handleModalSubmit(s, i)
	}
}

func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != chargen.CommandName {
		return
	}

	if err := h.chargenHandler.HandleCommand(s, i); err != nil {
		log.Printf("Error handling /%s command: %v", data.Name, err)
	}
}

func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if !ownsCustomID(customID) {
		return
	}

	if err := h.chargenHandler.HandleComponent(s, i); err != nil {
		log.Printf("Error handling component %s: %v", customID, err)
	}
}

func (h *Handler) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID
	if !ownsCustomID(customID) {
		return
	}

	if err := h.chargenHandler.HandleModalSubmit(s, i); err != nil {
		log.Printf("Error handling modal %s: %v", customID, err)
	}
}

func ownsCustomID(customID string) bool {
	return strings.HasPrefix(customID, chargen.CustomIDPrefix+":")
}
