package chargen

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	chargenService "github.com/wcg-tools/osf-chargen/internal/services/chargen"
)

// CommandName is the slash command that starts the wizard
const CommandName = "chargen"

// DefaultCatalogWait is how long an interaction waits for a catalog before
// rendering the loading state
const DefaultCatalogWait = 2 * time.Second

// Handler serves the character creation wizard over Discord interactions
type Handler struct {
	service     chargenService.Service
	catalogWait time.Duration
}

// HandlerConfig holds configuration for the wizard handler
type HandlerConfig struct {
	Service     chargenService.Service
	CatalogWait time.Duration
}

// NewHandler creates a new wizard handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.Service == nil {
		panic("chargen service is required")
	}
	wait := cfg.CatalogWait
	if wait == 0 {
		wait = DefaultCatalogWait
	}
	return &Handler{
		service:     cfg.Service,
		catalogWait: wait,
	}
}

// Command describes /chargen
func Command() *discordgo.ApplicationCommand {
	minLevel, maxLevel := 0.0, float64(character.MaxLevel)
	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Create an Old School Fantasy character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "mode",
				Description: "Zero-level commoner or traditional class character",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Zero-level", Value: string(character.ModeZero)},
					{Name: "Traditional", Value: string(character.ModeTraditional)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Character level (1-7 for traditional)",
				MinValue:    &minLevel,
				MaxValue:    maxLevel,
			},
		},
	}
}

// HandleCommand starts a new wizard for the user
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	mode := character.Mode(GetStringOption(i, "mode"))
	level := int(GetIntOption(i, "level"))
	if mode == character.ModeTraditional && GetCommandOption(i, "level") == nil {
		level = character.MinTraditionalLevel
	}

	state, err := h.service.Start(context.Background(), InteractionUserID(i), mode, level)
	if err != nil {
		log.Printf("Error starting wizard: %v", err)
		return respondEphemeral(s, i, UserMessage(err))
	}

	view := Render(state, nil)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{view.Embed},
			Components: view.Components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleComponent routes a button or select interaction
func (h *Handler) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	id, ok := ParseCustomID(data.CustomID)
	if !ok {
		return nil
	}
	ctx := context.Background()
	userID := InteractionUserID(i)

	switch id.Action {
	case ActionName:
		state, err := h.authorize(ctx, userID, id.SessionID)
		if err != nil {
			return respondEphemeral(s, i, UserMessage(err))
		}
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: NameModal(id.SessionID, state.Draft().CharName),
		})
	case ActionSubmit:
		return h.submit(ctx, s, i, userID, id.SessionID)
	}

	if err := deferUpdate(s, i); err != nil {
		return err
	}

	outcome, err := h.Dispatch(ctx, userID, id, data.Values)
	if err != nil {
		log.Printf("Error handling %s for wizard %s: %v", id.Action, id.SessionID, err)
		return followupError(s, i, err)
	}
	return editView(s, i, Render(outcome.State, outcome.Pending))
}

// HandleModalSubmit handles the name modal
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	id, ok := ParseCustomID(data.CustomID)
	if !ok || id.Action != ActionNameModal {
		return nil
	}
	ctx := context.Background()

	if err := deferUpdate(s, i); err != nil {
		return err
	}

	if _, err := h.authorize(ctx, InteractionUserID(i), id.SessionID); err != nil {
		return followupError(s, i, err)
	}
	state, err := h.service.SetName(ctx, id.SessionID, modalValue(data, nameInputID))
	if err != nil {
		log.Printf("Error naming character for wizard %s: %v", id.SessionID, err)
		return followupError(s, i, err)
	}
	return editView(s, i, Render(state, nil))
}

func (h *Handler) submit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, sessionID string) error {
	if err := deferUpdate(s, i); err != nil {
		return err
	}

	state, err := h.authorize(ctx, userID, sessionID)
	if err != nil {
		return followupError(s, i, err)
	}

	result, err := h.service.Submit(ctx, sessionID)
	if err != nil {
		return followupError(s, i, err)
	}

	if err := editView(s, i, RenderSubmitted(state, result)); err != nil {
		return err
	}
	if len(result.Data) == 0 {
		return nil
	}

	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: fmt.Sprintf("Here is %s's character sheet.", state.Draft().CharName),
		Flags:   discordgo.MessageFlagsEphemeral,
		Files: []*discordgo.File{
			{
				Name:        result.FileName,
				ContentType: contentType(result.SheetType),
				Reader:      bytes.NewReader(result.Data),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send character sheet: %w", err)
	}
	return nil
}

func contentType(t character.SheetType) string {
	switch t {
	case character.SheetPDF:
		return "application/pdf"
	case character.SheetXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

func modalValue(data discordgo.ModalSubmitInteractionData, inputID string) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rowComp := range row.Components {
			if input, ok := rowComp.(*discordgo.TextInput); ok && input.CustomID == inputID {
				return input.Value
			}
		}
	}
	return ""
}

func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

func editView(s *discordgo.Session, i *discordgo.InteractionCreate, view *View) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{view.Embed},
		Components: &view.Components,
	})
	if err != nil {
		return fmt.Errorf("failed to update wizard message: %w", err)
	}
	return nil
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	_, sendErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: "❌ " + UserMessage(err),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return sendErr
}
