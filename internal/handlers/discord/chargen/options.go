package chargen

import "github.com/bwmarrin/discordgo"

// GetCommandOption finds a top level option of the invoked command
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// GetStringOption returns a string option or ""
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption returns an integer option or 0
func GetIntOption(i *discordgo.InteractionCreate, name string) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return 0
	}
	return opt.IntValue()
}

// InteractionUserID works for guild and DM interactions
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
