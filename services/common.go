package services

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending interaction: %v", err)
	}
}

// ensureDM rejects guild usage; every command works in DMs only.
func ensureDM(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID == "" {
		return true
	}
	respondEphemeral(s, i, "Use me in **DMs**. Try `/rules` there first, then `/bet`.")
	return false
}
