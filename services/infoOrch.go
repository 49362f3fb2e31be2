package services

import (
	"fmt"
	"log"

	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
)

func ShowRules(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !ensureDM(s, i) {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title: "Self-Parlay Rules (DM Bot)",
		Color: 0x43B581,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "How it works",
				Value:  "Create a parlay (1–5 tasks), set a deadline, mark legs ✅/❌. If **all** are ✅ at the deadline, you win.",
				Inline: false,
			},
			{
				Name:   "Example",
				Value:  "`/bet 50 (go gym) (study 40 mins) (finish 310 hw) 10/14/2025 11:59 PM`",
				Inline: false,
			},
			{
				Name: "Caps/Cooldown",
				Value: fmt.Sprintf("Daily cap %d, weekly cap %d. After a loss: %d min cooldown.",
					parlayService.DailyStakeCap, parlayService.WeeklyStakeCap, parlayService.CooldownAfterLossMin),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "All times ET • You vs. you."},
	}
	respondEmbed(s, i, embed)
}

func ShowFAQ(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !ensureDM(s, i) {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title: "FAQ",
		Color: 0x7289DA,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Where do I use commands?", Value: "**DMs only.**", Inline: false},
			{Name: "Editing", Value: "No edits. Use the **Modify a leg** button to mark ✅/❌.", Inline: false},
			{Name: "Resend my parlays", Value: "Use `/parlays` and I'll resend your active parlay cards here.", Inline: false},
		},
	}
	respondEmbed(s, i, embed)
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Error sending interaction: %v", err)
	}
}
