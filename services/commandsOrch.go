package services

import (
	"fmt"

	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB) {
	switch i.ApplicationCommandData().Name {
	case "bet":
		CreateParlay(s, i, engine, db)
	case "parlays":
		ListParlays(s, i, engine, db)
	case "bank":
		ShowBank(s, i, engine, db)
	case "rules":
		ShowRules(s, i)
	case "faq":
		ShowFAQ(s, i)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	minStake := 1.0
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "bet",
			Description: "Create a parlay in DM: /bet <stake> <legs> <deadline>",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "stake",
					Description: "Points to stake (integer)",
					Type:        discordgo.ApplicationCommandOptionInteger,
					MinValue:    &minStake,
					Required:    true,
				},
				{
					Name:        "legs",
					Description: "Legs in parentheses, e.g. (go gym) (study 40 mins) (finish 310 hw)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "deadline",
					Description: "Deadline in ET, e.g. 10/14/2025 11:59 PM",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:        "parlays",
			Description: "Re-send your active parlays here (fresh cards).",
		},
		{
			Name:        "bank",
			Description: "Show your balance, caps, streak, last 5 results + next daily reset.",
		},
		{
			Name:        "rules",
			Description: "How this DM self-parlay bot works.",
		},
		{
			Name:        "faq",
			Description: "Quick FAQ / tips.",
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		rcmd, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%v' command: %v", cmd.Name, err)
		}
		registeredCommands[i] = rcmd
	}

	return nil
}
