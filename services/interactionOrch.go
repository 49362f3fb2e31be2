package services

import (
	"strings"

	"selfParlayBot/services/interactionService"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "parlay_modify_"):
		interactionService.ModifyLegPrompt(s, i, engine, db, customID)
	case strings.HasPrefix(customID, "parlay_leg_"):
		interactionService.LegActionPrompt(s, i, engine, db, customID)
	case strings.HasPrefix(customID, "parlay_mark_"):
		interactionService.MarkLeg(s, i, engine, db, customID)
	case strings.HasPrefix(customID, "parlay_resolve_"):
		interactionService.ResolveNow(s, i, engine, db, customID)
	}
}
