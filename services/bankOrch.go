package services

import (
	"selfParlayBot/services/common"
	"selfParlayBot/services/messageService"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// ShowBank handles /bank.
func ShowBank(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB) {
	if !ensureDM(s, i) {
		return
	}
	user := common.InteractionUser(i)

	record, recent := engine.Bank(user.ID)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{messageService.BankEmbed(record, recent, common.Now())},
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}
