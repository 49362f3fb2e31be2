package services

import (
	"fmt"
	"log"

	"selfParlayBot/services/common"
	"selfParlayBot/services/messageService"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// CreateParlay handles /bet: parse, create through the engine, send the card,
// and remember where the card lives.
func CreateParlay(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB) {
	if !ensureDM(s, i) {
		return
	}
	user := common.InteractionUser(i)

	var stake int
	var legsText, deadlineStr string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "stake":
			stake = int(opt.IntValue())
		case "legs":
			legsText = opt.StringValue()
		case "deadline":
			deadlineStr = opt.StringValue()
		}
	}

	legTexts, err := parlayService.ParseLegs(legsText)
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("Error: %v", err))
		return
	}
	deadline, err := common.ParseDeadline(deadlineStr)
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("Error: %v", err))
		return
	}

	p, err := engine.CreateParlay(user.ID, stake, legTexts, deadline)
	if err != nil {
		if parlayService.UserFacing(err) {
			respondEphemeral(s, i, err.Error())
			return
		}
		common.SendError(s, i, err, db)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{messageService.ParlayEmbed(p, user)},
			Components: messageService.ParlayComponents(p),
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		log.Printf("Error fetching card message for parlay %s: %v", p.ID, err)
		return
	}
	if err := engine.SetPresentationRef(p.ID, msg.ChannelID, msg.ID); err != nil {
		log.Printf("Error storing card ref for parlay %s: %v", p.ID, err)
	}
}

// ListParlays handles /parlays: re-send fresh cards for every active parlay
// and point the refs at the new messages.
func ListParlays(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB) {
	if !ensureDM(s, i) {
		return
	}
	user := common.InteractionUser(i)

	active := engine.ActiveParlays(user.ID)
	if len(active) == 0 {
		respondEphemeral(s, i, "You have no active parlays.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Re-sending **%d** active parlay(s):", len(active)),
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	for _, p := range active {
		channelID, messageID, err := messageService.SendParlayCard(s, i.ChannelID, p, user)
		if err != nil {
			log.Printf("Error re-sending card for parlay %s: %v", p.ID, err)
			continue
		}
		if err := engine.SetPresentationRef(p.ID, channelID, messageID); err != nil {
			log.Printf("Error storing card ref for parlay %s: %v", p.ID, err)
		}
	}
}
