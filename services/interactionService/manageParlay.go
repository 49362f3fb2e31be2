package interactionService

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
	"selfParlayBot/services/messageService"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
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

// authorize verifies this is the creator operating their own card in a DM.
func authorize(s *discordgo.Session, i *discordgo.InteractionCreate, p *models.Parlay) bool {
	if i.GuildID != "" {
		respondEphemeral(s, i, "Use me in **DMs**.")
		return false
	}
	user := common.InteractionUser(i)
	if user == nil || user.ID != p.UserID {
		respondEphemeral(s, i, "Only the bet creator can manage this parlay.")
		return false
	}
	return true
}

// ModifyLegPrompt shows a select of the parlay's still-open legs.
func ModifyLegPrompt(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB, customID string) {
	parlayID := strings.TrimPrefix(customID, "parlay_modify_")
	p, err := engine.GetParlay(parlayID)
	if err != nil {
		respondEphemeral(s, i, "Parlay not found.")
		return
	}
	if !authorize(s, i, p) {
		return
	}

	open := p.OpenLegIndexes()
	if len(open) == 0 {
		respondEphemeral(s, i, "No open legs to modify.")
		return
	}

	var options []discordgo.SelectMenuOption
	for _, idx := range open {
		description := p.Legs[idx].Text
		if len(description) > 100 {
			description = description[:97] + "..."
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("Leg %d", idx+1),
			Value:       strconv.Itoa(idx),
			Description: description,
		})
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Select which task to modify:",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType:    discordgo.StringSelectMenu,
							CustomID:    "parlay_leg_" + p.ID,
							Placeholder: "Choose a leg",
							Options:     options,
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// LegActionPrompt follows the leg select with Mark Complete / Mark Fail
// buttons for the chosen leg.
func LegActionPrompt(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB, customID string) {
	parlayID := strings.TrimPrefix(customID, "parlay_leg_")
	values := i.MessageComponentData().Values
	if len(values) != 1 {
		respondEphemeral(s, i, "Choose exactly one leg.")
		return
	}
	legIdx, err := strconv.Atoi(values[0])
	if err != nil {
		respondEphemeral(s, i, "Invalid leg selection.")
		return
	}

	p, err := engine.GetParlay(parlayID)
	if err != nil {
		respondEphemeral(s, i, "Parlay not found.")
		return
	}
	if !authorize(s, i, p) {
		return
	}
	if legIdx < 0 || legIdx >= len(p.Legs) {
		respondEphemeral(s, i, "That leg does not exist.")
		return
	}
	if p.Legs[legIdx].Status != models.LegOpen {
		respondEphemeral(s, i, "That leg is not open.")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Leg %d: **%s**. What would you like to do?", legIdx+1, p.Legs[legIdx].Text),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Mark Complete",
							Style:    discordgo.SuccessButton,
							CustomID: fmt.Sprintf("parlay_mark_%s_%d_win", p.ID, legIdx),
						},
						discordgo.Button{
							Label:    "Mark Fail",
							Style:    discordgo.DangerButton,
							CustomID: fmt.Sprintf("parlay_mark_%s_%d_fail", p.ID, legIdx),
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// MarkLeg applies a WIN/FAIL outcome to a leg and refreshes the card.
func MarkLeg(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB, customID string) {
	// parlay_mark_{id}_{idx}_{win|fail}; the uuid has no underscores.
	parts := strings.Split(strings.TrimPrefix(customID, "parlay_mark_"), "_")
	if len(parts) != 3 {
		respondEphemeral(s, i, "Invalid action.")
		return
	}
	parlayID := parts[0]
	legIdx, err := strconv.Atoi(parts[1])
	if err != nil {
		respondEphemeral(s, i, "Invalid action.")
		return
	}
	outcome := models.LegWin
	if parts[2] == "fail" {
		outcome = models.LegFail
	}

	p, err := engine.GetParlay(parlayID)
	if err != nil {
		respondEphemeral(s, i, "Parlay not found.")
		return
	}
	if !authorize(s, i, p) {
		return
	}

	updated, err := engine.MarkLeg(parlayID, legIdx, outcome)
	if err != nil {
		if parlayService.UserFacing(err) {
			respondEphemeral(s, i, err.Error())
			return
		}
		common.SendError(s, i, err, db)
		return
	}

	if outcome == models.LegWin {
		respondEphemeral(s, i, "Marked ✅ Complete.")
	} else {
		respondEphemeral(s, i, "Marked ❌ Fail.")
	}

	author := common.InteractionUser(i)
	if err := messageService.UpdateParlayCard(s, updated, author); err != nil {
		log.Printf("Error updating card for parlay %s: %v", updated.ID, err)
	}
}

// ResolveNow settles a parlay early. The engine only allows this once every
// leg is WIN.
func ResolveNow(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine, db *gorm.DB, customID string) {
	parlayID := strings.TrimPrefix(customID, "parlay_resolve_")

	p, err := engine.GetParlay(parlayID)
	if err != nil {
		respondEphemeral(s, i, "Parlay not found.")
		return
	}
	if !authorize(s, i, p) {
		return
	}

	res, err := engine.ResolveNow(parlayID)
	if err != nil {
		if parlayService.UserFacing(err) {
			respondEphemeral(s, i, err.Error())
			return
		}
		common.SendError(s, i, err, db)
		return
	}
	if res == nil {
		respondEphemeral(s, i, "Parlay already resolved.")
		return
	}

	respondEphemeral(s, i, "Resolved.")
	messageService.NotifyResolution(s, res)
}
