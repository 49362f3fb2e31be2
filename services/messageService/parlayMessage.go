package messageService

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
)

// deliverTimeout bounds every outbound Discord call so a stuck delivery never
// blocks the next sweep tick.
const deliverTimeout = 10 * time.Second

func statusColor(status string) int {
	switch status {
	case models.ParlayLost:
		return 0xE74C3C
	case models.ParlayWon:
		return 0x3498DB
	default:
		return 0x2ECC71
	}
}

func statusTitle(status string) string {
	switch status {
	case models.ParlayWon:
		return "Won"
	case models.ParlayLost:
		return "Lost"
	default:
		return "Active"
	}
}

func legMark(status string) string {
	switch status {
	case models.LegWin:
		return "✅"
	case models.LegFail:
		return "❌"
	default:
		return "⬜"
	}
}

// ParlayEmbed renders the parlay card.
func ParlayEmbed(p *models.Parlay, author *discordgo.User) *discordgo.MessageEmbed {
	var lines []string
	for idx, leg := range p.Legs {
		lines = append(lines, fmt.Sprintf("%s %d. %s", legMark(leg.Status), idx+1, leg.Text))
	}
	items := strings.Join(lines, "\n")
	if items == "" {
		items = "—"
	}

	now := common.Now()
	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Parlay #%s", p.ShortID()),
		Color:     statusColor(p.Status),
		Timestamp: now.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Stake", Value: fmt.Sprintf("%d pts", p.Stake), Inline: true},
			{Name: "Legs", Value: fmt.Sprintf("%d", p.LegsCount), Inline: true},
			{Name: "Mult", Value: fmt.Sprintf("%.2fx", p.Multiplier), Inline: true},
			{Name: "Items", Value: items, Inline: false},
			{Name: "Deadline", Value: p.DeadlineAt.In(common.TZ).Format("Jan 02, 2006 03:04 PM") + " ET", Inline: true},
			{Name: "Time Left", Value: common.FormatTimeLeft(p.DeadlineAt, now), Inline: true},
			{Name: "Status", Value: statusTitle(p.Status), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "All legs must be ✅ by the deadline to win",
		},
	}
	if author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    common.GetUsernameFromUser(author),
			IconURL: author.AvatarURL(""),
		}
	}
	return embed
}

// ParlayComponents builds the card buttons. Resolve Now only lights up once
// every leg is WIN; resolved cards get no buttons at all.
func ParlayComponents(p *models.Parlay) []discordgo.MessageComponent {
	if p.Status != models.ParlayActive {
		return []discordgo.MessageComponent{}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Modify a leg",
					Style:    discordgo.SecondaryButton,
					CustomID: "parlay_modify_" + p.ID,
				},
				discordgo.Button{
					Label:    "Resolve Now",
					Style:    discordgo.PrimaryButton,
					CustomID: "parlay_resolve_" + p.ID,
					Disabled: !p.AllLegsWon(),
				},
			},
		},
	}
}

// SendParlayCard delivers a fresh card and returns the channel and message ids
// for the presentation ref.
func SendParlayCard(s *discordgo.Session, channelID string, p *models.Parlay, author *discordgo.User) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{ParlayEmbed(p, author)},
		Components: ParlayComponents(p),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", "", err
	}
	return msg.ChannelID, msg.ID, nil
}

// UpdateParlayCard edits the stored card in place. A missing or stale ref is
// not an error; the card is a view, never the source of truth.
func UpdateParlayCard(s *discordgo.Session, p *models.Parlay, author *discordgo.User) error {
	if p.ChannelID == nil || p.MessageID == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	embeds := []*discordgo.MessageEmbed{ParlayEmbed(p, author)}
	components := ParlayComponents(p)
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    *p.ChannelID,
		ID:         *p.MessageID,
		Embeds:     &embeds,
		Components: &components,
	}, discordgo.WithContext(ctx))
	return err
}

// NotifyResolution updates the resolved card and announces the outcome in the
// user's DM channel. Best effort: the resolution is already committed, so
// every failure here is logged and dropped.
func NotifyResolution(s *discordgo.Session, res *parlayService.Resolution) {
	if s == nil || res == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	author, err := s.User(res.Parlay.UserID, discordgo.WithContext(ctx))
	if err != nil {
		author = nil
	}
	if err := UpdateParlayCard(s, res.Parlay, author); err != nil {
		log.Printf("Error updating card for parlay %s: %v", res.Parlay.ID, err)
	}

	if res.Parlay.ChannelID == nil {
		return
	}
	outcome := fmt.Sprintf("WIN +%d pts", res.Delta)
	if !res.Won {
		outcome = fmt.Sprintf("LOSS -%d pts", -res.Delta)
	}
	text := fmt.Sprintf("**Parlay #%s** → %s • New balance: **%d pts**", res.Parlay.ShortID(), outcome, res.User.Balance)
	if _, err := s.ChannelMessageSend(*res.Parlay.ChannelID, text, discordgo.WithContext(ctx)); err != nil {
		log.Printf("Error sending resolution notice for parlay %s: %v", res.Parlay.ID, err)
	}
}
