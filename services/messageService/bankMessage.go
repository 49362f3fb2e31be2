package messageService

import (
	"fmt"
	"strings"
	"time"

	"selfParlayBot/models"
	"selfParlayBot/services/common"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
)

// BankEmbed renders the user's balance, cap usage, streak, and recent results.
func BankEmbed(u *models.User, recent []models.LedgerEntry, now time.Time) *discordgo.MessageEmbed {
	nextReset, inText := common.NextDailyReset(now)

	embed := &discordgo.MessageEmbed{
		Title: "Your Bank",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("**%d pts**", u.Balance), Inline: true},
			{Name: "Win Streak", Value: fmt.Sprintf("%d", u.StreakDays), Inline: true},
			{Name: "Daily Stake Used", Value: fmt.Sprintf("%d/%d", u.DailySpent, parlayService.DailyStakeCap), Inline: true},
			{Name: "Weekly Stake Used", Value: fmt.Sprintf("%d/%d", u.WeeklySpent, parlayService.WeeklyStakeCap), Inline: true},
			{Name: "Daily cap resets", Value: fmt.Sprintf("%s ET (%s)", nextReset.Format("Jan 02, 2006 03:04 PM"), inText), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "All times ET"},
	}

	if len(recent) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Recent", Value: "No results yet.", Inline: false,
		})
		return embed
	}

	var lines []string
	for _, r := range recent {
		sign := "🔴"
		amt := fmt.Sprintf("%d", r.Delta)
		if r.Delta > 0 {
			sign = "🟢"
			amt = fmt.Sprintf("+%d", r.Delta)
		}
		shortID := r.ParlayID
		if idx := strings.Index(shortID, "-"); idx > 0 {
			shortID = shortID[:idx]
		}
		when := r.CreatedAt.In(common.TZ).Format("01/02 03:04 PM")
		lines = append(lines, fmt.Sprintf("%s %s • #%s • %s • %s", sign, amt, shortID, r.Note, when))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Recent", Value: strings.Join(lines, "\n"), Inline: false,
	})
	return embed
}
