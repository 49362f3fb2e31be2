package common

import (
	"fmt"
	"log"

	"selfParlayBot/models"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// InteractionUser returns the acting user for both DM and guild interactions.
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func GetUsernameFromUser(user *discordgo.User) string {
	if user == nil {
		return "Unknown User"
	}
	username := user.GlobalName
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return "Unknown User"
	}
	return username
}

func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, db *gorm.DB) {
	fmt.Println(err)

	userID := ""
	if i != nil {
		if u := InteractionUser(i); u != nil {
			userID = u.ID
		}
		localErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("An error occured: %v", err),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if localErr != nil {
			log.Printf("Error sending interaction: %v", localErr)
		}
	}
	errLog := models.ErrorLog{
		UserID:  userID,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}
