package main

import (
	"log"
	"os"

	"selfParlayBot/scheduler"
	"selfParlayBot/services"
	"selfParlayBot/services/parlayService"
	"selfParlayBot/storage"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using process environment")
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatalf("DATABASE_URL not set in environment variables")
	}

	db, err = storage.Open(connString)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = storage.AutoMigrate(db)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		log.Fatalf("DISCORD_BOT_TOKEN not set in environment variables")
	}

	engine, err := parlayService.NewEngine(storage.NewGormStore(db))
	if err != nil {
		log.Fatalf("Error loading parlay state: %v", err)
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		interactionCreate(s, i, engine)
	})
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "You vs. you")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsDirectMessages

	err = dg.Open()
	if err != nil {
		log.Fatalf("Error opening Discord session: %v", err)
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		log.Fatalf("Error registering commands: %v", err)
	}

	scheduler.SetupCron(dg, engine, db)

	log.Println("Bot is running. Press CTRL+C to exit.")
	select {}
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, engine *parlayService.Engine) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, engine, db)
	case discordgo.InteractionMessageComponent:
		services.HandleComponentInteraction(s, i, engine, db)
	}
}
