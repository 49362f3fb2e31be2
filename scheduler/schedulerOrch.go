package scheduler

import (
	"fmt"

	"selfParlayBot/models"
	"selfParlayBot/scheduler/scheduler_jobs"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func SetupCron(s *discordgo.Session, engine *parlayService.Engine, db *gorm.DB) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("@every 60s", func() {
		err := scheduler_jobs.CheckExpiredParlays(s, engine)
		if err != nil {
			fmt.Println(err)
		}
	})

	if err != nil {
		errLog := models.ErrorLog{
			UserID:  "CRON ERR",
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}

	cronService.Start()
}
