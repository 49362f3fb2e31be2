package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"selfParlayBot/services/common"
	"selfParlayBot/services/messageService"
	"selfParlayBot/services/parlayService"

	"github.com/bwmarrin/discordgo"
)

// CheckExpiredParlays forces resolution of every active parlay whose deadline
// has passed.
func CheckExpiredParlays(s *discordgo.Session, engine *parlayService.Engine) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckExpiredParlays", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckExpiredParlays: %v", r)
		}
	}()

	sweepExpired(s, engine, common.Now())
	return nil
}

// sweepExpired resolves each expired parlay through TryResolve, which
// re-reads the latest state under the engine lock. A parlay resolved manually
// between enumeration and the call comes back as a nil resolution and is
// skipped, so the sweep never double-settles.
func sweepExpired(s *discordgo.Session, engine *parlayService.Engine, now time.Time) {
	for _, id := range engine.ExpiredActive(now) {
		res, err := engine.TryResolve(id, now)
		if err != nil {
			log.Printf("Error resolving expired parlay %s: %v", id, err)
			continue
		}
		if res == nil {
			continue
		}
		messageService.NotifyResolution(s, res)
	}
}
