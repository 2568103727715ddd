package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Real-Estate-Insight-Platform-Project/Web-App-sub000/scraper"
)

// Recycler periodically releases the shared browser session so long-running
// daemons get a fresh browser process. The next request re-acquires lazily.
type Recycler struct {
	session  *scraper.Session
	cronSpec string
	cron     *cron.Cron
}

func New(session *scraper.Session, cronSpec string) *Recycler {
	return &Recycler{
		session:  session,
		cronSpec: cronSpec,
		cron:     cron.New(),
	}
}

// Start registers the recycle job. A missing cron spec disables recycling.
func (r *Recycler) Start() error {
	if r.cronSpec == "" {
		log.Println("No recycle schedule configured, browser session will live until shutdown")
		return nil
	}

	_, err := r.cron.AddFunc(r.cronSpec, func() {
		log.Println("Recycling browser session")
		r.session.Release()
	})
	if err != nil {
		return fmt.Errorf("invalid recycle cron expression: %w", err)
	}

	r.cron.Start()
	log.Printf("Browser recycler scheduled: %s", r.cronSpec)
	return nil
}

func (r *Recycler) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}
