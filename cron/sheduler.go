package cron

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartCron schedules every registered job and starts the runner.
// A schedule that does not parse is fatal.
func StartCron() *cron.Cron {
	c := cron.New()
	for name, j := range Jobs() {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
		log.Printf("cron: %s scheduled %q", name, j.Schedule)
	}
	c.Start()
	return c
}
