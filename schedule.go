package main

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// RunScheduler blocks and posts the weekly update on the configured cron
// schedule. A failed run is logged and the schedule keeps going.
func RunScheduler(cfg Config, api *slack.Client) error {
	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule, func() {
		if err := Run(cfg, api, RunOptions{}); err != nil {
			log.Printf("scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule '%s': %w", cfg.Schedule, err)
	}

	log.Printf("Scheduler started, posting on '%s'", cfg.Schedule)
	c.Run()
	return nil
}
