package main

import (
	"log"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dryRun     bool

	rootCmd = &cobra.Command{
		Use:           "weeklybot",
		Short:         "Posts a weekly update of your assigned Linear issues to Slack.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Fetch assigned issues and post the weekly update once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			api := slack.New(cfg.SlackBotToken)
			return Run(cfg, api, RunOptions{DryRun: dryRun})
		},
	}

	scheduleCmd = &cobra.Command{
		Use:   "schedule",
		Short: "Keep running and post the weekly update on a cron schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			api := slack.New(cfg.SlackBotToken)
			return RunScheduler(cfg, api)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ./config.yaml, or CONFIG_PATH)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rendered payload instead of posting to Slack")
	rootCmd.AddCommand(runCmd, scheduleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("weeklybot: %v", err)
	}
}
