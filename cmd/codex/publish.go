package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/library"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-codex/internal/redis"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/content"
)

var publishRedisAddress string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Validate and publish the content directory to Redis",
	Long:  `Publish runs the same validation as lint and, if no errors are found, writes every record and a manifest to Redis for consumers to pull.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishRedisAddress, "redis", "", "redis address (overrides config)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	if publishRedisAddress != "" {
		cfg.RedisAddress = publishRedisAddress
	}

	result, report, err := loadAndValidate(cfg.ContentDir)
	if err != nil {
		return err
	}

	printFindings(report)
	if report.HasErrors() {
		return fmt.Errorf("refusing to publish: %d errors", len(report.Errors()))
	}

	client, err := redis.NewClient(cfg.RedisAddress, &redis.Options{
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := content.NewRedis(&content.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create content repository: %w", err)
	}

	o, err := library.NewOrchestrator(&library.Config{ContentRepo: repo})
	if err != nil {
		return fmt.Errorf("failed to create library orchestrator: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RedisTimeout())
	defer cancel()

	output, err := o.Publish(ctx, &library.PublishInput{Store: result.Store})
	if err != nil {
		return err
	}

	fmt.Printf("published %d records at %s\n",
		output.RecordsPublished, output.Manifest.PublishedAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
