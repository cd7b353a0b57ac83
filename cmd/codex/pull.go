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

var pullRedisAddress string

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the published library and verify it against its manifest",
	Long:  `Pull reads the published library from Redis into memory and checks that the stored record counts match what the manifest claims was published.`,
	RunE:  runPull,
}

func init() {
	pullCmd.Flags().StringVar(&pullRedisAddress, "redis", "", "redis address (overrides config)")
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	if pullRedisAddress != "" {
		cfg.RedisAddress = pullRedisAddress
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

	output, err := o.Pull(ctx, &library.PullInput{})
	if err != nil {
		return err
	}

	fmt.Printf("pulled %d records, published at %s\n",
		output.Store.Len(), output.Manifest.PublishedAt.Format("2006-01-02T15:04:05Z07:00"))

	mismatches := 0
	for _, category := range output.Store.Categories() {
		got := len(output.Store.AllOf(category))
		want := output.Manifest.RecordCounts[string(category)]
		if got != want {
			fmt.Printf("%s: manifest claims %d records, found %d\n", category, want, got)
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("library does not match its manifest (%d categories differ)", mismatches)
	}

	fmt.Println("library matches its manifest")
	return nil
}
