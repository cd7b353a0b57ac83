package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal shape check for published records
type recordData struct {
	ID         string `json:"id"`
	RecordType string `json:"recordType"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted published records...")

	iter := client.Scan(ctx, 0, "codex:record:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var rec recordData
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Key layout is codex:record:<category>:<id>; the stored record
		// must agree with the id in its own key
		parts := strings.Split(key, ":")
		keyID := parts[len(parts)-1]
		if rec.ID != keyID {
			fmt.Printf("✗ ID mismatch in %s: record says %q\n", key, rec.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if rec.RecordType == "" {
			fmt.Printf("✗ Missing recordType in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	// Index entries whose record key is gone are also defects; a
	// half-finished publish or manual deletion can leave them behind
	var orphanedMembers []struct{ indexKey, id string }
	indexIter := client.Scan(ctx, 0, "codex:index:*", 0).Iterator()
	for indexIter.Next(ctx) {
		indexKey := indexIter.Val()
		category := strings.TrimPrefix(indexKey, "codex:index:")

		ids, err := client.SMembers(ctx, indexKey).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", indexKey, err)
			continue
		}
		for _, id := range ids {
			exists, err := client.Exists(ctx, "codex:record:"+category+":"+id).Result()
			if err != nil {
				fmt.Printf("Error checking %s/%s: %v\n", category, id, err)
				continue
			}
			if exists == 0 {
				fmt.Printf("✗ Orphaned index entry %s in %s\n", id, indexKey)
				orphanedMembers = append(orphanedMembers, struct{ indexKey, id string }{indexKey, id})
			}
		}
	}
	if err := indexIter.Err(); err != nil {
		log.Fatal("Error during index scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted records and %d orphaned index entries\n",
		checkedCount, len(corruptedKeys), len(orphanedMembers))

	if len(corruptedKeys) == 0 && len(orphanedMembers) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	if len(corruptedKeys) > 0 {
		fmt.Println("\nCorrupted keys:")
		for _, key := range corruptedKeys {
			fmt.Printf("  - %s\n", key)
		}
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, m := range orphanedMembers {
		if err := client.SRem(ctx, m.indexKey, m.id).Err(); err != nil {
			fmt.Printf("Failed to remove %s from %s: %v\n", m.id, m.indexKey, err)
		} else {
			fmt.Printf("Removed %s from %s\n", m.id, m.indexKey)
		}
	}
	fmt.Println("\nCleanup complete!")
}
