package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-content/internal/content/race"
	"github.com/KirkDiggler/rpg-content/internal/entities"
)

const (
	draftKeyPattern     = "draft:*"
	playerMappingPrefix = "draft:player:"
)

// checkDraft returns why a stored draft can no longer be used, or "" if it is fine.
// A draft whose race is gone cannot have its race modifiers reversed.
func checkDraft(data string, races race.Registry) string {
	var draft entities.CharacterDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return "corrupted JSON"
	}
	if draft.ID == "" || draft.PlayerID == "" {
		return "missing draft or player ID"
	}
	if !draft.HasRace() {
		return ""
	}

	d, err := races.Get(draft.RaceID)
	if err != nil {
		return fmt.Sprintf("race %s is not registered", draft.RaceID)
	}
	if !race.HasFace(d, draft.Face) {
		return fmt.Sprintf("race %s does not offer face %s", draft.RaceID, draft.Face)
	}
	return ""
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

	races, err := race.NewDefaultRegistry()
	if err != nil {
		log.Fatal("Failed to build race registry:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unusable character drafts...")

	iter := client.Scan(ctx, 0, draftKeyPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerMappingPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkDraft(data, races); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d drafts, found %d unusable entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No unusable drafts found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these drafts? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

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
	fmt.Println("\nCleanup complete! Stale player mappings are removed on the next lookup.")
}
