package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/isofinly/sharedcache/cache"
	"github.com/isofinly/sharedcache/config"
	"github.com/isofinly/sharedcache/manager"
	"github.com/isofinly/sharedcache/redis"
)

func printContents(c cache.Store) {
	entries, err := c.Snapshot()
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	fmt.Println("Cache Contents:")
	if len(entries) == 0 {
		fmt.Println("  (empty)")
		return
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  Key: %s, Value: %s\n", k, entries[k])
	}
}

func main() {
	production := os.Getenv("PRODUCTION") == ""
	config.SetupConfig(production)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cache1 := manager.Instance()

	cache1.Put("user:123", "Alice Smith")
	cache1.Put("config:theme", "dark")
	fmt.Println("Cache 1 Contents:")
	printContents(cache1)

	cache2 := manager.Instance()

	cache2.Put("user:456", "Bob Jones")
	fmt.Println("\nAfter adding to Cache 2:")
	fmt.Println("Cache 1 Contents (same instance):")
	printContents(cache1)

	if val, ok, _ := cache1.Get("user:123"); ok {
		fmt.Printf("\nRetrieving user:123: %s\n", val)
	}

	fmt.Printf("Is same instance? %t\n", cache1 == cache2)

	cache2.Clear()
	fmt.Println("\nAfter clearing Cache 2:")
	fmt.Println("Cache 1 Contents (same instance):")
	printContents(cache1)

	if cfg.RedisHost != "" {
		remote := manager.New(redis.NewStore(cfg.RedisHost))
		if err := remote.Put("user:123", "Alice Smith"); err != nil {
			log.Fatalf("redis put: %v", err)
		}
		val, _, err := remote.Get("user:123")
		if err != nil {
			log.Fatalf("redis get: %v", err)
		}
		fmt.Printf("\nRedis-backed cache user:123: %s\n", val)
	}
}
