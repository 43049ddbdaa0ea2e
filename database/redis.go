package database

import (
	"context"
	"log"

	"restaurant_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{Addr: addr})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed: %v", err)
	} else {
		log.Println("Connection Opened to Redis")
	}
}
