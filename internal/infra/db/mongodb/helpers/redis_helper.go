package helpers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 30 * time.Second

// RedisHelper returns the pooled client for a connection URL, dialing it
// on first use. Cache misses are cheap here; the pool is sized for the
// report-cache traffic, not the whole request volume.
func RedisHelper(connectionUrl string) *redis.Client {
	redisClientMutex.Lock()
	if client, exists := redisClients[connectionUrl]; exists {
		redisClientMutex.Unlock()
		return client
	}
	redisClientMutex.Unlock()

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		log.Fatalf("error parsing Redis URL: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 10
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("error pinging Redis: %v", err)
	}

	redisClientMutex.Lock()
	redisClients[connectionUrl] = client
	redisClientMutex.Unlock()

	log.Printf("connected to Redis at %s", connectionUrl)

	return client
}

// DisconnectRedis closes every pooled client; called on shutdown.
func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			log.Printf("error disconnecting from Redis %s: %v", url, err)
		} else {
			log.Printf("disconnected from Redis: %s", url)
		}
	}

	redisClients = make(map[string]*redis.Client)
}
