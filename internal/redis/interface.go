package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so tests can swap in miniredis or a mock
type Client interface {
	redis.UniversalClient
}
