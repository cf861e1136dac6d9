package probe

import (
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const redisKeyPrefix = "muxshape:probe:"

// RedisConfig holds the connection settings for RedisCache. envconfig reads
// the fields under the caller's prefix, e.g. MUXSHAPE_REDIS_DIAL_TIMEOUT.
type RedisConfig struct {
	Addr        string        `split_words:"true"`
	Password    string        `split_words:"true"`
	DB          int           `split_words:"true"`
	PoolSize    int           `split_words:"true"`
	DialTimeout time.Duration `split_words:"true"`
	TTL         time.Duration `split_words:"true"`
}

// RedisCache stores probe results as JSON in Redis, shared between runs and
// hosts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "connect redis %s", cfg.Addr)
	}
	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (r *RedisCache) Get(key string) (*ProbeResult, bool, error) {
	data, err := r.client.Get(redisKeyPrefix + key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var pr ProbeResult
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, false, errors.Wrap(err, "decode cached probe")
	}
	return &pr, true, nil
}

func (r *RedisCache) Set(key string, pr *ProbeResult) error {
	data, err := json.Marshal(pr)
	if err != nil {
		return errors.Wrap(err, "encode probe")
	}
	return r.client.Set(redisKeyPrefix+key, data, r.ttl).Err()
}

// Close releases the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
