package redis

import (
	"log"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/isofinly/sharedcache/cache"
)

// Store is a Redis-backed cache store. It implements the same interface as
// the in-memory store so a Manager can be pointed at a shared Redis database
// instead of process-local memory.
type Store struct {
	pool *redis.Pool
}

// NewStore initializes a Redis connection pool for the given host.
//
// Parameters:
//
//	redisHost string: The Redis host to connect to.
//
// Returns:
//
//	(*Store): A store backed by the pool.
func NewStore(redisHost string) *Store {
	return &Store{
		pool: &redis.Pool{
			MaxIdle:     10,
			IdleTimeout: 60 * time.Second,
			Dial: func() (redis.Conn, error) {
				return redis.Dial("tcp", redisHost)
			},
		},
	}
}

// Put sets the value of a given key in the cache.
//
// Parameters:
//
//	key string: the key of the cache entry. Must not be empty.
//	value string: the value to be associated with the key.
//
// Returns:
//
//	error: an error if there was a problem setting the key.
func (s *Store) Put(key string, value string) error {
	if key == "" {
		return cache.ErrEmptyKey
	}
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("SET", key, value)
	if err != nil {
		log.Println("Error while setting key: ", err)
		return err
	}
	return nil
}

// Get retrieves the value for a given key from the cache.
//
// Parameters:
//
//	key string: the key for which to retrieve the value. Must not be empty.
//
// Returns:
//
//	string: the value for the given key.
//	bool: whether the key was present.
//	error: an error if there was a problem retrieving the value.
func (s *Store) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, cache.ErrEmptyKey
	}
	conn := s.pool.Get()
	defer conn.Close()

	reply, err := redis.String(conn.Do("GET", key))
	if err == redis.ErrNil {
		return "", false, nil
	}
	if err != nil {
		log.Println("An error occurred while fetching key from cache", err.Error())
		return "", false, err
	}
	return reply, true, nil
}

// Clear removes every key from the current database.
//
// Returns:
//
//	error: an error if there was a problem clearing the cache.
func (s *Store) Clear() error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("FLUSHDB")
	if err != nil {
		log.Println("Error while clearing cache: ", err)
		return err
	}
	return nil
}

// Size returns the number of keys in the current database.
//
// Returns:
//
//	int: The number of stored keys.
//	error: an error if there was a problem counting the keys.
func (s *Store) Size() (int, error) {
	conn := s.pool.Get()
	defer conn.Close()

	count, err := redis.Int(conn.Do("DBSIZE"))
	if err != nil {
		log.Println("An error occurred while counting keys in cache: ", err.Error())
		return 0, err
	}
	return count, nil
}

// Snapshot fetches all keys and their values from the cache.
//
// The listing is taken with KEYS followed by a single MGET, so values are
// consistent with each other as of the MGET. A key deleted between the two
// commands is skipped.
//
// Returns:
//
//	(map[string]string, error): A map of key-value pairs
//	error: an error if there was a problem retrieving the entries.
func (s *Store) Snapshot() (map[string]string, error) {
	conn := s.pool.Get()
	defer conn.Close()

	keys, err := redis.Strings(conn.Do("KEYS", "*"))
	if err != nil {
		log.Println("An error occurred while listing keys from cache", err.Error())
		return nil, err
	}
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	args := make([]interface{}, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	values, err := redis.Strings(conn.Do("MGET", args...))
	if err != nil {
		log.Println("An error occurred while fetching keys from cache", err.Error())
		return nil, err
	}

	result := make(map[string]string, len(keys))
	for i, key := range keys {
		result[key] = values[i]
	}
	return result, nil
}
