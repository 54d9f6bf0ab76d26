package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists sessions in Redis as hashes under session:<id> with a
// TTL. Lifetime is entirely the store's concern; callers only load and
// save.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "session:" + id }

// TTL is the configured session lifetime; the cookie max-age mirrors it.
func (st *Store) TTL() time.Duration { return st.ttl }

// Load fetches the session with the given id. A missing or expired id
// returns (nil, nil) so the middleware can issue a fresh session.
func (st *Store) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	data, err := st.rdb.HGetAll(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Session{ID: id, Values: data}, nil
}

// Save writes the session hash and refreshes its TTL.
func (st *Store) Save(ctx context.Context, sess *Session) error {
	k := key(sess.ID)
	pipe := st.rdb.Pipeline()
	if len(sess.Values) > 0 {
		fields := make(map[string]any, len(sess.Values))
		for f, v := range sess.Values {
			fields[f] = v
		}
		pipe.HSet(ctx, k, fields)
	} else {
		// keep the key alive so the token stays valid for empty sessions
		pipe.HSet(ctx, k, "_", "")
	}
	pipe.Expire(ctx, k, st.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	sess.dirty = false
	return nil
}

func (st *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return st.rdb.Del(ctx, key(id)).Err()
}
