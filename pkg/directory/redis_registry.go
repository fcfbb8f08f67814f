// Package directory implements a Redis-backed bootstrap directory: a
// non-authoritative registry of known overlay addresses used only to
// pick a bootstrap peer when a node starts without one on the command
// line. It is an external collaborator and plays no part
// in routing correctness.
package directory

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

// membersKey is the Redis set holding every address that has ever
// registered. Entries are never actively expired; a stale address simply
// fails the caller's subsequent Join attempt and is dropped on next seen
// failure by the caller, not by this package.
const membersKey = "pastry:directory:members"

// Registry implements port.Directory over a single Redis set.
type Registry struct {
	client *redis.Client
}

// NewRegistry creates a directory client against the given Redis server.
func NewRegistry(addr, password string, db int) *Registry {
	return &Registry{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Register adds pubAddr to the member set.
func (r *Registry) Register(ctx context.Context, pubAddr string) error {
	return r.client.SAdd(ctx, membersKey, pubAddr).Err()
}

// Deregister removes pubAddr from the member set, best-effort, used on
// graceful shutdown.
func (r *Registry) Deregister(ctx context.Context, pubAddr string) error {
	return r.client.SRem(ctx, membersKey, pubAddr).Err()
}

// PickPeer returns a random registered address other than self, or
// ok=false if none is available.
func (r *Registry) PickPeer(ctx context.Context, self string) (string, bool, error) {
	members, err := r.client.SMembers(ctx, membersKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", false, err
	}

	candidates := members[:0]
	for _, m := range members {
		if m != self {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return "", false, nil
	}
	return candidates[rng.Intn(len(candidates))], true, nil
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Close releases the underlying Redis connection.
func (r *Registry) Close() error {
	return r.client.Close()
}

// Client exposes the underlying Redis connection for collaborators that
// need it for something other than directory membership, such as idgen's
// RedisClock.
func (r *Registry) Client() *redis.Client {
	return r.client
}
