package predictor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// Source yields the raw bytes of a model artifact.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// ErrArtifactNotFound is returned when a source holds no artifact.
var ErrArtifactNotFound = errors.New("model artifact not found")

// FileSource reads the artifact from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, s.Path)
	}
	return data, err
}

func (s FileSource) String() string { return "file:" + s.Path }

// stringGetter is the subset of *redis.Client used by RedisSource.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource reads the artifact stored as a string value under Key.
type RedisSource struct {
	Client stringGetter
	Key    string
}

func (s RedisSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.Client == nil {
		return nil, errors.New("redis client is not configured")
	}
	data, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: redis key %s", ErrArtifactNotFound, s.Key)
	}
	return data, err
}

func (s RedisSource) String() string { return "redis:" + s.Key }
