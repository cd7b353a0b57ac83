package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
)

const (
	recordKeyPrefix = "codex:record:"
	indexKeyPrefix  = "codex:index:"
	manifestKey     = "codex:manifest"

	// Error messages
	errRecordNil     = "record cannot be nil"
	errRecordIDEmpty = "record ID cannot be empty"
	errManifestNil   = "manifest cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis content repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed content repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func recordKey(category codex.Category, id string) string {
	return recordKeyPrefix + string(category) + ":" + id
}

func indexKey(category codex.Category) string {
	return indexKeyPrefix + string(category)
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}
	if !input.Record.RecordType.Valid() {
		return nil, errors.InvalidArgumentf("record %q has unknown record type %q",
			input.Record.ID, input.Record.RecordType)
	}

	category := input.Record.RecordType.Category()

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(category, input.Record.ID), data, 0) // Published records have no TTL
	pipe.SAdd(ctx, indexKey(category), input.Record.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to publish record")
	}

	return &PutOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.Category, input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("record %q not found in %s", input.ID, input.Category)
		}
		return nil, errors.Wrapf(err, "failed to get record")
	}

	var record codex.Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record data")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) ListByCategory(ctx context.Context, input ListByCategoryInput) (*ListByCategoryOutput, error) {
	if !input.Category.Valid() {
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}

	ids, err := r.client.SMembers(ctx, indexKey(input.Category)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list category index")
	}
	sort.Strings(ids)

	records := make([]*codex.Record, 0, len(ids))
	for _, id := range ids {
		output, err := r.Get(ctx, GetInput{Category: input.Category, ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				// Index entry with no record key; a half-finished
				// publish can leave these behind
				slog.Warn("published-content index out of sync",
					"category", string(input.Category),
					"record_id", id)
				continue
			}
			return nil, err
		}
		records = append(records, output.Record)
	}

	return &ListByCategoryOutput{Records: records}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := recordKey(input.Category, input.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("record %q not found in %s", input.ID, input.Category)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey(input.Category), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete record")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) PutManifest(ctx context.Context, input PutManifestInput) (*PutManifestOutput, error) {
	if input.Manifest == nil {
		return nil, errors.InvalidArgument(errManifestNil)
	}

	manifest := *input.Manifest
	if manifest.PublishedAt.IsZero() {
		manifest.PublishedAt = r.clock.Now()
	}

	data, err := json.Marshal(&manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal manifest")
	}

	if err := r.client.Set(ctx, manifestKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write manifest")
	}

	return &PutManifestOutput{Manifest: &manifest}, nil
}

func (r *redisRepository) GetManifest(ctx context.Context, _ GetManifestInput) (*GetManifestOutput, error) {
	result, err := r.client.Get(ctx, manifestKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no library has been published")
		}
		return nil, errors.Wrapf(err, "failed to get manifest")
	}

	var manifest Manifest
	if err := json.Unmarshal([]byte(result), &manifest); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal manifest")
	}

	return &GetManifestOutput{Manifest: &manifest}, nil
}
