package characterdraft

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-content/internal/redis"
)

const (
	draftKeyPrefix      = "draft:"
	playerMappingPrefix = "draft:player:"

	// DefaultTTL applies to drafts without an explicit expiry
	DefaultTTL = 24 * time.Hour

	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

// RedisConfig contains configuration for the Redis draft repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL overrides DefaultTTL when positive
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed character draft repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// ttlFor returns the remaining lifetime of draft
func (r *redisRepository) ttlFor(draft *entities.CharacterDraft) (time.Duration, error) {
	if draft.ExpiresAt <= 0 {
		return r.ttl, nil
	}
	ttl := time.Until(time.Unix(draft.ExpiresAt, 0))
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ttl, err := r.ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	playerKey := playerMappingPrefix + input.Draft.PlayerID
	existingDraftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing draft")
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()

	// A player keeps a single draft; the previous one is replaced
	if existingDraftID != "" && existingDraftID != input.Draft.ID {
		pipe.Del(ctx, draftKeyPrefix+existingDraftID)
	}

	pipe.Set(ctx, draftKeyPrefix+input.Draft.ID, data, ttl)
	pipe.Set(ctx, playerKey, input.Draft.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID).
				WithMeta("draft_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft entities.CharacterDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	playerKey := playerMappingPrefix + input.PlayerID
	draftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft found for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player draft mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		// The draft expired; drop the dangling mapping
		if errors.IsNotFound(err) {
			r.client.Del(ctx, playerKey)
		}
		return nil, err
	}

	return &GetByPlayerIDOutput{Draft: getOutput.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	key := draftKeyPrefix + input.Draft.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID).
			WithMeta("draft_id", input.Draft.ID)
	}

	ttl, err := r.ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if getOutput.Draft.PlayerID != "" {
		pipe.Del(ctx, playerMappingPrefix+getOutput.Draft.PlayerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}
