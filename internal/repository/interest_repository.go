package repository

import (
	"context"
	"encoding/json"
	"time"

	"careerready_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	interestCacheKey = "interests:all"
	interestCacheTTL = 5 * time.Minute
)

type InterestRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewInterestRepository(db *gorm.DB, rdb *redis.Client) *InterestRepository {
	return &InterestRepository{DB: db, Redis: rdb}
}

// FindAllNames returns the vocabulary in insertion order, served from Redis
// when the cache is warm. A cache failure falls through to MySQL.
func (r *InterestRepository) FindAllNames(ctx context.Context) ([]string, error) {
	if r.Redis != nil {
		if cached, err := r.Redis.Get(ctx, interestCacheKey).Result(); err == nil {
			var names []string
			if json.Unmarshal([]byte(cached), &names) == nil {
				return names, nil
			}
		}
	}

	var interests []model.Interest
	if err := r.DB.Order("created_at ASC").Find(&interests).Error; err != nil {
		return nil, err
	}

	names := make([]string, len(interests))
	for i, interest := range interests {
		names[i] = interest.Name
	}

	if r.Redis != nil {
		if data, err := json.Marshal(names); err == nil {
			r.Redis.Set(ctx, interestCacheKey, data, interestCacheTTL)
		}
	}

	return names, nil
}

// AppendMissing adds any tags not yet in the vocabulary. Append-only: the
// vocabulary never shrinks.
func (r *InterestRepository) AppendMissing(ctx context.Context, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	known, err := r.FindAllNames(ctx)
	if err != nil {
		return err
	}
	knownSet := make(map[string]bool, len(known))
	for _, name := range known {
		knownSet[name] = true
	}

	added := false
	for _, tag := range tags {
		if tag == "" || knownSet[tag] {
			continue
		}
		if err := r.DB.Create(&model.Interest{Name: tag}).Error; err != nil {
			return err
		}
		knownSet[tag] = true
		added = true
	}

	if added && r.Redis != nil {
		r.Redis.Del(ctx, interestCacheKey)
	}
	return nil
}
