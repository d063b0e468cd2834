package classrooms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listCacheKey = "classrooms:all"
	listCacheTTL = 2 * time.Minute
)

// Service handles business logic for classrooms. The full list is cached in
// Redis because it is read by every role on nearly every screen and changes
// rarely; the cache degrades to plain reads when Redis is unavailable.
type Service struct {
	repo  *Repository
	cache *redis.Client
}

// NewService creates a new classrooms service with optional Redis caching
func NewService(repo *Repository, redisAddr, redisPassword string, redisDB int) *Service {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v. Classroom caching disabled.", err)
		rdb = nil
	}

	return &Service{
		repo:  repo,
		cache: rdb,
	}
}

// List retrieves all classrooms, from cache when possible
func (s *Service) List(ctx context.Context) ([]Classroom, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listCacheKey).Result()
		if err == nil {
			var classrooms []Classroom
			if err := json.Unmarshal([]byte(cached), &classrooms); err == nil {
				return classrooms, nil
			}
		}
	}

	classrooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(classrooms); err == nil {
			s.cache.Set(ctx, listCacheKey, data, listCacheTTL)
		}
	}

	return classrooms, nil
}

// Get retrieves a single classroom
func (s *Service) Get(ctx context.Context, id string) (*Classroom, error) {
	return s.repo.GetByID(ctx, id)
}

// Create creates a classroom and invalidates the list cache
func (s *Service) Create(ctx context.Context, name, section string, year int) (*Classroom, error) {
	cr, err := s.repo.Create(ctx, name, section, year)
	if err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return cr, nil
}

// Update updates a classroom and invalidates the list cache
func (s *Service) Update(ctx context.Context, id string, name, section *string, year *int) (*Classroom, error) {
	cr, err := s.repo.Update(ctx, id, name, section, year)
	if err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return cr, nil
}

// Delete deletes a classroom and invalidates the list cache
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *Service) invalidateList(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
			log.Printf("Error invalidating classroom cache: %v", err)
		}
	}
}

// Health reports cache availability for the health endpoint
func (s *Service) Health(ctx context.Context) string {
	if s.cache == nil {
		return "disabled"
	}
	if err := s.cache.Ping(ctx).Err(); err != nil {
		return fmt.Sprintf("down: %v", err)
	}
	return "up"
}
