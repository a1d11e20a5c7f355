package services

import (
	"context"
	"encoding/json"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	"workshop-system/pkg/utils"

	"go.uber.org/zap"
)

const statsCacheTTL = 30 * time.Second

type StatsServiceInterface interface {
	GetStats(ctx context.Context, username, role string) (*dto.StatsDTO, error)
}

type StatsService struct {
	jobRepo repositories.JobRepositoryInterface
	cache   repositories.CacheRepositoryInterface
	logger  *zap.Logger
}

func NewStatsService(jobRepo repositories.JobRepositoryInterface, cache repositories.CacheRepositoryInterface, logger *zap.Logger) StatsServiceInterface {
	return &StatsService{jobRepo: jobRepo, cache: cache, logger: logger}
}

// GetStats returns the dashboard counters: jobs still in the shop, jobs
// finished, and the grand total. Mechanics see only their own workload.
// Results are cached briefly since the dashboard polls.
func (s *StatsService) GetStats(ctx context.Context, username, role string) (*dto.StatsDTO, error) {
	cacheKey := "stats:all"
	mechanicScope := ""
	if role == entities.RoleMechanic {
		mechanicScope = username
		cacheKey = "stats:mechanic:" + username
	}

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var stats dto.StatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	jobs, _, err := s.jobRepo.GetJobs(ctx, mechanicScope, utils.JobFilter{Limit: utils.MaxLimit})
	if err != nil {
		return nil, err
	}

	active, completed := PartitionJobs(jobs)
	stats := &dto.StatsDTO{
		Active:    len(active),
		Completed: len(completed),
		Total:     len(jobs),
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), statsCacheTTL); err != nil {
			s.logger.Warn("failed to cache stats", zap.Error(err))
		}
	}
	return stats, nil
}
