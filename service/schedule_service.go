package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

const cacheKeyPrefix = "schedule:v1:"

type ScheduleService struct {
	cache repository.CacheRepository
	ttl   time.Duration
	log   *logrus.Logger
}

// NewScheduleService creates a ScheduleService that memoizes schedules in
// cache for ttl.
func NewScheduleService(cache repository.CacheRepository, ttl time.Duration, log *logrus.Logger) *ScheduleService {
	return &ScheduleService{cache: cache, ttl: ttl, log: log}
}

// Calculate validates params against the service limits and returns the
// amortization schedule, served from cache when possible.
func (s *ScheduleService) Calculate(
	ctx context.Context,
	params domain.LoanParameters,
) (domain.ScheduleResult, error) {

	if err := checkLimits(params); err != nil {
		return domain.ScheduleResult{}, err
	}

	key, err := cacheKey(params)
	if err != nil {
		s.log.Warnf("Failed to derive schedule cache key: %v", err)
		return BuildSchedule(params)
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.ScheduleResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.log.WithField("key", key).Debug("Schedule served from cache")
			return result, nil
		}
		s.log.Warnf("Discarding unreadable cache entry %s", key)
	}

	result, err := BuildSchedule(params)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	// Caching is best effort.
	if encoded, err := json.Marshal(result); err != nil {
		s.log.Warnf("Failed to encode schedule for cache: %v", err)
	} else if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
		s.log.Warnf("Failed to cache schedule: %v", err)
	}

	s.log.WithFields(logrus.Fields{
		"principal":    params.Principal,
		"rate":         params.AnnualRatePct,
		"term":         params.TermMonths,
		"payoff_month": result.PayoffMonth,
	}).Info("Schedule calculated")

	return result, nil
}

// checkLimits applies the service-wide caps on top of ValidateParameters.
func checkLimits(params domain.LoanParameters) error {
	if err := ValidateParameters(params); err != nil {
		return err
	}
	if params.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrInvalidParameters, MaxLoanAmount)
	}
	if params.AnnualRatePct > MaxInterestRate {
		return fmt.Errorf("%w: annual rate exceeds the maximum of %.2f%%", ErrInvalidParameters, MaxInterestRate)
	}
	if params.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", ErrInvalidParameters, MaxTermMonths)
	}
	return nil
}

// cacheKey hashes the parts of params that can influence the schedule, so
// that equivalent requests share an entry.
func cacheKey(params domain.LoanParameters) (string, error) {
	canonical := params
	canonical.Extras = make(map[int]float64, len(params.Extras))
	for month, amount := range params.Extras {
		if month >= 1 && month <= params.TermMonths && amount > 0 {
			canonical.Extras[month] = amount
		}
	}

	recasts := make([]int, 0, len(params.RecastMonths))
	for _, month := range params.RecastMonths {
		if month >= 1 && month < params.TermMonths {
			recasts = append(recasts, month)
		}
	}
	slices.Sort(recasts)
	canonical.RecastMonths = slices.Compact(recasts)

	b, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
