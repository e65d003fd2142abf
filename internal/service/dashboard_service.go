package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const statsCacheTTL = time.Minute

// DashboardStats is the aggregate summary shown on the dashboard.
type DashboardStats struct {
	TotalExams         int64   `json:"totalExams"`
	AvgScore           float64 `json:"avgScore"`
	StudyHoursThisWeek float64 `json:"studyHoursThisWeek"`
	Streak             int     `json:"streak"`
}

type DashboardService struct {
	ExamRepo *repository.ExamRepository
	LogRepo  *repository.LogRepository
	Redis    *redis.Client

	// now is swappable for streak tests.
	now func() time.Time
}

func NewDashboardService(examRepo *repository.ExamRepository, logRepo *repository.LogRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{
		ExamRepo: examRepo,
		LogRepo:  logRepo,
		Redis:    rdb,
		now:      time.Now,
	}
}

// Stats aggregates exam and study-log figures for one user, cached briefly in
// Redis. Stale reads within the TTL are acceptable for a dashboard.
func (s *DashboardService) Stats(ctx context.Context, userID string) (*DashboardStats, error) {
	cacheKey := fmt.Sprintf("dashboard:stats:%s", userID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	total, err := s.ExamRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	avg, err := s.ExamRepo.AverageScore(userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	weekStart := today.AddDate(0, 0, -6).Format("2006-01-02")
	weekLogs, err := s.LogRepo.FindByUserSince(userID, weekStart)
	if err != nil {
		return nil, err
	}
	var weekHours float64
	for _, l := range weekLogs {
		weekHours += l.Hours
	}

	logs, err := s.LogRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalExams:         total,
		AvgScore:           math.Round(avg*100) / 100,
		StudyHoursThisWeek: weekHours,
		Streak:             streakLength(logs, today),
	}

	if s.Redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, cacheKey, data, statsCacheTTL)
		}
	}
	return stats, nil
}

// streakLength counts consecutive logged days ending today or yesterday. A
// day with zero hours does not extend the streak.
func streakLength(logs []model.DailyLog, today time.Time) int {
	logged := make(map[string]bool, len(logs))
	for _, l := range logs {
		if l.Hours > 0 {
			logged[l.Date] = true
		}
	}

	day := today
	if !logged[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for logged[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LogHours records study hours for a day, replacing any earlier entry for the
// same day, and invalidates the cached stats.
func (s *DashboardService) LogHours(ctx context.Context, userID, date string, hours float64) (*model.DailyLog, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, util.ErrInvalidDate
	}
	log := &model.DailyLog{UserID: userID, Date: date, Hours: hours}
	if err := s.LogRepo.Upsert(log); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		s.Redis.Del(ctx, fmt.Sprintf("dashboard:stats:%s", userID))
	}
	return log, nil
}

func (s *DashboardService) LogsForUser(userID string) ([]model.DailyLog, error) {
	return s.LogRepo.FindByUserID(userID)
}
