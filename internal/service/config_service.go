package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

const (
	systemName    = "Soran Institute API"
	systemVersion = "1.0.0"
	apiVersion    = "v1"
)

// recentDateLimit caps how many distinct dates the config payload carries.
const recentDateLimit = 30

// ConfigService derives the distinct filter values clients need to populate
// their level/group/course/date selectors.
type ConfigService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewConfigService constructs the config service.
func NewConfigService(store repository.Store, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{store: store, logger: logger}
}

// Config returns distinct sorted levels, groups and courses plus the most
// recent distinct attendance dates.
func (s *ConfigService) Config(ctx context.Context) (*dto.ConfigResponse, error) {
	students, err := s.store.ReadStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load config values")
	}
	attendance, err := s.store.ReadAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load config values")
	}

	levels := make(map[string]struct{})
	groups := make(map[string]struct{})
	for _, student := range students {
		levels[student.Level] = struct{}{}
		groups[student.Group] = struct{}{}
	}

	courses := make(map[string]struct{})
	dateSet := make(map[string]struct{})
	for _, record := range attendance {
		course := record.Course
		if course == "" {
			course = record.CourseName
		}
		if course != "" {
			courses[course] = struct{}{}
		}
		dateSet[record.Date] = struct{}{}
	}

	dates := sortedKeys(dateSet)
	// newest first, capped
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
	if len(dates) > recentDateLimit {
		dates = dates[:recentDateLimit]
	}

	return &dto.ConfigResponse{
		Success: true,
		Config: dto.FilterConfig{
			Levels:      sortedKeys(levels),
			Groups:      sortedKeys(groups),
			Courses:     sortedKeys(courses),
			RecentDates: dates,
			SystemInfo: dto.SystemInfo{
				Name:       systemName,
				Version:    systemVersion,
				APIVersion: apiVersion,
			},
		},
		Timestamp: models.Now(),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
