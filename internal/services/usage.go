package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/tonecraft-ai/tonecraft-api/internal/models"
)

// UsageService records and aggregates boundary LLM usage. A nil db turns
// every call into a no-op so generation keeps working without persistence.
type UsageService struct {
	db *gorm.DB
}

func NewUsageService(db *gorm.DB) *UsageService {
	return &UsageService{db: db}
}

// LogUsage records one LLM call
func (s *UsageService) LogUsage(log *models.LLMUsageLog) error {
	if s.db == nil {
		return nil
	}
	return s.db.Create(log).Error
}

// GetUsageStats retrieves aggregated LLM usage statistics
func (s *UsageService) GetUsageStats(from, to time.Time) (*UsageStats, error) {
	var stats UsageStats

	if s.db == nil {
		return &stats, nil
	}

	query := s.db.Model(&models.LLMUsageLog{})

	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at <= ?", to)
	}

	if err := query.Select(
		"COUNT(*) as total_requests",
		"COALESCE(SUM(total_tokens), 0) as total_tokens_used",
		"COALESCE(SUM(input_tokens), 0) as total_input_tokens",
		"COALESCE(SUM(output_tokens), 0) as total_output_tokens",
		"COALESCE(SUM(cost_usd), 0) as total_cost_usd",
		"COALESCE(SUM(CASE WHEN fallback THEN 1 ELSE 0 END), 0) as fallback_requests",
		"COALESCE(AVG(duration_ms), 0) as avg_duration_ms",
	).Scan(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

type UsageStats struct {
	TotalRequests     int64   `json:"total_requests"`
	TotalTokensUsed   int64   `json:"total_tokens_used"`
	TotalInputTokens  int64   `json:"total_input_tokens"`
	TotalOutputTokens int64   `json:"total_output_tokens"`
	TotalCostUSD      float64 `json:"total_cost_usd"`
	FallbackRequests  int64   `json:"fallback_requests"`
	AvgDurationMS     float64 `json:"avg_duration_ms"`
}
