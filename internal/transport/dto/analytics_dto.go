package dto

// WeekBucket is one 7-day window of the volume series. WeekStart is the
// bucket's start date (YYYY-MM-DD) and doubles as its chart label.
type WeekBucket struct {
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
}

// AnalyticsSummary is the aggregator's entire interface to any chart or
// rendering layer: flat counts plus two small series, no references back
// into live records.
type AnalyticsSummary struct {
	Total              int            `json:"total"`
	InterviewCount     int            `json:"interview_count"`
	SelectedCount      int            `json:"selected_count"`
	SuccessRate        float64        `json:"success_rate"`
	ThisWeekCount      int            `json:"this_week_count"`
	StatusDistribution map[string]int `json:"status_distribution"`
	WeeklyVolume       []WeekBucket   `json:"weekly_volume"`
}
