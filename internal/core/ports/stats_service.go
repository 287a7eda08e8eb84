package ports

import (
	"context"
	"time"

	"github.com/delispi/storefront-api/internal/core/domain"
)

// DashboardStats is the month-over-month snapshot shown on the admin
// dashboard. Values are current-calendar-month figures; each change percent
// compares against the previous calendar month.
type DashboardStats struct {
	Orders   domain.MetricSnapshot `json:"orders"`
	Revenue  domain.MetricSnapshot `json:"revenue"`
	Users    domain.MetricSnapshot `json:"users"`
	Products domain.MetricSnapshot `json:"products"`
}

// ChartSeries is a labelled numeric series for the dashboard charts.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ChartData bundles the six-month sales series (oldest to newest, ending at
// the current month, zero-filled) and the top-category distribution.
type ChartData struct {
	Sales      ChartSeries `json:"sales"`
	Categories ChartSeries `json:"categories"`
}

type StatsService interface {
	Dashboard(ctx context.Context, now time.Time) (*DashboardStats, error)
	Charts(ctx context.Context, now time.Time) (*ChartData, error)
}
