package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

const (
	salesChartMonths = 6
	categoryChartTop = 4
)

// StatsService computes the admin dashboard aggregates. It holds no state of
// its own: every call re-reads the store, so two concurrent calls may differ
// while writes are landing, and that is fine.
type StatsService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewStatsService(orders ports.OrderRepository, users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{orders: orders, users: users, products: products, logger: logger}
}

// Dashboard returns current-calendar-month counts/sums for orders, revenue,
// users and products, each with its change percent against the previous
// month. The eight reads are independent and run concurrently; the snapshot
// is assembled only after all of them succeed, so a store failure aborts the
// whole request rather than returning a torn aggregate.
func (s *StatsService) Dashboard(ctx context.Context, now time.Time) (*ports.DashboardStats, error) {
	cur := domain.MonthWindow(now)
	prev := cur.Previous()

	var (
		curOrders, prevOrders     int64
		curUsers, prevUsers       int64
		curProducts, prevProducts int64
		curRevenue, prevRevenue   float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		curOrders, err = s.orders.CountCreatedBetween(gctx, cur.Start, cur.End)
		return
	})
	g.Go(func() (err error) {
		prevOrders, err = s.orders.CountCreatedBetween(gctx, prev.Start, prev.End)
		return
	})
	g.Go(func() (err error) {
		curRevenue, err = s.orders.SumCompletedBetween(gctx, cur.Start, cur.End)
		return
	})
	g.Go(func() (err error) {
		prevRevenue, err = s.orders.SumCompletedBetween(gctx, prev.Start, prev.End)
		return
	})
	g.Go(func() (err error) {
		curUsers, err = s.users.CountCreatedBetween(gctx, cur.Start, cur.End)
		return
	})
	g.Go(func() (err error) {
		prevUsers, err = s.users.CountCreatedBetween(gctx, prev.Start, prev.End)
		return
	})
	g.Go(func() (err error) {
		curProducts, err = s.products.CountCreatedBetween(gctx, cur.Start, cur.End)
		return
	})
	g.Go(func() (err error) {
		prevProducts, err = s.products.CountCreatedBetween(gctx, prev.Start, prev.End)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &ports.DashboardStats{
		Orders: domain.MetricSnapshot{
			Value:         float64(curOrders),
			ChangePercent: domain.ChangePercent(float64(curOrders), float64(prevOrders)),
		},
		Revenue: domain.MetricSnapshot{
			Value:         curRevenue,
			ChangePercent: domain.ChangePercent(curRevenue, prevRevenue),
		},
		Users: domain.MetricSnapshot{
			Value:         float64(curUsers),
			ChangePercent: domain.ChangePercent(float64(curUsers), float64(prevUsers)),
		},
		Products: domain.MetricSnapshot{
			Value:         float64(curProducts),
			ChangePercent: domain.ChangePercent(float64(curProducts), float64(prevProducts)),
		},
	}, nil
}

// Charts returns the last six months of completed-order revenue, oldest to
// newest ending at the month containing now, with months that saw no
// completed orders reported as zero, plus the top product categories.
func (s *StatsService) Charts(ctx context.Context, now time.Time) (*ports.ChartData, error) {
	labels := make([]string, salesChartMonths)
	sales := make([]float64, salesChartMonths)

	// Step from the first of the month so AddDate never normalizes a day
	// 29-31 "now" into the wrong month.
	base := domain.MonthWindow(now).Start

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < salesChartMonths; i++ {
		w := domain.MonthWindow(base.AddDate(0, i-(salesChartMonths-1), 0))
		labels[i] = w.Start.Format("Jan")

		idx := i
		g.Go(func() (err error) {
			sales[idx], err = s.orders.SumCompletedBetween(gctx, w.Start, w.End)
			return
		})
	}

	var byCategory []ports.CategoryCount
	g.Go(func() (err error) {
		byCategory, err = s.products.CountByCategory(gctx, categoryChartTop)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("chart data: %w", err)
	}

	catLabels := make([]string, 0, len(byCategory))
	catData := make([]float64, 0, len(byCategory))
	for _, c := range byCategory {
		catLabels = append(catLabels, c.Name)
		catData = append(catData, float64(c.Count))
	}

	s.logger.Debug().Int("months", salesChartMonths).Int("categories", len(byCategory)).Msg("chart data computed")

	return &ports.ChartData{
		Sales:      ports.ChartSeries{Labels: labels, Data: sales},
		Categories: ports.ChartSeries{Labels: catLabels, Data: catData},
	}, nil
}
