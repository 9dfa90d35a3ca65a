package services

import (
	"strings"
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"
)

// StatsService builds the admin dashboard reports: five aligned series
// over a rolling window of 24 hours (range=day) or 7/30 calendar days.
type StatsService struct {
	Repo *repository.StatsRepository
}

func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{Repo: repo}
}

// UserSeriesMode selects what usersByDay counts.
type UserSeriesMode int

const (
	// distinct customers derived from orders in the window
	// (identity = email if non-empty, else phone)
	UsersFromOrders UserSeriesMode = iota
	// newly registered accounts, keyed by account-creation time
	UsersFromSignups
)

// ----- bucketing -----

// bucketWindow is the one bucketing routine every series shares: a fixed
// number of fixed-width buckets ending at "now"'s bucket, in now's zone.
type bucketWindow struct {
	start  time.Time
	count  int
	step   time.Duration
	days   int
	hourly bool
}

// newBucketWindow normalizes the range parameter (unknown values fall
// back to the 30-day window) and anchors the window at now.
func newBucketWindow(rangeParam string, now time.Time) bucketWindow {
	days := 30
	switch strings.ToLower(rangeParam) {
	case "day":
		days = 1
	case "week":
		days = 7
	}

	loc := now.Location()
	if days == 1 {
		// rolling 24 hours ending at the current wall-clock hour
		cur := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, loc)
		return bucketWindow{
			start:  cur.Add(-23 * time.Hour),
			count:  24,
			step:   time.Hour,
			days:   days,
			hourly: true,
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return bucketWindow{
		start: today.AddDate(0, 0, -(days - 1)),
		count: days,
		step:  24 * time.Hour,
		days:  days,
	}
}

// index maps a record timestamp to its bucket by integer time delta.
// Re-deriving the key from the row would break the fixed bucket count
// across daylight-saving transitions; the delta never does.
func (w bucketWindow) index(t time.Time) (int, bool) {
	d := t.In(w.start.Location()).Sub(w.start)
	if d < 0 {
		return 0, false
	}
	idx := int(d / w.step)
	if idx >= w.count {
		return 0, false
	}
	return idx, true
}

// label is the bucket key: RFC3339 of the truncated hour, or the calendar
// date for day buckets.
func (w bucketWindow) label(i int) string {
	if w.hourly {
		return w.start.Add(time.Duration(i) * w.step).Format(time.RFC3339)
	}
	return w.start.AddDate(0, 0, i).Format("2006-01-02")
}

// ----- report shapes -----

type SeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type RevenuePoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type DashboardReport struct {
	OrdersByDay        []SeriesPoint                   `json:"ordersByDay"`
	RevenueByDay       []RevenuePoint                  `json:"revenueByDay"`
	StatusDistribution map[string]int64                `json:"statusDistribution"`
	TopProducts        []repository.ProductQuantityRow `json:"topProducts"`
	UsersByDay         []SeriesPoint                   `json:"usersByDay"`
	RangeDays          int                             `json:"rangeDays"`
}

type UserStatsReport struct {
	UsersByDay []SeriesPoint `json:"usersByDay"`
	RangeDays  int           `json:"rangeDays"`
}

// ----- building -----

// BuildReport computes the full five-series dashboard as of now.
func (s *StatsService) BuildReport(rangeParam string, now time.Time, mode UserSeriesMode) (*DashboardReport, error) {
	w := newBucketWindow(rangeParam, now)

	orders, err := s.Repo.FindOrdersInRange(w.start, now)
	if err != nil {
		return nil, err
	}

	orderCounts := make([]int64, w.count)
	revenue := make([]float64, w.count)
	customers := make([]map[string]struct{}, w.count)

	for _, o := range orders {
		idx, ok := w.index(o.CreatedAt)
		if !ok {
			continue
		}
		orderCounts[idx]++
		if o.Status != entity.OrderStatusCancelled {
			revenue[idx] += o.TotalAmount.InexactFloat64()
		}
		id := o.CustomerEmail
		if id == "" {
			id = o.CustomerPhone
		}
		if customers[idx] == nil {
			customers[idx] = make(map[string]struct{})
		}
		customers[idx][id] = struct{}{}
	}

	usersByDay := make([]SeriesPoint, w.count)
	switch mode {
	case UsersFromSignups:
		signups, err := s.signupCounts(w, now)
		if err != nil {
			return nil, err
		}
		usersByDay = signups
	default:
		for i := 0; i < w.count; i++ {
			usersByDay[i] = SeriesPoint{Date: w.label(i), Count: int64(len(customers[i]))}
		}
	}

	statusDist, err := s.Repo.CountOrdersByStatus()
	if err != nil {
		return nil, err
	}

	topProducts, err := s.Repo.TopProductsByQuantity(w.start, now, 5)
	if err != nil {
		return nil, err
	}
	if topProducts == nil {
		topProducts = []repository.ProductQuantityRow{}
	}

	report := &DashboardReport{
		OrdersByDay:        make([]SeriesPoint, w.count),
		RevenueByDay:       make([]RevenuePoint, w.count),
		StatusDistribution: statusDist,
		TopProducts:        topProducts,
		UsersByDay:         usersByDay,
		RangeDays:          w.days,
	}
	for i := 0; i < w.count; i++ {
		label := w.label(i)
		report.OrdersByDay[i] = SeriesPoint{Date: label, Count: orderCounts[i]}
		report.RevenueByDay[i] = RevenuePoint{Date: label, Total: revenue[i]}
	}
	return report, nil
}

// UserSignupSeries is the dedicated user-stats report: signups per bucket.
func (s *StatsService) UserSignupSeries(rangeParam string, now time.Time) (*UserStatsReport, error) {
	w := newBucketWindow(rangeParam, now)
	usersByDay, err := s.signupCounts(w, now)
	if err != nil {
		return nil, err
	}
	return &UserStatsReport{UsersByDay: usersByDay, RangeDays: w.days}, nil
}

func (s *StatsService) signupCounts(w bucketWindow, now time.Time) ([]SeriesPoint, error) {
	stamps, err := s.Repo.FindSignupsInRange(w.start, now)
	if err != nil {
		return nil, err
	}
	counts := make([]int64, w.count)
	for _, ts := range stamps {
		if idx, ok := w.index(ts); ok {
			counts[idx]++
		}
	}
	out := make([]SeriesPoint, w.count)
	for i := 0; i < w.count; i++ {
		out[i] = SeriesPoint{Date: w.label(i), Count: counts[i]}
	}
	return out, nil
}
