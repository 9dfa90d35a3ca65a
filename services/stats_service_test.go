package services

import (
	"testing"
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed reference instants, away from any DST transition
var (
	julyAfternoon = time.Date(2025, 7, 15, 14, 37, 22, 0, time.Local)
	julyMidMonth  = time.Date(2025, 7, 15, 12, 0, 0, 0, time.Local)
)

func TestDashboardDayWindowHas24HourlyBuckets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	report, err := svc.BuildReport("day", julyAfternoon, UsersFromOrders)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RangeDays)
	require.Len(t, report.OrdersByDay, 24)
	require.Len(t, report.RevenueByDay, 24)
	require.Len(t, report.UsersByDay, 24)

	// labels ascend in exact one-hour steps, last bucket = current hour
	prev, err := time.Parse(time.RFC3339, report.OrdersByDay[0].Date)
	require.NoError(t, err)
	for i := 1; i < 24; i++ {
		cur, err := time.Parse(time.RFC3339, report.OrdersByDay[i].Date)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, cur.Sub(prev), "bucket %d", i)
		prev = cur
	}
	wantLast := time.Date(2025, 7, 15, 14, 0, 0, 0, time.Local)
	assert.Equal(t, wantLast.Format(time.RFC3339), report.OrdersByDay[23].Date)

	// empty DB zero-fills every series
	for i := 0; i < 24; i++ {
		assert.Zero(t, report.OrdersByDay[i].Count)
		assert.Zero(t, report.RevenueByDay[i].Total)
		assert.Zero(t, report.UsersByDay[i].Count)
	}
}

func TestDashboardWeekAndMonthWindows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	week, err := svc.BuildReport("week", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)
	assert.Equal(t, 7, week.RangeDays)
	require.Len(t, week.OrdersByDay, 7)
	assert.Equal(t, "2025-07-09", week.OrdersByDay[0].Date)
	assert.Equal(t, "2025-07-15", week.OrdersByDay[6].Date)

	month, err := svc.BuildReport("month", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)
	assert.Equal(t, 30, month.RangeDays)
	require.Len(t, month.OrdersByDay, 30)
	assert.Equal(t, "2025-06-16", month.OrdersByDay[0].Date)
	assert.Equal(t, "2025-07-15", month.OrdersByDay[29].Date)
}

func TestDashboardUnknownRangeDefaultsToMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	report, err := svc.BuildReport("fortnight", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)
	assert.Equal(t, 30, report.RangeDays)
	assert.Len(t, report.OrdersByDay, 30)
}

func TestDashboardBucketsOrdersAndRevenue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	day13 := time.Date(2025, 7, 13, 10, 30, 0, 0, time.Local)
	day14 := time.Date(2025, 7, 14, 21, 5, 0, 0, time.Local)
	seedOrderAt(t, db, day13, entity.OrderStatusDelivered, 5990, "a@example.com", "")
	seedOrderAt(t, db, day13, entity.OrderStatusPending, 1500, "b@example.com", "")
	seedOrderAt(t, db, day14, entity.OrderStatusConfirmed, 8000, "a@example.com", "")
	// outside the 7-day window
	seedOrderAt(t, db, time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local),
		entity.OrderStatusDelivered, 99999, "old@example.com", "")

	report, err := svc.BuildReport("week", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)

	byDate := map[string]int64{}
	revByDate := map[string]float64{}
	for i := range report.OrdersByDay {
		byDate[report.OrdersByDay[i].Date] = report.OrdersByDay[i].Count
		revByDate[report.RevenueByDay[i].Date] = report.RevenueByDay[i].Total
	}

	assert.Equal(t, int64(2), byDate["2025-07-13"])
	assert.Equal(t, int64(1), byDate["2025-07-14"])
	assert.Equal(t, int64(0), byDate["2025-07-12"])
	assert.InDelta(t, 7490.0, revByDate["2025-07-13"], 0.001)
	assert.InDelta(t, 8000.0, revByDate["2025-07-14"], 0.001)
}

func TestDashboardRevenueExcludesCancelledOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	at := time.Date(2025, 7, 14, 13, 0, 0, 0, time.Local)
	seedOrderAt(t, db, at, entity.OrderStatusDelivered, 100, "a@example.com", "")
	seedOrderAt(t, db, at, entity.OrderStatusCancelled, 5000, "b@example.com", "")

	report, err := svc.BuildReport("week", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)

	var ordersOn14 int64
	var revenueOn14 float64
	for i := range report.OrdersByDay {
		if report.OrdersByDay[i].Date == "2025-07-14" {
			ordersOn14 = report.OrdersByDay[i].Count
			revenueOn14 = report.RevenueByDay[i].Total
		}
	}
	// the cancelled order still counts as an order, just not as revenue
	assert.Equal(t, int64(2), ordersOn14)
	assert.InDelta(t, 100.0, revenueOn14, 0.001)
}

func TestDashboardDistinctCustomersPerBucket(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	at := time.Date(2025, 7, 14, 13, 0, 0, 0, time.Local)
	// same email twice counts once; no email falls back to phone
	seedOrderAt(t, db, at, entity.OrderStatusPending, 10, "repeat@example.com", "")
	seedOrderAt(t, db, at, entity.OrderStatusPending, 20, "repeat@example.com", "+56911111111")
	seedOrderAt(t, db, at, entity.OrderStatusPending, 30, "", "+56922222222")
	seedOrderAt(t, db, at, entity.OrderStatusPending, 40, "", "+56922222222")

	report, err := svc.BuildReport("week", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)

	var usersOn14 int64
	for _, p := range report.UsersByDay {
		if p.Date == "2025-07-14" {
			usersOn14 = p.Count
		}
	}
	assert.Equal(t, int64(2), usersOn14)
}

func TestDashboardStatusDistributionIgnoresWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	inWindow := time.Date(2025, 7, 14, 13, 0, 0, 0, time.Local)
	longAgo := time.Date(2024, 1, 2, 13, 0, 0, 0, time.Local)
	seedOrderAt(t, db, inWindow, entity.OrderStatusPending, 10, "a@example.com", "")
	seedOrderAt(t, db, longAgo, entity.OrderStatusPending, 10, "b@example.com", "")
	seedOrderAt(t, db, longAgo, entity.OrderStatusDelivered, 10, "c@example.com", "")

	report, err := svc.BuildReport("week", julyMidMonth, UsersFromOrders)
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.StatusDistribution[entity.OrderStatusPending])
	assert.Equal(t, int64(1), report.StatusDistribution[entity.OrderStatusDelivered])
}

func TestDashboardTopProductsRanking(t *testing.T) {
	db := setupTestDB(t)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderSvc := NewOrderService(db, orderRepo, catalogRepo)
	svc := NewStatsService(repository.NewStatsRepository(db))

	products := make([]*entity.Product, 0, 6)
	names := []string{"Clásica", "Doble", "Veggie", "Pollo", "Bebida", "Papas"}
	for _, n := range names {
		products = append(products, seedProduct(t, db, n, 1000))
	}

	// quantities: Clásica=7, Doble=6, Veggie=5, Pollo=4, Bebida=3, Papas=2
	for i, p := range products {
		_, err := orderSvc.Create(0, &CreateOrderReq{
			CustomerName:    "Cliente",
			DeliveryAddress: "Calle 1",
			Items:           []OrderItemIn{{ProductID: p.ID, Quantity: 7 - i}},
		})
		require.NoError(t, err)
	}

	report, err := svc.BuildReport("week", time.Now(), UsersFromOrders)
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 5, "capped at five products")
	assert.Equal(t, "Clásica", report.TopProducts[0].ProductName)
	assert.Equal(t, int64(7), report.TopProducts[0].Quantity)
	for i := 1; i < len(report.TopProducts); i++ {
		assert.GreaterOrEqual(t,
			report.TopProducts[i-1].Quantity, report.TopProducts[i].Quantity)
	}
	for _, row := range report.TopProducts {
		assert.NotEqual(t, "Papas", row.ProductName)
	}
}

func TestDashboardSignupModeCountsAccounts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	u1 := entity.User{Email: "one@example.com", Password: "x", Role: "customer"}
	u1.CreatedAt = time.Date(2025, 7, 13, 9, 0, 0, 0, time.Local)
	u2 := entity.User{Email: "two@example.com", Password: "x", Role: "customer"}
	u2.CreatedAt = time.Date(2025, 7, 13, 18, 0, 0, 0, time.Local)
	u3 := entity.User{Email: "old@example.com", Password: "x", Role: "customer"}
	u3.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&u2).Error)
	require.NoError(t, db.Create(&u3).Error)

	// an order in the window must not leak into the signup series
	seedOrderAt(t, db, time.Date(2025, 7, 13, 12, 0, 0, 0, time.Local),
		entity.OrderStatusPending, 10, "buyer@example.com", "")

	report, err := svc.BuildReport("week", julyMidMonth, UsersFromSignups)
	require.NoError(t, err)

	var on13 int64
	var total int64
	for _, p := range report.UsersByDay {
		if p.Date == "2025-07-13" {
			on13 = p.Count
		}
		total += p.Count
	}
	assert.Equal(t, int64(2), on13)
	assert.Equal(t, int64(2), total)
}

func TestUserSignupSeriesZeroFills(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	report, err := svc.UserSignupSeries("week", julyMidMonth)
	require.NoError(t, err)

	assert.Equal(t, 7, report.RangeDays)
	require.Len(t, report.UsersByDay, 7)
	assert.Equal(t, "2025-07-09", report.UsersByDay[0].Date)
	for _, p := range report.UsersByDay {
		assert.Zero(t, p.Count)
	}
}

func TestDashboardDayModeBucketsByHour(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(repository.NewStatsRepository(db))

	now := julyAfternoon // 14:37 local
	seedOrderAt(t, db, time.Date(2025, 7, 15, 14, 10, 0, 0, time.Local),
		entity.OrderStatusPending, 100, "a@example.com", "")
	seedOrderAt(t, db, time.Date(2025, 7, 14, 15, 30, 0, 0, time.Local),
		entity.OrderStatusPending, 200, "b@example.com", "")
	// one hour before the window opens
	seedOrderAt(t, db, time.Date(2025, 7, 14, 14, 30, 0, 0, time.Local),
		entity.OrderStatusPending, 300, "c@example.com", "")

	report, err := svc.BuildReport("day", now, UsersFromOrders)
	require.NoError(t, err)

	var total int64
	for _, p := range report.OrdersByDay {
		total += p.Count
	}
	assert.Equal(t, int64(2), total)

	assert.Equal(t, int64(1), report.OrdersByDay[23].Count, "current hour bucket")
	assert.Equal(t, int64(1), report.OrdersByDay[0].Count, "oldest hour bucket")
}
