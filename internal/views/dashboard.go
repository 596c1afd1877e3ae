package views

import (
	"time"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// DailyCount is one bar of the bookings-per-day chart.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardSummary is the landing-page projection: headline counters,
// revenue from completed stays, plus the trailing seven days of booking
// volume.
type DashboardSummary struct {
	TotalBookings int          `json:"total_bookings"`
	Upcoming      int          `json:"upcoming"`
	Ongoing       int          `json:"ongoing"`
	Completed     int          `json:"completed"`
	Cancelled     int          `json:"cancelled"`
	TotalRevenue  float64      `json:"total_revenue"`
	Daily         []DailyCount `json:"daily"`
}

// BuildDashboardSummary derives the dashboard from the raw booking dump.
// Daily buckets cover the seven days ending at now, oldest first; bookings
// created outside that window are counted in the totals only.
func BuildDashboardSummary(data owner.DashboardData, now time.Time) DashboardSummary {
	buckets := BucketBookings(data.AllBookings, now, "")

	summary := DashboardSummary{
		TotalBookings: len(data.AllBookings),
		Upcoming:      len(buckets.Upcoming),
		Ongoing:       len(buckets.Ongoing),
		Completed:     len(buckets.Completed),
		Cancelled:     len(buckets.Cancelled),
	}
	// Revenue counts settled stays only; pending and cancelled bookings
	// never contribute.
	for _, b := range data.AllBookings {
		if b.BookingStatus == owner.BookingCompleted {
			summary.TotalRevenue += b.TotalPrice
		}
	}

	daily := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		daily[now.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	for _, b := range data.AllBookings {
		day := b.CreatedAt.Format("2006-01-02")
		if _, ok := daily[day]; ok {
			daily[day]++
		}
	}
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		summary.Daily = append(summary.Daily, DailyCount{Date: day, Count: daily[day]})
	}
	return summary
}
