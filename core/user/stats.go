package user

import (
	"time"
)

const (
	recentUsersLimit = 10
	growthMonths     = 6
)

// MonthlyGrowth is the number of users created during one calendar month.
type MonthlyGrowth struct {
	Label string    `json:"month"` // e.g. "Oct 2026"
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// Summary is the admin dashboard statistics view.
type Summary struct {
	TotalUsers        int             `json:"total_users"`
	TotalStudents     int             `json:"total_students"`
	TotalAdmins       int             `json:"total_admins"`
	NewUsersThisMonth int             `json:"new_users_this_month"`
	NewUsersThisWeek  int             `json:"new_users_this_week"`
	RecentUsers       []User          `json:"recent_users"`
	MonthlyGrowth     []MonthlyGrowth `json:"monthly_growth"`
}

// MonthStart returns midnight of the first day of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the most recent Sunday (t's own day if it is a Sunday), in t's location.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// GrowthWindow returns the start of the oldest bucket and the end (exclusive) of the newest one.
func GrowthWindow(now time.Time) (time.Time, time.Time) {
	curr := MonthStart(now)
	return curr.AddDate(0, -(growthMonths - 1), 0), curr.AddDate(0, 1, 0)
}

// Summarize computes the dashboard statistics of users as seen at `now` in `loc`.
// users are expected most recent first; RecentUsers keeps the input order.
// Users with a zero CreatedAt only count towards totals.
func Summarize(users []User, now time.Time, loc *time.Location) Summary {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	monthStart := MonthStart(now)
	weekStart := WeekStart(now)

	sum := Summary{
		TotalUsers:    len(users),
		RecentUsers:   make([]User, 0, recentUsersLimit),
		MonthlyGrowth: make([]MonthlyGrowth, growthMonths),
	}

	// buckets: oldest to newest, ending with the current month
	oldest, _ := GrowthWindow(now)
	for i := range sum.MonthlyGrowth {
		start := oldest.AddDate(0, i, 0)
		sum.MonthlyGrowth[i] = MonthlyGrowth{Label: start.Format("Jan 2006"), Start: start}
	}

	for i, usr := range users {
		if i < recentUsersLimit {
			sum.RecentUsers = append(sum.RecentUsers, usr)
		}

		switch usr.Role {
		case RoleStudent:
			sum.TotalStudents++
		case RoleAdmin:
			sum.TotalAdmins++
		}

		if usr.CreatedAt.IsZero() {
			continue
		}
		if createdSince(usr, monthStart) {
			sum.NewUsersThisMonth++
		}
		if createdSince(usr, weekStart) {
			sum.NewUsersThisWeek++
		}
		for j := range sum.MonthlyGrowth {
			start := sum.MonthlyGrowth[j].Start
			if createdSince(usr, start) && usr.CreatedAt.Before(start.AddDate(0, 1, 0)) {
				sum.MonthlyGrowth[j].Count++
				break
			}
		}
	}
	return sum
}

func createdSince(usr User, t time.Time) bool {
	return !usr.CreatedAt.Before(t)
}
