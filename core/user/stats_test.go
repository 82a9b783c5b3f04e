package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func newUser(id string, role Role, createdAt time.Time) User {
	return User{ID: id, Name: "User " + id, Role: role, CreatedAt: createdAt}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "wednesday", now: at(2026, time.October, 21, 15), want: at(2026, time.October, 18, 0)},
		{name: "sunday", now: at(2026, time.October, 18, 9), want: at(2026, time.October, 18, 0)},
		{name: "saturday", now: at(2026, time.October, 24, 23), want: at(2026, time.October, 18, 0)},
		{name: "across month", now: at(2026, time.October, 2, 12), want: at(2026, time.September, 27, 0)},
		{name: "across year", now: at(2027, time.January, 1, 12), want: at(2026, time.December, 27, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(WeekStart(tt.now)), "WeekStart() = %v, want %v", WeekStart(tt.now), tt.want)
		})
	}
}

func TestSummarize_empty(t *testing.T) {
	sum := Summarize(nil, at(2026, time.October, 21, 15), time.UTC)

	assert.Equal(t, 0, sum.TotalUsers)
	assert.Equal(t, 0, sum.TotalStudents)
	assert.Equal(t, 0, sum.TotalAdmins)
	assert.Equal(t, 0, sum.NewUsersThisMonth)
	assert.Equal(t, 0, sum.NewUsersThisWeek)
	assert.NotNil(t, sum.RecentUsers)
	assert.Empty(t, sum.RecentUsers)

	require.Len(t, sum.MonthlyGrowth, 6)
	labels := make([]string, 0, 6)
	for _, g := range sum.MonthlyGrowth {
		assert.Equal(t, 0, g.Count)
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"May 2026", "Jun 2026", "Jul 2026", "Aug 2026", "Sep 2026", "Oct 2026"}, labels)
}

func TestSummarize(t *testing.T) {
	now := at(2026, time.October, 21, 15) // Wednesday
	users := []User{
		newUser("future", RoleStudent, at(2026, time.November, 5, 10)),
		newUser("today", RoleStudent, at(2026, time.October, 21, 8)),
		newUser("sunday", RoleAdmin, at(2026, time.October, 18, 0)),
		newUser("saturday", RoleStudent, at(2026, time.October, 17, 23)),
		newUser("first", "teacher", at(2026, time.October, 1, 0)),
		newUser("september", RoleStudent, at(2026, time.September, 30, 23)),
		newUser("may", RoleAdmin, at(2026, time.May, 1, 0)),
		newUser("april", RoleStudent, at(2026, time.April, 30, 23)),
		newUser("nodate", RoleStudent, time.Time{}),
	}

	sum := Summarize(users, now, time.UTC)

	assert.Equal(t, 9, sum.TotalUsers)
	assert.Equal(t, 6, sum.TotalStudents)
	assert.Equal(t, 2, sum.TotalAdmins)
	assert.Equal(t, sum.TotalUsers, sum.TotalStudents+sum.TotalAdmins+1, "other roles only count in totals")

	assert.Equal(t, 5, sum.NewUsersThisMonth) // future, today, sunday, saturday, first
	assert.Equal(t, 3, sum.NewUsersThisWeek)  // future, today, sunday (inclusive lower bound)

	counts := make([]int, 0, 6)
	for _, g := range sum.MonthlyGrowth {
		counts = append(counts, g.Count)
	}
	// May..Oct; "future" falls after the window, "april" before it
	assert.Equal(t, []int{1, 0, 0, 0, 1, 4}, counts)
	assert.Equal(t, users, sum.RecentUsers)
}

func TestSummarize_weekSpansMonthBoundary(t *testing.T) {
	now := at(2026, time.October, 2, 12) // Friday, week started on Sep 27
	users := []User{
		newUser("1", RoleStudent, at(2026, time.September, 28, 10)),
		newUser("2", RoleStudent, at(2026, time.September, 29, 10)),
	}

	sum := Summarize(users, now, time.UTC)

	assert.Equal(t, 2, sum.NewUsersThisWeek)
	assert.Equal(t, 0, sum.NewUsersThisMonth)
}

func TestSummarize_localTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 22:00 UTC on Sep 30 is already Oct 1 in UTC+3
	now := at(2026, time.October, 15, 12)
	users := []User{newUser("1", RoleStudent, at(2026, time.September, 30, 22))}

	assert.Equal(t, 1, Summarize(users, now, loc).NewUsersThisMonth)
	assert.Equal(t, 0, Summarize(users, now, time.UTC).NewUsersThisMonth)
}

func TestSummarize_recentUsersLimit(t *testing.T) {
	now := at(2026, time.October, 21, 15)
	users := make([]User, 0, 15)
	for i := 0; i < 15; i++ {
		users = append(users, newUser(fmt.Sprint(i), RoleStudent, now.Add(-time.Duration(i)*time.Hour)))
	}

	sum := Summarize(users, now, time.UTC)

	assert.Equal(t, users[:10], sum.RecentUsers)
}

func TestSummarize_properties(t *testing.T) {
	nows := []time.Time{
		at(2026, time.January, 3, 1),
		at(2026, time.March, 31, 23),
		at(2026, time.October, 21, 15),
		at(2026, time.December, 27, 0),
	}
	// one user every 61 hours over ~2 years
	users := make([]User, 0, 300)
	roles := []Role{RoleStudent, RoleAdmin, "teacher", ""}
	base := at(2025, time.January, 1, 0)
	for i := 0; i < 300; i++ {
		users = append(users, newUser(fmt.Sprint(i), roles[i%len(roles)], base.Add(time.Duration(i*61)*time.Hour)))
	}

	for _, now := range nows {
		t.Run(now.Format(time.RFC3339), func(t *testing.T) {
			sum := Summarize(users, now, time.UTC)

			var others, month, week, inWindow int
			from, to := GrowthWindow(now)
			for _, u := range users {
				if u.Role != RoleStudent && u.Role != RoleAdmin {
					others++
				}
				if !u.CreatedAt.Before(MonthStart(now)) {
					month++
				}
				if !u.CreatedAt.Before(WeekStart(now)) {
					week++
				}
				if !u.CreatedAt.Before(from) && u.CreatedAt.Before(to) {
					inWindow++
				}
			}
			assert.Equal(t, sum.TotalUsers, sum.TotalStudents+sum.TotalAdmins+others)
			assert.Equal(t, month, sum.NewUsersThisMonth)
			assert.Equal(t, week, sum.NewUsersThisWeek)

			var total int
			for i, g := range sum.MonthlyGrowth {
				total += g.Count
				if i > 0 {
					assert.True(t, g.Start.After(sum.MonthlyGrowth[i-1].Start), "buckets must be chronological")
				}
			}
			assert.Equal(t, inWindow, total)
		})
	}
}

func TestSummarize_idempotent(t *testing.T) {
	now := at(2026, time.October, 21, 15)
	users := []User{
		newUser("1", RoleStudent, at(2026, time.October, 20, 10)),
		newUser("2", RoleAdmin, at(2026, time.August, 2, 10)),
	}
	assert.Equal(t, Summarize(users, now, time.UTC), Summarize(users, now, time.UTC))
}
