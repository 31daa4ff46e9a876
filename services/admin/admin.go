package admin

import (
	"math"
	"time"

	"islamicdashboard/models"
	"islamicdashboard/services/listquery"
	"islamicdashboard/utils"
)

const (
	recentWindow = 7 * 24 * time.Hour
	monthWindow  = 30 * 24 * time.Hour
	latestLimit  = 5
)

func lastActive(u models.User) time.Time  { return u.LastActive }
func userCreated(u models.User) time.Time { return u.CreatedAt }

func (s *DefaultAdminService) Dashboard() models.DashboardStats {
	users := s.Users.List()
	return models.DashboardStats{
		TotalUsers:         len(users),
		ActiveUsers:        listquery.CountSince(users, lastActive, s.now().Add(-recentWindow)),
		TotalContent:       s.Content.Duas().Len() + s.Content.Ruqya().Len() + s.Content.Books().Len(),
		TotalNotifications: s.Notifications.Count(),
		SystemHealth:       utils.GetHealthStatus().Overall(),
		LastBackup:         s.System.LastBackup(),
	}
}

func contentTypeStats[T models.ContentItem](items []T, cutoff time.Time) models.ContentTypeStats {
	return models.ContentTypeStats{
		Total:      len(items),
		Categories: listquery.Distinct(items, func(t T) string { return t.GetCategory() }),
		Recent:     listquery.CountSince(items, func(t T) time.Time { return t.GetCreatedAt() }, cutoff),
	}
}

// ContentStats reports totals, categories and items added in the last week per kind.
func (s *DefaultAdminService) ContentStats() map[string]models.ContentTypeStats {
	cutoff := s.now().Add(-recentWindow)
	return map[string]models.ContentTypeStats{
		models.KindDuas:  contentTypeStats(s.Content.Duas().List(), cutoff),
		models.KindRuqya: contentTypeStats(s.Content.Ruqya().List(), cutoff),
		models.KindBooks: contentTypeStats(s.Content.Books().List(), cutoff),
	}
}

func (s *DefaultAdminService) UserAnalytics() models.UserAnalytics {
	users := s.Users.List()
	now := s.now()
	devices := listquery.CountBy(users, func(u models.User) string { return u.DeviceType })
	withDevice := devices[models.DeviceAndroid] + devices[models.DeviceIOS]

	return models.UserAnalytics{
		TotalUsers:        len(users),
		ActiveUsers:       listquery.CountSince(users, lastActive, now.Add(-recentWindow)),
		NewUsersThisWeek:  listquery.CountSince(users, userCreated, now.Add(-recentWindow)),
		NewUsersThisMonth: listquery.CountSince(users, userCreated, now.Add(-monthWindow)),
		DeviceTypes: []models.DeviceShare{
			{Type: "Android", Percentage: percentage(devices[models.DeviceAndroid], withDevice)},
			{Type: "iOS", Percentage: percentage(devices[models.DeviceIOS], withDevice)},
		},
	}
}

// percentage rounds to one decimal place and is 0 when total is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}

func breakdown[T models.ContentItem](items []T) models.CategoryBreakdown {
	return models.CategoryBreakdown{
		Total:      len(items),
		ByCategory: listquery.CountBy(items, func(t T) string { return t.GetCategory() }),
	}
}

func flatten[T models.ContentItem](kind string, items []T) []models.LatestContent {
	out := make([]models.LatestContent, 0, len(items))
	for _, item := range items {
		out = append(out, models.LatestContent{
			Type:      kind,
			ID:        item.GetID(),
			Title:     item.GetTitle(),
			Category:  item.GetCategory(),
			CreatedAt: item.GetCreatedAt(),
		})
	}
	return out
}

// ContentAnalytics breaks content down by category and lists the newest items across kinds.
func (s *DefaultAdminService) ContentAnalytics() models.ContentAnalytics {
	duas := s.Content.Duas().List()
	ruqya := s.Content.Ruqya().List()
	books := s.Content.Books().List()

	var all []models.LatestContent
	all = append(all, flatten(models.KindDuas, duas)...)
	all = append(all, flatten(models.KindRuqya, ruqya)...)
	all = append(all, flatten(models.KindBooks, books)...)

	latest := listquery.Paginate(
		listquery.SortByTimeDesc(all, func(l models.LatestContent) time.Time { return l.CreatedAt }),
		listquery.Page{Limit: latestLimit},
	)

	return models.ContentAnalytics{
		Categories: map[string]models.CategoryBreakdown{
			models.KindDuas:  breakdown(duas),
			models.KindRuqya: breakdown(ruqya),
			models.KindBooks: breakdown(books),
		},
		Latest: latest,
	}
}
