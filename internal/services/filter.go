package services

import (
	"sort"
	"strings"

	"applytrack-api/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusFilterAll is the sentinel status filter that matches every record.
const StatusFilterAll = "all"

// Recognized sort keys for ListFilter.SortBy.
const (
	SortDateDesc    = "date-desc"
	SortDateAsc     = "date-asc"
	SortCompanyAsc  = "company-asc"
	SortCompanyDesc = "company-desc"
	SortStatus      = "status"
)

// ListFilter holds the query parameters of the display view.
type ListFilter struct {
	Search       string
	Status       string
	FollowUpOnly bool
	SortBy       string
}

// Company names sort locale-aware, matching the original UI's collation.
var companyCollator = collate.New(language.English, collate.Loose)

// FilterAndSort derives the display view: filter first, then a stable sort
// of the surviving set. It never mutates its input and is total over any
// well-formed input, including the empty set. An unrecognized sort key
// preserves the input order.
func FilterAndSort(apps []models.Application, f ListFilter) []models.Application {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if search != "" &&
			!strings.Contains(strings.ToLower(app.CompanyName), search) &&
			!strings.Contains(strings.ToLower(app.Role), search) {
			continue
		}
		if f.Status != "" && f.Status != StatusFilterAll && string(app.Status) != f.Status {
			continue
		}
		if f.FollowUpOnly && !app.FollowUpNeeded {
			continue
		}
		out = append(out, app)
	}

	switch f.SortBy {
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateApplied.After(out[j].DateApplied)
		})
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateApplied.Before(out[j].DateApplied)
		})
	case SortCompanyAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return companyCollator.CompareString(out[i].CompanyName, out[j].CompanyName) < 0
		})
	case SortCompanyDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return companyCollator.CompareString(out[i].CompanyName, out[j].CompanyName) > 0
		})
	case SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	default:
		// Unrecognized sort key keeps input order.
	}

	return out
}
