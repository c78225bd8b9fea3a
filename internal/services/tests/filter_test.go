package services_test

import (
	"testing"
	"time"

	"applytrack-api/internal/models"
	"applytrack-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureApplications() []models.Application {
	owner := uuid.New()
	return []models.Application{
		*models.NewApplication(owner, "Acme Corp", "Backend Engineer", day(2024, 3, 1), models.StatusApplied, "", false, nil),
		*models.NewApplication(owner, "Globex", "SRE", day(2024, 3, 5), models.StatusInterview, "", true, nil),
		*models.NewApplication(owner, "initech", "Backend Engineer", day(2024, 2, 20), models.StatusRejected, "", false, nil),
		*models.NewApplication(owner, "Umbrella", "Data Engineer", day(2024, 3, 3), models.StatusSelected, "", true, nil),
	}
}

func companies(apps []models.Application) []string {
	out := make([]string, len(apps))
	for i, app := range apps {
		out[i] = app.CompanyName
	}
	return out
}

func TestFilterAndSortIdentityPreservesOrder(t *testing.T) {
	apps := fixtureApplications()

	got := services.FilterAndSort(apps, services.ListFilter{Status: services.StatusFilterAll})

	assert.Equal(t, companies(apps), companies(got))
}

func TestFilterAndSortEmptyInput(t *testing.T) {
	got := services.FilterAndSort(nil, services.ListFilter{
		Search: "acme",
		Status: services.StatusFilterAll,
		SortBy: services.SortDateDesc,
	})
	assert.Empty(t, got)
}

func TestFilterAndSortSearchMatchesCompanyOrRole(t *testing.T) {
	apps := fixtureApplications()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"case-insensitive company match", "ACME", []string{"Acme Corp"}},
		{"role match", "backend", []string{"Acme Corp", "initech"}},
		{"substring match", "ngineer", []string{"Acme Corp", "initech", "Umbrella"}},
		{"no match", "wonka", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := services.FilterAndSort(apps, services.ListFilter{Search: tc.search})
			assert.Equal(t, tc.want, companies(got))
		})
	}
}

func TestFilterAndSortStatusFilter(t *testing.T) {
	apps := fixtureApplications()

	got := services.FilterAndSort(apps, services.ListFilter{Status: string(models.StatusInterview)})
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].CompanyName)

	all := services.FilterAndSort(apps, services.ListFilter{Status: services.StatusFilterAll})
	assert.Len(t, all, len(apps))

	blank := services.FilterAndSort(apps, services.ListFilter{Status: ""})
	assert.Len(t, blank, len(apps))
}

func TestFilterAndSortFollowUpOnly(t *testing.T) {
	apps := fixtureApplications()

	got := services.FilterAndSort(apps, services.ListFilter{FollowUpOnly: true})

	assert.Equal(t, []string{"Globex", "Umbrella"}, companies(got))
}

func TestFilterAndSortSortKeys(t *testing.T) {
	apps := fixtureApplications()

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{"date descending", services.SortDateDesc, []string{"Globex", "Umbrella", "Acme Corp", "initech"}},
		{"date ascending", services.SortDateAsc, []string{"initech", "Acme Corp", "Umbrella", "Globex"}},
		// Loose collation ignores case, so "initech" sorts between Globex and Umbrella.
		{"company ascending", services.SortCompanyAsc, []string{"Acme Corp", "Globex", "initech", "Umbrella"}},
		{"company descending", services.SortCompanyDesc, []string{"Umbrella", "initech", "Globex", "Acme Corp"}},
		{"status groups records", services.SortStatus, []string{"Acme Corp", "Globex", "initech", "Umbrella"}},
		{"unknown key keeps input order", "points", []string{"Acme Corp", "Globex", "initech", "Umbrella"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := services.FilterAndSort(apps, services.ListFilter{SortBy: tc.sortBy})
			assert.Equal(t, tc.want, companies(got))
		})
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	apps := fixtureApplications()
	before := companies(apps)

	services.FilterAndSort(apps, services.ListFilter{SortBy: services.SortDateAsc})

	assert.Equal(t, before, companies(apps))
}

func TestFilterAndSortCombinesFilterAndSort(t *testing.T) {
	apps := fixtureApplications()

	got := services.FilterAndSort(apps, services.ListFilter{
		Search: "engineer",
		SortBy: services.SortDateDesc,
	})

	assert.Equal(t, []string{"Umbrella", "Acme Corp", "initech"}, companies(got))
}
