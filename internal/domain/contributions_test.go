package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContributionReport(t *testing.T) {
	testCases := []struct {
		name     string
		byRepo   map[string]int
		owned    map[string]bool
		expected ContributionReport
	}{
		{
			name:   "counts split into own and external buckets",
			byRepo: map[string]int{"octo/alpha": 2, "ext/tool": 5, "ext/lib": 1},
			owned:  map[string]bool{"octo/alpha": true, "octo/beta": true},
			expected: ContributionReport{
				Total:         8,
				ByRepo:        map[string]int{"octo/alpha": 2, "ext/tool": 5, "ext/lib": 1},
				OwnRepos:      map[string]int{"octo/alpha": 2},
				ExternalRepos: map[string]int{"ext/tool": 5, "ext/lib": 1},
			},
		},
		{
			name:   "no contributions",
			byRepo: map[string]int{},
			owned:  map[string]bool{"octo/alpha": true},
			expected: ContributionReport{
				Total:         0,
				ByRepo:        map[string]int{},
				OwnRepos:      map[string]int{},
				ExternalRepos: map[string]int{},
			},
		},
		{
			name:   "no owned repos puts everything in external",
			byRepo: map[string]int{"ext/tool": 3},
			owned:  map[string]bool{},
			expected: ContributionReport{
				Total:         3,
				ByRepo:        map[string]int{"ext/tool": 3},
				OwnRepos:      map[string]int{},
				ExternalRepos: map[string]int{"ext/tool": 3},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := NewContributionReport(tc.byRepo, tc.owned)
			assert.Equal(t, tc.expected, report)

			// The buckets must partition ByRepo: disjoint, and their counts
			// sum back to the total.
			sum := 0
			for name, count := range report.OwnRepos {
				sum += count
				assert.NotContains(t, report.ExternalRepos, name)
			}
			for _, count := range report.ExternalRepos {
				sum += count
			}
			assert.Equal(t, report.Total, sum)
		})
	}
}
