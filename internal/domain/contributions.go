package domain

// ContributionReport groups a user's contribution counts by repository and
// splits them into owned and external buckets. The buckets are a disjoint
// partition of ByRepo, so Total always equals the sum over either view.
type ContributionReport struct {
	Total         int            `json:"total"`
	ByRepo        map[string]int `json:"by_repo"`
	OwnRepos      map[string]int `json:"own_repos"`
	ExternalRepos map[string]int `json:"external_repos"`
}

// NewContributionReport builds a report from per-repo counts, partitioning
// against the set of owned repository full names ("owner/repo").
func NewContributionReport(byRepo map[string]int, owned map[string]bool) ContributionReport {
	report := ContributionReport{
		ByRepo:        make(map[string]int, len(byRepo)),
		OwnRepos:      make(map[string]int),
		ExternalRepos: make(map[string]int),
	}
	for name, count := range byRepo {
		report.ByRepo[name] = count
		report.Total += count
		if owned[name] {
			report.OwnRepos[name] = count
		} else {
			report.ExternalRepos[name] = count
		}
	}
	return report
}
