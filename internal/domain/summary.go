// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// DateLayout is the human-facing date format used in the summary report.
const DateLayout = "02-01-2006"

// StarStats summarizes the stargazer distribution across the owned repositories.
type StarStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// ProfileSummary is the aggregated report for a single user.
// It is the core domain entity of this application and is what the
// summary command prints as JSON.
type ProfileSummary struct {
	Username    string `json:"username"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`

	Bio      string `json:"bio"`
	Location string `json:"location"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Hireable bool   `json:"hireable"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	TotalStars  int       `json:"total_stars"`
	StarStats   StarStats `json:"star_stats"`
	BytesOfCode int       `json:"bytes_of_code"`

	Languages       LanguageStats `json:"languages"`
	LanguagesPretty string        `json:"languages_pretty"`

	TotalCommitsInOwnRepos int `json:"total_commits_in_own_repos"`
	TotalIssuesInOwnRepos  int `json:"total_issues_in_own_repos"`
	TotalPRsInOwnRepos     int `json:"total_prs_in_own_repos"`

	PRContributions    ContributionReport `json:"pr_contributions"`
	IssueContributions ContributionReport `json:"issue_contributions"`
}

// FormatDate renders a timestamp in the report's date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
