// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/aoi-f/gh-profile-stats/internal/domain"
	"github.com/aoi-f/gh-profile-stats/internal/gateway"
)

// Options control how the summary is assembled.
type Options struct {
	// ExcludeOrganizations drops organization-owned repositories from the
	// owned set.
	ExcludeOrganizations bool
	// MaxLanguages caps the formatted language list; -1 keeps all.
	MaxLanguages int
}

// Summarizer is the use case for building a user's profile summary.
// It orchestrates the fetching and combining of data.
type Summarizer struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(fetcher gateway.Fetcher, logger *log.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Summarize performs the main business logic. It fetches the user's profile
// and repositories, then fans out the independent contribution searches and
// the per-repository scan concurrently, and merges everything into a single
// report.
//
// A failure to fetch languages or activity for one repository is logged and
// that repository is skipped; a failure of the profile fetch, the repository
// listing, or a contribution search aborts the run.
func (s *Summarizer) Summarize(ctx context.Context, opts Options) (*domain.ProfileSummary, error) {
	s.logger.Println("Usecase: Starting profile summary...")

	profile, err := s.fetcher.FetchUser(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := s.fetcher.FetchOwnedRepos(ctx, opts.ExcludeOrganizations)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]bool, len(repos))
	for _, repo := range repos {
		owned[repo.FullName] = true
	}

	var prCounts, issueCounts map[string]int
	languages := make(domain.LanguageStats)
	var bytesOfCode int
	var totalCommits, totalIssues, totalPRs int

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		prCounts, err = s.fetcher.FetchPRContributions(egCtx, profile.Login)
		return err
	})

	eg.Go(func() error {
		var err error
		issueCounts, err = s.fetcher.FetchIssueContributions(egCtx, profile.Login)
		return err
	})

	// The per-repository scan runs sequentially within one goroutine so the
	// search API sees at most one in-flight request from it at a time.
	eg.Go(func() error {
		for _, repo := range repos {
			langs, err := s.fetcher.FetchLanguages(egCtx, repo.Owner, repo.Name)
			if err != nil {
				s.logger.Printf("  Skipping languages for %s: %v\n", repo.FullName, err)
			} else {
				for _, count := range langs {
					bytesOfCode += count
				}
				// Forks count toward code size but not toward the
				// language breakdown.
				if !repo.Fork {
					languages.Merge(langs)
				}
			}

			if repo.Fork {
				continue
			}
			activity, err := s.fetcher.FetchRepoActivity(egCtx, repo.FullName, profile.Login)
			if err != nil {
				s.logger.Printf("  Skipping activity for %s: %v\n", repo.FullName, err)
				continue
			}
			totalCommits += activity.Commits
			totalIssues += activity.Issues
			totalPRs += activity.PullRequests
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	s.logger.Println("Usecase: All data fetched successfully.")

	totalStars, starStats := summarizeStars(repos)

	summary := &domain.ProfileSummary{
		Username:    profile.Login,
		Followers:   profile.Followers,
		Following:   profile.Following,
		PublicRepos: profile.PublicRepos,
		PublicGists: profile.PublicGists,

		Bio:      profile.Bio,
		Location: profile.Location,
		Company:  profile.Company,
		Email:    profile.Email,
		Website:  profile.Website,
		Hireable: profile.Hireable,

		CreatedAt: domain.FormatDate(profile.CreatedAt),
		UpdatedAt: domain.FormatDate(profile.UpdatedAt),

		TotalStars:  totalStars,
		StarStats:   starStats,
		BytesOfCode: bytesOfCode,

		Languages:       languages,
		LanguagesPretty: languages.Format(opts.MaxLanguages),

		TotalCommitsInOwnRepos: totalCommits,
		TotalIssuesInOwnRepos:  totalIssues,
		TotalPRsInOwnRepos:     totalPRs,

		PRContributions:    domain.NewContributionReport(prCounts, owned),
		IssueContributions: domain.NewContributionReport(issueCounts, owned),
	}

	s.logger.Println("Usecase: Summary complete.")
	return summary, nil
}

// summarizeStars totals the stargazer counts and computes their distribution
// over the owned repositories. An empty repository set yields zeroes.
func summarizeStars(repos []gateway.Repo) (int, domain.StarStats) {
	if len(repos) == 0 {
		return 0, domain.StarStats{}
	}
	total := 0
	counts := make([]float64, 0, len(repos))
	for _, repo := range repos {
		total += repo.Stars
		counts = append(counts, float64(repo.Stars))
	}
	mean, _ := stats.Mean(counts)
	median, _ := stats.Median(counts)
	return total, domain.StarStats{Mean: mean, Median: median}
}
