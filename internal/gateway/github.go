// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Profile holds the account fields of the authenticated user.
type Profile struct {
	Login       string
	Followers   int
	Following   int
	PublicRepos int
	PublicGists int
	Bio         string
	Location    string
	Company     string
	Email       string
	Website     string
	Hireable    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repo is the subset of repository metadata the summarizer needs.
type Repo struct {
	Owner    string
	Name     string
	FullName string
	Fork     bool
	Stars    int
}

// RepoActivity holds the activity counts for a single owned repository:
// commits authored by the user, issues opened by the user, and pull
// requests from all authors.
type RepoActivity struct {
	Commits      int
	Issues       int
	PullRequests int
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context) (*Profile, error)
	FetchOwnedRepos(ctx context.Context, excludeOrgs bool) ([]Repo, error)
	FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error)
	FetchRepoActivity(ctx context.Context, fullName, login string) (RepoActivity, error)
	FetchPRContributions(ctx context.Context, login string) (map[string]int, error)
	FetchIssueContributions(ctx context.Context, login string) (map[string]int, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// prSearchQuery counts pull requests per repository via the search API.
type prSearchQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename    string `graphql:"__typename"`
				PullRequest struct {
					Repository struct {
						NameWithOwner string
					}
				} `graphql:"... on PullRequest"`
			}
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $cursor)"`
}

// issueSearchQuery counts issues per repository. The search index can return
// pull requests for an issue query; those fall outside the inline fragment on
// Issue and are skipped during counting.
type issueSearchQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename string `graphql:"__typename"`
				Issue    struct {
					Repository struct {
						NameWithOwner string
					}
				} `graphql:"... on Issue"`
			}
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $cursor)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchUser returns the profile of the authenticated user.
func (g *GitHubGateway) FetchUser(ctx context.Context) (*Profile, error) {
	g.logger.Println("Fetching authenticated user profile...")
	user, _, err := g.restClient.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authenticated user: %w", err)
	}
	return &Profile{
		Login:       user.GetLogin(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicRepos: user.GetPublicRepos(),
		PublicGists: user.GetPublicGists(),
		Bio:         user.GetBio(),
		Location:    user.GetLocation(),
		Company:     user.GetCompany(),
		Email:       user.GetEmail(),
		Website:     user.GetBlog(),
		Hireable:    user.GetHireable(),
		CreatedAt:   user.GetCreatedAt().Time,
		UpdatedAt:   user.GetUpdatedAt().Time,
	}, nil
}

// FetchOwnedRepos lists the public repositories of the authenticated user.
// When excludeOrgs is set, repositories owned by organizations are dropped.
func (g *GitHubGateway) FetchOwnedRepos(ctx context.Context, excludeOrgs bool) ([]Repo, error) {
	g.logger.Println("Fetching public repositories using REST API...")
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Visibility:  "public",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var repos []Repo
	for {
		page, resp, err := g.restClient.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
		}
		for _, r := range page {
			if r.GetVisibility() != "public" {
				continue
			}
			if excludeOrgs && r.GetOwner().GetType() == "Organization" {
				continue
			}
			repos = append(repos, Repo{
				Owner:    r.GetOwner().GetLogin(),
				Name:     r.GetName(),
				FullName: r.GetFullName(),
				Fork:     r.GetFork(),
				Stars:    r.GetStargazersCount(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching repositories: %d found.\n", len(repos))
	return repos, nil
}

// FetchLanguages returns the language byte counts of a single repository.
func (g *GitHubGateway) FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	languages, _, err := g.restClient.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, repo, err)
	}
	return languages, nil
}

// FetchRepoActivity counts the user's commits and issues plus all pull
// requests in a single repository, using search result totals so that each
// metric costs one request regardless of repository size.
func (g *GitHubGateway) FetchRepoActivity(ctx context.Context, fullName, login string) (RepoActivity, error) {
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}

	commitQuery := fmt.Sprintf("repo:%s author:%s", fullName, login)
	commits, _, err := g.restClient.Search.Commits(ctx, commitQuery, opts)
	if err != nil {
		return RepoActivity{}, fmt.Errorf("failed to search commits in %s: %w", fullName, err)
	}

	issueQuery := fmt.Sprintf("repo:%s is:issue author:%s", fullName, login)
	issues, _, err := g.restClient.Search.Issues(ctx, issueQuery, opts)
	if err != nil {
		return RepoActivity{}, fmt.Errorf("failed to search issues in %s: %w", fullName, err)
	}

	prQuery := fmt.Sprintf("repo:%s is:pr", fullName)
	prs, _, err := g.restClient.Search.Issues(ctx, prQuery, opts)
	if err != nil {
		return RepoActivity{}, fmt.Errorf("failed to search pull requests in %s: %w", fullName, err)
	}

	return RepoActivity{
		Commits:      commits.GetTotal(),
		Issues:       issues.GetTotal(),
		PullRequests: prs.GetTotal(),
	}, nil
}

// FetchPRContributions counts the user's pull requests per repository across
// all public repositories on the platform.
func (g *GitHubGateway) FetchPRContributions(ctx context.Context, login string) (map[string]int, error) {
	g.logger.Println("Fetching PR contributions using GraphQL search...")
	query := fmt.Sprintf("author:%s is:pr", login)
	variables := map[string]interface{}{"query": githubv4.String(query), "cursor": (*githubv4.String)(nil)}
	counts := make(map[string]int)
	for {
		var q prSearchQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for PR contributions: %w", err)
		}
		for _, edge := range q.Search.Edges {
			if repoName := edge.Node.PullRequest.Repository.NameWithOwner; repoName != "" {
				counts[repoName]++
			}
		}
		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of PR contributions...")
	}
	g.logger.Println("Completed fetching PR contributions.")
	return counts, nil
}

// FetchIssueContributions counts the user's issues per repository across all
// public repositories on the platform.
func (g *GitHubGateway) FetchIssueContributions(ctx context.Context, login string) (map[string]int, error) {
	g.logger.Println("Fetching issue contributions using GraphQL search...")
	query := fmt.Sprintf("author:%s is:issue", login)
	variables := map[string]interface{}{"query": githubv4.String(query), "cursor": (*githubv4.String)(nil)}
	counts := make(map[string]int)
	for {
		var q issueSearchQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for issue contributions: %w", err)
		}
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "Issue" {
				continue
			}
			if repoName := edge.Node.Issue.Repository.NameWithOwner; repoName != "" {
				counts[repoName]++
			}
		}
		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of issue contributions...")
	}
	g.logger.Println("Completed fetching issue contributions.")
	return counts, nil
}
