// Package update checks GitHub releases for a newer version.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/slickdexic/layertrim/internal/transport"
)

// GitHubReleasesURL is the API endpoint for the latest release. It is a
// variable so tests can point it at a local server.
var GitHubReleasesURL = "https://api.github.com/repos/slickdexic/layertrim/releases/latest"

// CheckTimeout bounds the whole version check including retries.
const CheckTimeout = 5 * time.Second

// Release is the subset of the GitHub release payload we read.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult contains the result of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateURL       string
	UpdateAvailable bool
}

// CheckForUpdate compares the running version against the latest GitHub
// release. It returns nil when the check cannot be completed, so callers
// can treat the check as best-effort.
func CheckForUpdate(ctx context.Context, currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	release, err := fetchLatestRelease(ctx)
	if err != nil {
		return nil
	}

	result := &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		UpdateURL:      release.HTMLURL,
	}

	current := normalizeVersion(currentVersion)
	latest := normalizeVersion(release.TagName)
	if semver.IsValid(current) && semver.IsValid(latest) {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}
	return result
}

func fetchLatestRelease(ctx context.Context) (*Release, error) {
	reqFn := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, GitHubReleasesURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		return req, nil
	}
	shouldRetry := func(_ int, resp *http.Response) (bool, error) {
		return transport.IsRetriableStatus(resp.StatusCode), nil
	}

	// Short backoff so the check stays inside CheckTimeout.
	cfg := transport.RetryConfig{
		MaxRetries:   2,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     time.Second,
	}

	resp, err := transport.DoWithRetry(ctx, http.DefaultClient, cfg, reqFn, shouldRetry)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck // best-effort check, close errors not actionable
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transport.NewHTTPError("release check", resp, nil)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// normalizeVersion adds the v prefix semver.Compare expects.
func normalizeVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
