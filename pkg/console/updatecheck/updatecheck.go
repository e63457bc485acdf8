// Package updatecheck reports whether a newer release of the embedding
// application is available. It is an external collaborator of the console:
// it performs the only network I/O in the repo and hands the console nothing
// but already-materialized output lines.
package updatecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// colorNotice is the amber used for update status lines.
var colorNotice = color.RGBA{204, 178, 0, 255}

// Emitter receives status lines destined for the console scrollback. The
// host must serialize delivery with its other console writers.
type Emitter interface {
	Emit(text string, c color.RGBA)
}

// releaseDoc is the JSON release index: a map from version string to
// arbitrary release metadata.
type releaseDoc struct {
	Releases map[string]json.RawMessage `json:"releases"`
}

// Checker fetches a release index and classifies the running version
// against it.
type Checker struct {
	URL     string
	Version string
	Client  *http.Client
}

// New returns a checker for the given index URL and running version.
func New(url, version string) *Checker {
	return &Checker{
		URL:     url,
		Version: version,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Check fetches the release index and emits one status line describing how
// the running version compares to the latest release. Network failures are
// reported as a console line, never as an error: the check is advisory.
func (c *Checker) Check(ctx context.Context, out Emitter) {
	out.Emit("Checking for updates...", colorNotice)

	latest, err := c.latestVersion(ctx)
	if err != nil {
		out.Emit("failed to reach the release index", colorNotice)
		return
	}

	switch cmp := CompareVersions(c.Version, latest); {
	case cmp < 0:
		out.Emit(fmt.Sprintf("This version (%s) is outdated; the latest release is %s.", c.Version, latest), colorNotice)
	case cmp > 0:
		out.Emit(fmt.Sprintf("This version (%s) has not been released yet and may contain bugs.", c.Version), colorNotice)
	default:
		out.Emit("This version is currently up-to-date", colorNotice)
	}
}

// latestVersion downloads the release index and returns its highest version.
func (c *Checker) latestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("updatecheck: release index returned %s", resp.Status)
	}

	var doc releaseDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", err
	}
	if len(doc.Releases) == 0 {
		return "", fmt.Errorf("updatecheck: release index is empty")
	}

	latest := ""
	for version := range doc.Releases {
		if latest == "" || CompareVersions(version, latest) > 0 {
			latest = version
		}
	}
	return latest, nil
}

// CompareVersions compares two dotted version strings component by
// component, returning -1, 0 or 1. Missing components count as zero, so
// "1.2" equals "1.2.0". Non-numeric components compare as zero.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
