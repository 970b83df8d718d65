// SPDX-License-Identifier: MPL-2.0

package release

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion indicates a version string is not valid semver.
var ErrInvalidVersion = errors.New("invalid version")

// NotFoundError reports a tag that does not resolve to a published release.
type NotFoundError struct {
	Tag string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Release %s does not exist", e.Tag)
}

// Unwrap returns ErrReleaseNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrReleaseNotFound }

// Verify checks that tag names a published release and returns the
// "<tag> exist" confirmation line.
func (c *Client) Verify(ctx context.Context, tag string) (string, error) {
	if strings.TrimSpace(tag) == "" {
		return "", &NotFoundError{Tag: tag}
	}

	r, err := c.GetReleaseByTag(ctx, tag)
	if err != nil {
		if errors.Is(err, ErrReleaseNotFound) {
			return "", &NotFoundError{Tag: tag}
		}
		return "", err
	}
	return r.TagName + " exist", nil
}

// Latest returns the highest stable release.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	releases, err := c.ListReleases(ctx)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, ErrNoStableRelease
	}
	return &releases[0], nil
}

// Normalize adds the "v" prefix semver requires and validates the result.
func Normalize(v string) (string, error) {
	norm := strings.TrimSpace(v)
	if !strings.HasPrefix(norm, "v") {
		norm = "v" + norm
	}
	if !semver.IsValid(norm) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return norm, nil
}

// Compare returns -1, 0 or +1 as a is lower than, equal to or greater than b.
func Compare(a, b string) (int, error) {
	na, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return 0, err
	}
	return semver.Compare(na, nb), nil
}

// IsNewer reports whether candidate is a strictly higher version than current.
func IsNewer(current, candidate string) (bool, error) {
	cmp, err := Compare(candidate, current)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}

// SortDesc sorts releases by semantic version, newest first. Tags that are
// not valid semver sort last. The sort is stable.
func SortDesc(releases []Release) {
	slices.SortStableFunc(releases, func(a, b Release) int {
		return semver.Compare(canonicalTag(b.TagName), canonicalTag(a.TagName))
	})
}

func canonicalTag(tag string) string {
	if norm, err := Normalize(tag); err == nil {
		return norm
	}
	return tag
}
