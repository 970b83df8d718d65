// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/invowk/projkit/internal/config"
	"github.com/invowk/projkit/internal/release"
	"github.com/invowk/projkit/internal/testutil"
	"github.com/invowk/projkit/pkg/types"
)

type (
	// runResult captures the streams and status of one App.Run call.
	runResult struct {
		stdout string
		stderr string
		code   types.ExitCode
	}

	// fakeReleases is a ReleaseService backed by a fixed tag list.
	fakeReleases struct {
		tags []string
		err  error
		// cfg records the GitHub settings the service was built with.
		cfg config.GitHubConfig
	}
)

// runApp runs the command tree with isolated stdio.
func runApp(t *testing.T, deps Dependencies, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	deps.Stdout = &stdout
	deps.Stderr = &stderr
	if deps.Stdin == nil {
		deps.Stdin = strings.NewReader("")
	}

	code := NewApp(deps).Run(t.Context(), args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// firstLine returns the first line of s without its newline.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func (f *fakeReleases) service(cfg config.GitHubConfig) ReleaseService {
	f.cfg = cfg
	return f
}

func (f *fakeReleases) Latest(context.Context) (*release.Release, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.tags) == 0 {
		return nil, release.ErrNoStableRelease
	}
	releases := make([]release.Release, len(f.tags))
	for i, tag := range f.tags {
		releases[i] = release.Release{TagName: tag}
	}
	release.SortDesc(releases)
	return &releases[0], nil
}

func (f *fakeReleases) Verify(_ context.Context, tag string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	for _, known := range f.tags {
		if known == tag {
			return tag + " exist", nil
		}
	}
	return "", &release.NotFoundError{Tag: tag}
}

// TestHelperProcess stands in for the docker binary in compose command tests.
func TestHelperProcess(t *testing.T) {
	testutil.RunHelperProcess()
}
