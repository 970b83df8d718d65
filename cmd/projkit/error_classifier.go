// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/invowk/projkit/internal/compose"
	"github.com/invowk/projkit/internal/issue"
	"github.com/invowk/projkit/internal/menu"
	"github.com/invowk/projkit/internal/prompt"
	"github.com/invowk/projkit/internal/release"
)

// classifyError maps a command failure to its issue catalog entry, or 0
// when there is none.
func classifyError(err error) issue.Id {
	var rateErr *release.RateLimitError

	switch {
	case errors.Is(err, menu.ErrConfigMissing):
		return issue.MenuConfigMissingId
	case errors.Is(err, menu.ErrConfigMalformed):
		return issue.MenuConfigMalformedId
	case errors.Is(err, menu.ErrUnknownOption):
		return issue.UnknownOptionId
	case errors.Is(err, compose.ErrFileMissing):
		return issue.ComposeFileMissingId
	case errors.Is(err, compose.ErrUnknownCommand):
		return issue.UnknownComposeCommandId
	case errors.Is(err, compose.ErrServiceNotFound):
		return issue.ComposeServiceNotFoundId
	case errors.Is(err, release.ErrReleaseNotFound):
		return issue.ReleaseNotFoundId
	case errors.As(err, &rateErr):
		return issue.GitHubRateLimitedId
	case errors.Is(err, prompt.ErrInvalidLevel):
		return issue.InvalidMessageLevelId
	default:
		return issue.IssueOf(err)
	}
}
