// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	MenuConfigMissingId Id = iota + 1
	MenuConfigMalformedId
	UnknownOptionId
	ComposeFileMissingId
	UnknownComposeCommandId
	ComposeServiceNotFoundId
	ReleaseNotFoundId
	GitHubRateLimitedId
	ConfigLoadFailedId
	InvalidMessageLevelId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Renderer interface {
		Render(in string, stylePath string) (string, error)
	}

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		extLinks []HttpLink // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.markdown(), stylePath)
}

// markdown appends the "See also" list to the message when the issue has links.
func (i *Issue) markdown() string {
	if len(i.extLinks) == 0 {
		return string(i.mdMsg)
	}
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	sb.WriteString("\n\n## See also:\n")
	for _, link := range i.extLinks {
		sb.WriteString("- <" + string(link) + ">\n")
	}
	return sb.String()
}

var (
	render = glamour.Render

	menuConfigMissingIssue = &Issue{
		id: MenuConfigMissingId,
		mdMsg: `
# No menu configuration file!

The menu commands need a file that declares the options of your CLI.

## Things you can try:
- Pass the file explicitly:
~~~
$ projkit menu display-help --menu config/menu/menu.yml
~~~

- Or record it once for the project:
~~~
$ projkit init --program test.sh --menu config/menu/menu.yml
~~~

## Example menu file:
~~~yaml
program: test.sh
options:
  - name: test1
    kind: mandatory
  - name: --test2
    kind: mandatory
  - name: test5
  - name: --test1
    kind: mandatory
    scope: .opts .test1
~~~`,
	}

	menuConfigMalformedIssue = &Issue{
		id: MenuConfigMalformedId,
		mdMsg: `
# Failed to parse the menu configuration!

The file was found but one of its entries does not match the menu schema.

## Common issues:
- An option without a ` + "`name`" + `
- A ` + "`kind`" + ` other than ` + "`mandatory`" + ` or ` + "`optional`" + `
- A ` + "`scope`" + ` tag that is not ` + "`.opts`" + ` or ` + "`.opts .<scope>`" + `
- An unsupported extension (use .yml, .yaml, .toml, .json or .cue)`,
	}

	unknownOptionIssue = &Issue{
		id: UnknownOptionId,
		mdMsg: `
# Unknown option!

The option you passed is not declared for the active scope.

## Things you can try:
- Show the declared options:
~~~
$ projkit menu display-help
~~~
- Check whether the option belongs to a sub-command scope (` + "`--scope`" + `)`,
	}

	composeFileMissingIssue = &Issue{
		id: ComposeFileMissingId,
		mdMsg: `
# No docker compose file!

The compose commands need an existing compose file.

## Things you can try:
- Pass it with ` + "`--file`" + ` or record it with ` + "`projkit init --compose-file`" + `
- Verify the path is readable`,
		extLinks: []HttpLink{"https://docs.docker.com/compose/compose-application-model/"},
	}

	unknownComposeCommandIssue = &Issue{
		id: UnknownComposeCommandId,
		mdMsg: `
# Unknown docker compose command!

Only the subcommands of ` + "`docker compose`" + ` are accepted (up, down, start, stop, build, ps, logs, ...).`,
		extLinks: []HttpLink{"https://docs.docker.com/reference/cli/docker/compose/"},
	}

	composeServiceNotFoundIssue = &Issue{
		id: ComposeServiceNotFoundId,
		mdMsg: `
# Service not found!

The service is not declared under ` + "`services:`" + ` in the compose file.

## Things you can try:
~~~
$ docker compose -f <file> config --services
~~~`,
	}

	releaseNotFoundIssue = &Issue{
		id: ReleaseNotFoundId,
		mdMsg: `
# Release not found!

The GitHub repository has no published release with that tag.

## Things you can try:
- List the latest release:
~~~
$ projkit release latest
~~~
- Check the repository owner/name in your projkit configuration`,
	}

	gitHubRateLimitedIssue = &Issue{
		id: GitHubRateLimitedId,
		mdMsg: `
# GitHub API rate limit exceeded!

Unauthenticated requests are limited to 60 per hour.

## Things you can try:
- Export a token to raise the limit to 5000 per hour:
~~~
$ export GITHUB_TOKEN=<token>
~~~`,
		extLinks: []HttpLink{"https://docs.github.com/en/rest/using-the-rest-api/rate-limits-for-the-rest-api"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Validate projkit.cue against the schema:
~~~
$ projkit config show
~~~
- Remove or regenerate the state file written by ` + "`projkit init`" + ` (.projkit.env)`,
	}

	invalidMessageLevelIssue = &Issue{
		id: InvalidMessageLevelId,
		mdMsg: `
# Invalid message level!

Valid levels are ` + "`0`" + ` (info), ` + "`-1`" + ` (warning), ` + "`1`" + ` (error) and ` + "`2`" + ` (fatal),
or their names.`,
	}

	issues = map[Id]*Issue{
		menuConfigMissingIssue.Id():      menuConfigMissingIssue,
		menuConfigMalformedIssue.Id():    menuConfigMalformedIssue,
		unknownOptionIssue.Id():          unknownOptionIssue,
		composeFileMissingIssue.Id():     composeFileMissingIssue,
		unknownComposeCommandIssue.Id():  unknownComposeCommandIssue,
		composeServiceNotFoundIssue.Id(): composeServiceNotFoundIssue,
		releaseNotFoundIssue.Id():        releaseNotFoundIssue,
		gitHubRateLimitedIssue.Id():      gitHubRateLimitedIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		invalidMessageLevelIssue.Id():    invalidMessageLevelIssue,
	}
)

// Values returns every catalog entry ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
