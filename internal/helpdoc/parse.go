package helpdoc

import (
	"regexp"
	"strings"
)

// descSplitRegex separates a flag column from its description column.
var descSplitRegex = regexp.MustCompile(`\s{2,}`)

// flagNameRegex validates one flag spelling after value markers are
// stripped: -x, -xY, --long, --long-name.
var flagNameRegex = regexp.MustCompile(`^-{1,2}[A-Za-z0-9][A-Za-z0-9-]*$`)

// manSectionRegex captures the first line following a man page section
// header such as NAME or DESCRIPTION.
var manSectionRegex = regexp.MustCompile(`(?m)^(NAME|DESCRIPTION)\n\s*(.*)`)

// subcommandHeaderRegex marks the start of a subcommand listing.
var subcommandHeaderRegex = regexp.MustCompile(`^(Commands|Available Commands|Subcommands|COMMANDS):?\s*$`)

// subcommandLineRegex matches one indented "name  description" line.
var subcommandLineRegex = regexp.MustCompile(`^\s{2,}([a-z][a-z0-9_-]*)\s{2,}(\S.*)$`)

// helpSummary condenses --help output into its first lines.
func helpSummary(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > summaryLines {
		lines = lines[:summaryLines]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// manSummary extracts the NAME and DESCRIPTION leads from man output.
// Falls back to the whole text when neither section is found.
func manSummary(text string) string {
	var parts []string
	for _, m := range manSectionRegex.FindAllStringSubmatch(text, -1) {
		if line := strings.TrimSpace(m[2]); line != "" {
			parts = append(parts, line)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(text)
	}
	return strings.Join(parts, "\n\n")
}

// parseFlags extracts a flag -> description mapping from help or man
// text. It matches indented lines whose first column is one or more flag
// spellings and whose description is separated by at least two spaces.
func parseFlags(text string) map[string]string {
	flags := map[string]string{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == line || !strings.HasPrefix(trimmed, "-") {
			// Flag listings are always indented.
			continue
		}

		columns := descSplitRegex.Split(trimmed, 2)
		if len(columns) != 2 {
			continue
		}
		desc := strings.TrimSpace(columns[1])
		if desc == "" {
			continue
		}

		for _, name := range flagSpellings(columns[0]) {
			if _, exists := flags[name]; !exists {
				flags[name] = desc
			}
		}
	}

	return flags
}

// flagSpellings splits a flag column like "-a, --all[=WHEN]" into its
// individual flag names with value markers stripped.
func flagSpellings(column string) []string {
	var names []string
	for _, piece := range strings.FieldsFunc(column, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		name := stripValueMarker(piece)
		if flagNameRegex.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

// stripValueMarker removes trailing value syntax: --color[=WHEN],
// --file=NAME, -o FILE leftovers.
func stripValueMarker(name string) string {
	if i := strings.IndexAny(name, "[=<"); i >= 0 {
		name = name[:i]
	}
	return name
}

// parseSubcommands extracts a subcommand -> description mapping from the
// Commands section of help text. The section ends at the first blank or
// unindented line.
func parseSubcommands(text string) map[string]string {
	subcommands := map[string]string{}
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if subcommandHeaderRegex.MatchString(strings.TrimSpace(line)) && !strings.HasPrefix(line, " ") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.TrimSpace(line) == "" {
			inSection = false
			continue
		}
		if m := subcommandLineRegex.FindStringSubmatch(line); m != nil {
			if _, exists := subcommands[m[1]]; !exists {
				subcommands[m[1]] = strings.TrimSpace(m[2])
			}
		}
	}

	return subcommands
}
