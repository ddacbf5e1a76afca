// Package danger detects dangerous shell idioms in a command line.
//
// Detection runs once over the whole raw string and token sequence,
// independent of per-segment analysis. The rules are deliberate
// mixed-representation checks: some consult tokens, some the raw string.
// All rules may fire at once.
package danger

import (
	"fmt"
	"strings"
)

// forkBombLiteral is the classic bash fork bomb, matched verbatim.
const forkBombLiteral = ":(){ :|:& };:"

// interpreters are shells and script interpreters that make a piped
// download executable.
var interpreters = []string{"bash", "sh", "python", "python3", "perl", "ruby", "node", "php"}

// scriptExtensions mark a URL as pointing at an executable script.
var scriptExtensions = []string{".py", ".sh", ".bash", ".pl", ".rb", ".js", ".php"}

// suspiciousSubstrings in a URL suggest an outright malicious source.
var suspiciousSubstrings = []string{"attacker", "malware", "evil"}

// readCommands are programs whose purpose is reading file contents.
var readCommands = []string{"cat", "less", "more", "head", "tail", "sed", "awk", "grep", "cut"}

// sensitivePaths maps well-known sensitive files to a description of
// what leaks when they are read.
var sensitivePaths = map[string]string{
	"/etc/shadow":         "Contains password hashes for system users (highly sensitive)",
	"/etc/passwd":         "Contains user account information (less sensitive but still private)",
	"~/.ssh/id_rsa":       "Private SSH key (highly sensitive)",
	"~/.ssh/id_ed25519":   "Private SSH key (highly sensitive)",
	"/root/.ssh/id_rsa":   "Root's private SSH key (highly sensitive)",
}

// rule is one danger check over the raw command string and its tokens.
type rule func(raw string, tokens []string) []string

// rules is the registry of danger checks. Order does not matter; every
// rule runs and all warnings are collected.
var rules = []rule{
	checkRootDelete,
	checkDownloadExecute,
	checkNullRedirect,
	checkForkBomb,
	checkSensitiveReads,
}

// Detect returns warnings for every dangerous idiom found in the command.
// It never fails and returns nil when nothing matches.
func Detect(raw string, tokens []string) []string {
	var warnings []string
	for _, r := range rules {
		warnings = append(warnings, r(raw, tokens)...)
	}
	return warnings
}

// checkRootDelete flags rm -rf / by literal token membership.
func checkRootDelete(_ string, tokens []string) []string {
	if hasToken(tokens, "rm") && hasToken(tokens, "-rf") && hasToken(tokens, "/") {
		return []string{"The command 'rm -rf /' will delete all files on your system."}
	}
	return nil
}

// checkDownloadExecute flags piping curl/wget output into an interpreter,
// with a sharper warning when the downloaded URL looks like a script or
// comes from a suspicious host.
func checkDownloadExecute(raw string, tokens []string) []string {
	if !hasToken(tokens, "curl") && !hasToken(tokens, "wget") {
		return nil
	}
	if !strings.Contains(raw, "|") {
		return nil
	}

	var warnings []string
	for _, interp := range interpreters {
		if hasToken(tokens, interp) {
			warnings = append(warnings, "Downloading and executing a script from the internet can be dangerous.")
			break
		}
	}

	for i, token := range tokens {
		if (token == "curl" || token == "wget") && i+1 < len(tokens) {
			url := strings.ToLower(tokens[i+1])
			if hasAnySubstring(url, scriptExtensions) {
				warnings = append(warnings, fmt.Sprintf(
					"WARNING: This command downloads a script file (%s) and pipes it to an interpreter. This could execute malicious code!",
					tokens[i+1]))
			} else if hasAnySubstring(url, suspiciousSubstrings) {
				warnings = append(warnings, fmt.Sprintf(
					"WARNING: This command downloads from a suspicious URL (%s) and pipes it to an interpreter. This is likely malicious!",
					tokens[i+1]))
			}
		}
	}

	return warnings
}

// checkNullRedirect flags output discarded to the null device.
func checkNullRedirect(_ string, tokens []string) []string {
	if hasToken(tokens, ">") && hasToken(tokens, "/dev/null") {
		return []string{"Redirecting output to /dev/null will hide all output and errors."}
	}
	return nil
}

// checkForkBomb flags the exact fork bomb idiom in the raw string. The
// raw string is used on purpose: tokenization mangles the idiom.
func checkForkBomb(raw string, _ []string) []string {
	if strings.Contains(raw, forkBombLiteral) {
		return []string{"This is a fork bomb and will likely crash your system."}
	}
	return nil
}

// checkSensitiveReads flags read commands paired with well-known
// sensitive file paths.
func checkSensitiveReads(_ string, tokens []string) []string {
	reading := false
	for _, cmd := range readCommands {
		if hasToken(tokens, cmd) {
			reading = true
			break
		}
	}
	if !reading {
		return nil
	}

	var warnings []string
	for _, token := range tokens {
		if desc, ok := sensitivePaths[token]; ok {
			warnings = append(warnings, fmt.Sprintf("Reading sensitive file: %s. %s.", token, desc))
		}
	}
	return warnings
}

func hasToken(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}

func hasAnySubstring(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
