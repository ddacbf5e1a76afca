// Package signals explains POSIX signal flags as used by kill and killall.
package signals

import (
	"fmt"
	"strconv"
	"strings"
)

// numberToName maps common signal numbers to their names.
var numberToName = map[int]string{
	1:  "SIGHUP",
	2:  "SIGINT",
	3:  "SIGQUIT",
	6:  "SIGABRT",
	9:  "SIGKILL",
	11: "SIGSEGV",
	13: "SIGPIPE",
	14: "SIGALRM",
	15: "SIGTERM",
}

// nameToDesc maps signal names to a short description.
var nameToDesc = map[string]string{
	"SIGHUP":  "Hangup detected on controlling terminal or death of controlling process",
	"SIGINT":  "Interrupt from keyboard (Ctrl+C)",
	"SIGQUIT": "Quit from keyboard (core dump)",
	"SIGABRT": "Abort signal from abort(3)",
	"SIGKILL": "Kill signal (cannot be caught or ignored)",
	"SIGSEGV": "Invalid memory reference",
	"SIGPIPE": "Broken pipe: write to pipe with no readers",
	"SIGALRM": "Timer signal from alarm(2)",
	"SIGTERM": "Termination signal",
}

// Normalize upper-cases a signal name and adds the SIG prefix if missing,
// so "kill", "KILL" and "SIGKILL" all become "SIGKILL".
func Normalize(sig string) string {
	name := strings.ToUpper(sig)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	return name
}

// ExplainFlag renders an explanation line for a signal flag, or "" when
// the argument is not a recognizable signal flag.
//
// Recognized forms: -9, -KILL, -SIGKILL, and -s with the signal in next
// (number or name). Lines carry the two-space flag indentation.
func ExplainFlag(arg, next string) string {
	if strings.HasPrefix(arg, "-") && len(arg) > 1 && arg != "-s" {
		payload := arg[1:]
		if num, err := strconv.Atoi(payload); err == nil {
			if name, ok := numberToName[num]; ok {
				return fmt.Sprintf("  %s: send %s (%s)", arg, name, describe(name))
			}
			return ""
		}
		name := Normalize(payload)
		if desc, ok := nameToDesc[name]; ok {
			return fmt.Sprintf("  %s: send %s (%s)", arg, name, desc)
		}
	}

	if arg == "-s" && next != "" {
		if num, err := strconv.Atoi(next); err == nil {
			if name, ok := numberToName[num]; ok {
				return fmt.Sprintf("  -s %s: send %s (%s)", next, name, describe(name))
			}
			return ""
		}
		name := Normalize(next)
		if desc, ok := nameToDesc[name]; ok {
			return fmt.Sprintf("  -s %s: send %s (%s)", next, name, desc)
		}
	}

	return ""
}

func describe(name string) string {
	if desc := nameToDesc[name]; desc != "" {
		return desc
	}
	return "signal"
}
