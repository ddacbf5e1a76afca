// Package knowledge holds structured metadata about shell commands and
// resolves a command name against the static table, the user's custom
// table, and dynamically extracted help text.
package knowledge

import "fmt"

// DangerLevel is a qualitative severity tag for a command.
type DangerLevel string

// Danger levels in increasing severity.
const (
	DangerLow      DangerLevel = "low"
	DangerMedium   DangerLevel = "medium"
	DangerHigh     DangerLevel = "high"
	DangerCritical DangerLevel = "critical"
)

// severityRank orders danger levels; unknown levels rank below low.
var severityRank = map[DangerLevel]int{
	DangerLow:      1,
	DangerMedium:   2,
	DangerHigh:     3,
	DangerCritical: 4,
}

// Severity returns the numeric rank of the level. Unset or unknown
// levels rank 0.
func (d DangerLevel) Severity() int {
	return severityRank[d]
}

// Warnable reports whether the level is severe enough to emit a warning.
func (d DangerLevel) Warnable() bool {
	return d == DangerHigh || d == DangerCritical
}

// ParseDangerLevel validates a danger level string.
func ParseDangerLevel(s string) (DangerLevel, error) {
	level := DangerLevel(s)
	if _, ok := severityRank[level]; !ok {
		return "", fmt.Errorf("invalid danger level: %q (must be low, medium, high, or critical)", s)
	}
	return level, nil
}

// Entry is structured metadata about one command name.
type Entry struct {
	Description string            `json:"description"`
	Danger      DangerLevel       `json:"danger_level,omitempty"`
	Flags       map[string]string `json:"flags,omitempty"`
	Subcommands map[string]string `json:"subcommands,omitempty"`
}

// Clone returns a deep copy so callers can merge without mutating tables.
func (e Entry) Clone() Entry {
	clone := Entry{Description: e.Description, Danger: e.Danger}
	if e.Flags != nil {
		clone.Flags = make(map[string]string, len(e.Flags))
		for k, v := range e.Flags {
			clone.Flags[k] = v
		}
	}
	if e.Subcommands != nil {
		clone.Subcommands = make(map[string]string, len(e.Subcommands))
		for k, v := range e.Subcommands {
			clone.Subcommands[k] = v
		}
	}
	return clone
}

// Table maps command names to entries.
type Table map[string]Entry

// Merge overlays other on top of the table, other winning per command.
// Used to apply the custom table over the builtin one.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for name, entry := range t {
		merged[name] = entry
	}
	for name, entry := range other {
		merged[name] = entry
	}
	return merged
}
