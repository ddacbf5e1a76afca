package knowledge

import (
	"context"

	"github.com/user/shexplain/internal/helpdoc"
)

// Resolution is the merged view of everything known about one command.
type Resolution struct {
	Name string
	// Known reports whether the command was present in the static or
	// custom table. Unknown commands carry no danger level and produce
	// no danger warning.
	Known       bool
	Description string
	Danger      DangerLevel
	Flags       map[string]string
	Subcommands map[string]string
}

// Resolver merges the combined static+custom table with dynamically
// extracted help text. It is a read-only snapshot: build one per
// invocation or per request.
type Resolver struct {
	table Table
	docs  helpdoc.Source
}

// NewResolver creates a resolver over a table and an optional dynamic
// source. A nil source disables dynamic extraction entirely.
func NewResolver(table Table, docs helpdoc.Source) *Resolver {
	if table == nil {
		table = Table{}
	}
	return &Resolver{table: table, docs: docs}
}

// Resolve produces the merged knowledge for one command name.
//
// Merge contract, preserved exactly:
//   - description and danger level from the table are authoritative and
//     never overridden by dynamic data;
//   - flags start from the table entry and dynamic flags are applied on
//     top, dynamic winning on key collision;
//   - subcommands are the opposite: dynamic entries only fill gaps the
//     table leaves;
//   - a command absent from the table is described purely dynamically,
//     with no danger level assigned.
func (r *Resolver) Resolve(ctx context.Context, name string) Resolution {
	entry, known := r.table[name]

	if !known {
		res := Resolution{
			Name:        name,
			Flags:       map[string]string{},
			Subcommands: map[string]string{},
		}
		if r.docs != nil {
			res.Description = r.docs.Summary(ctx, name)
			res.Flags = r.docs.Flags(ctx, name)
			res.Subcommands = r.docs.Subcommands(ctx, name)
		}
		return res
	}

	merged := entry.Clone()
	if merged.Flags == nil {
		merged.Flags = map[string]string{}
	}
	if merged.Subcommands == nil {
		merged.Subcommands = map[string]string{}
	}

	if r.docs != nil {
		for flag, desc := range r.docs.Flags(ctx, name) {
			merged.Flags[flag] = desc
		}
		for sub, desc := range r.docs.Subcommands(ctx, name) {
			if _, exists := merged.Subcommands[sub]; !exists {
				merged.Subcommands[sub] = desc
			}
		}
	}

	return Resolution{
		Name:        name,
		Known:       true,
		Description: merged.Description,
		Danger:      merged.Danger,
		Flags:       merged.Flags,
		Subcommands: merged.Subcommands,
	}
}
