package tokenizer

// SegmentKind distinguishes command segments from control operators.
type SegmentKind int

const (
	// KindCommand is a command invocation: the first token is the command
	// name, the rest are its arguments.
	KindCommand SegmentKind = iota
	// KindOperator is a standalone shell control operator.
	KindOperator
)

// Segment is a run of tokens between control operators, or a single
// control operator.
type Segment struct {
	Kind   SegmentKind
	Tokens []string
	// Op holds the operator literal for KindOperator segments.
	Op string
}

// Command returns the command name of a command segment, or "" for an
// operator segment.
func (s Segment) Command() string {
	if s.Kind != KindCommand || len(s.Tokens) == 0 {
		return ""
	}
	return s.Tokens[0]
}

// Args returns the argument tokens of a command segment.
func (s Segment) Args() []string {
	if s.Kind != KindCommand || len(s.Tokens) == 0 {
		return nil
	}
	return s.Tokens[1:]
}

// operatorText maps each control operator to its fixed explanation.
var operatorText = map[string]string{
	"|":  "Pipe the output of the previous command as input to the next command",
	"&&": "Execute next command only if previous command succeeds",
	"||": "Execute next command only if previous command fails",
	";":  "Execute next command regardless of previous command's result",
}

// IsOperator reports whether token is a shell control operator.
func IsOperator(token string) bool {
	_, ok := operatorText[token]
	return ok
}

// OperatorText returns the fixed explanation for a control operator.
// Unknown operators yield "".
func OperatorText(op string) string {
	return operatorText[op]
}

// Split groups a flat token sequence into command and operator segments.
// Operators always stand alone; empty command segments are dropped.
func Split(tokens []string) []Segment {
	var segments []Segment
	var current []string

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, Segment{Kind: KindCommand, Tokens: current})
			current = nil
		}
	}

	for _, token := range tokens {
		if IsOperator(token) {
			flush()
			segments = append(segments, Segment{Kind: KindOperator, Op: token})
			continue
		}
		current = append(current, token)
	}
	flush()

	return segments
}
