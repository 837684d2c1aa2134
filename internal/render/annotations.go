package render

import "strings"

// Kind distinguishes a user-visible Issue from an advisory Hover
// annotation (spec.md §6, §7).
type Kind int

const (
	Issue Kind = iota
	Hover
)

// Span locates an annotation within the emitted output: the (0-based)
// line it attaches to, and optionally a column range within that line.
// A renderer that cannot attribute an annotation to a specific line
// (e.g. a graph-wide degradation) uses Line -1.
type Span struct {
	Line      int
	StartCol  int
	EndCol    int
}

// Annotation is one entry of the stream described by spec.md §4.7: "the
// final emitted artifact is a pair (lines, annotations)".
type Annotation struct {
	Span    Span
	Kind    Kind
	Message string
}

// Annotations is a named slice following the teacher's util.Errors idiom
// (internal/errlist.List): a plain accumulation type with Error()/String()
// rather than a bespoke diagnostics framework.
type Annotations []Annotation

// Append returns a with ann appended.
func Append(a Annotations, ann Annotation) Annotations {
	return append(a, ann)
}

func (a Annotations) Error() string { return a.String() }

func (a Annotations) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, ann := range a {
		prefix := "issue"
		if ann.Kind == Hover {
			prefix = "hover"
		}
		parts[i] = prefix + ": " + ann.Message
	}
	return strings.Join(parts, "\n")
}
