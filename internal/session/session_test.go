package session

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"

	"github.com/marlowcharite/quicktype/internal/schema/jsonschema"
)

func TestRunFromSamples(t *testing.T) {
	result, err := Run(Config{
		TargetLanguage: "go",
		TopLevels: []TopLevelSource{
			{Name: "Root", Samples: []string{`{"a": 1, "b": "x"}`, `{"a": 2, "b": "y"}`}},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := strings.Join(result.Lines, "\n")
	if !strings.Contains(out, "type Root struct {") {
		t.Fatalf("output missing struct header:\n%s", out)
	}
	if !strings.Contains(out, "`json:\"a\"`") || !strings.Contains(out, "`json:\"b\"`") {
		t.Fatalf("output missing json tags:\n%s", out)
	}
}

func TestRunFromJSONSchema(t *testing.T) {
	doc := &jsonschema.Document{
		Type: "object",
		Properties: map[string]*jsonschema.Document{
			"n": {Type: "integer"},
		},
		PropertyOrder: []string{"n"},
		Required:      []string{},
		RequiredSet:   true,
	}
	result, err := Run(Config{
		TargetLanguage: "go",
		TopLevels: []TopLevelSource{
			{Name: "Root", Schema: doc},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := strings.Join(result.Lines, "\n")
	if !strings.Contains(out, "type Root struct {") {
		t.Fatalf("output missing struct header:\n%s", out)
	}
	// required present-but-empty means every property is nullable.
	if !strings.Contains(out, "*int64") {
		t.Fatalf("expected a nullable *int64 field, got:\n%s", out)
	}
}

func TestRunRejectsUnknownLanguage(t *testing.T) {
	_, err := Run(Config{
		TargetLanguage: "rust",
		TopLevels:      []TopLevelSource{{Name: "Root", Samples: []string{`{"a": 1}`}}},
	})
	if err == nil {
		t.Fatalf("expected an error for an unsupported target language")
	}
}

func TestRunRequiresAtLeastOneTopLevel(t *testing.T) {
	_, err := Run(Config{TargetLanguage: "go"})
	if err == nil {
		t.Fatalf("expected an error for zero top levels")
	}
}

// TestRunGoldenOutput pins the exact emitted lines for a small two-field
// struct, so a change to field ordering, spacing, or tag formatting in the
// renderer shows up as an explicit diff rather than a passing substring
// check.
func TestRunGoldenOutput(t *testing.T) {
	result, err := Run(Config{
		TargetLanguage:  "go",
		RendererOptions: map[string]string{"package": "sample"},
		TopLevels: []TopLevelSource{
			{Name: "Root", Samples: []string{`{"a": 1, "b": "x"}`}},
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"package sample",
		"",
		"type Root struct {",
		"\tA int64 `json:\"a\"`",
		"\tB string `json:\"b\"`",
		"}",
	}

	if diff := cmp.Diff(want, result.Lines); diff != "" {
		unified, uerr := generateUnifiedDiff(strings.Join(want, "\n"), strings.Join(result.Lines, "\n"))
		if uerr != nil {
			t.Fatalf("Lines mismatch (-want +got):\n%s\nwant:\n%s\ngot:\n%s", diff, pretty.Sprint(want), pretty.Sprint(result.Lines))
		}
		t.Fatalf("Lines mismatch:\n%s", unified)
	}
}
