// Package session wires the schema translators and the inference engine
// through canonicalization, naming, and rendering into the single
// synchronous pipeline spec.md §2 and §5 describe: decode/translate every
// top-level source, unify, canonicalize, assign names, then render. There
// is no cancellation and no concurrency between phases; a session runs
// start to finish in one goroutine, matching how the teacher's own
// ygot.EmitIR-style entry points run generation as one linear call chain.
package session

import (
	"fmt"
	"strings"

	log "github.com/golang/glog"

	"github.com/marlowcharite/quicktype/internal/canon"
	"github.com/marlowcharite/quicktype/internal/errlist"
	"github.com/marlowcharite/quicktype/internal/infer"
	"github.com/marlowcharite/quicktype/internal/ir"
	"github.com/marlowcharite/quicktype/internal/jsonstream"
	"github.com/marlowcharite/quicktype/internal/naming"
	"github.com/marlowcharite/quicktype/internal/render"
	"github.com/marlowcharite/quicktype/internal/schema/graphqlschema"
	"github.com/marlowcharite/quicktype/internal/schema/jsonschema"
	"github.com/marlowcharite/quicktype/langs/gojson"
)

// TopLevelSource is one named entry point into the graph. Exactly one of
// Samples, Schema, or GraphQLSchema should be set; Run treats them as
// mutually exclusive alternatives in that order of precedence.
type TopLevelSource struct {
	// Name is the top level's Given name (spec.md's root name hint).
	Name string

	// Samples, when non-empty, is one or more raw JSON documents unified
	// together into this top level (spec.md §2 item 1).
	Samples []string

	// Schema, when set, is a parsed JSON Schema document translated via
	// internal/schema/jsonschema instead of sampled.
	Schema *jsonschema.Document

	// GraphQLSchema and GraphQLOperation, when both set, translate one
	// root object type out of a GraphQL introspection result via
	// internal/schema/graphqlschema.
	GraphQLSchema    *graphqlschema.Schema
	GraphQLOperation string
}

// Config is a complete session's input: what to build the graph from, how
// to interpret ambiguous JSON shapes, and which renderer to drive.
type Config struct {
	// TargetLanguage selects the renderer. Only "go" is wired to a
	// concrete langs/* package today (spec.md's renderer surface is
	// designed for many, but this module ships one reference renderer,
	// per SPEC_FULL.md §10).
	TargetLanguage string

	TopLevels []TopLevelSource

	// NoInferMaps disables the map-vs-class heuristic (spec.md §4.3). The
	// zero value (false) means maps are inferred; set true to disable it
	// and keep every sufficiently-shaped object a class, matching the
	// session-level --no-maps switch SPEC_FULL.md §11 describes.
	NoInferMaps bool

	// RendererOptions carries renderer-specific knobs; langs/gojson reads
	// "package" for its emitted package clause.
	RendererOptions map[string]string
}

// Result is a session's complete output: the rendered source alongside
// every issue recorded along the way, from schema translation and from
// rendering itself.
type Result struct {
	Lines       []string
	Annotations render.Annotations
}

// Run executes one full pipeline pass over cfg and returns the rendered
// output. It never mutates cfg's inputs and never retains the graph it
// builds; a second call to Run starts from a fresh ir.Graph.
func Run(cfg Config) (Result, error) {
	if len(cfg.TopLevels) == 0 {
		return Result{}, fmt.Errorf("session: at least one top level is required")
	}

	g := ir.NewGraph()
	u := infer.NewUnifier(g, cfg.NoInferMaps)
	var issues errlist.List

	for _, tl := range cfg.TopLevels {
		log.V(1).Infof("session: integrating top level %q", tl.Name)
		if err := integrate(g, u, tl, &issues); err != nil {
			return Result{}, fmt.Errorf("session: top level %q: %w", tl.Name, err)
		}
	}

	log.V(1).Infof("session: %d live class(es) before canonicalization", len(g.LiveClassIds()))
	if err := u.ApplyMapHeuristic(); err != nil {
		return Result{}, fmt.Errorf("session: map heuristic: %w", err)
	}
	if err := canon.Canonicalize(g); err != nil {
		return Result{}, fmt.Errorf("session: canonicalize: %w", err)
	}
	if err := ir.CheckArenaIntegrity(g); err != nil {
		return Result{}, fmt.Errorf("session: arena integrity: %w", err)
	}
	if err := ir.CheckNoDanglingSlots(g); err != nil {
		return Result{}, fmt.Errorf("session: dangling slots: %w", err)
	}

	lang, keywords, err := resolveLanguage(cfg.TargetLanguage, cfg.RendererOptions)
	if err != nil {
		return Result{}, err
	}

	nt, err := render.BuildNameTable(g, keywords, lang)
	if err != nil {
		return Result{}, fmt.Errorf("session: build name table: %w", err)
	}
	cr := render.NewConvenienceRenderer(g, nt, lang)
	rendered, err := cr.Render()
	if err != nil {
		return Result{}, fmt.Errorf("session: render: %w", err)
	}

	all := rendered.Annotations
	for _, iss := range issues {
		all = render.Append(all, render.Annotation{Span: render.Span{Line: -1}, Kind: render.Issue, Message: iss.Error()})
	}
	return Result{Lines: rendered.Lines, Annotations: all}, nil
}

// integrate folds one TopLevelSource into g, via whichever of sampling,
// JSON Schema translation, or GraphQL translation it selects.
func integrate(g *ir.Graph, u *infer.Unifier, tl TopLevelSource, issues *errlist.List) error {
	switch {
	case len(tl.Samples) > 0:
		agg := ir.NoInformation()
		for _, raw := range tl.Samples {
			v, err := jsonstream.Decode(strings.NewReader(raw))
			if err != nil {
				return fmt.Errorf("decode sample: %w", err)
			}
			merged, err := u.IntegrateSample(agg, v, infer.NameHint{Name: tl.Name, Given: true})
			if err != nil {
				return fmt.Errorf("integrate sample: %w", err)
			}
			agg = merged
		}
		g.AddTopLevel(tl.Name, agg)
		return nil

	case tl.Schema != nil:
		tr := jsonschema.NewTranslator(g)
		typ, err := tr.Translate(tl.Schema, tl.Schema, ir.NewNameSet(tl.Name, true))
		if err != nil {
			return fmt.Errorf("translate schema: %w", err)
		}
		*issues = append(*issues, tr.Issues...)
		g.AddTopLevel(tl.Name, typ)
		return nil

	case tl.GraphQLSchema != nil:
		tr := graphqlschema.NewTranslator(g, tl.GraphQLSchema)
		root := &graphqlschema.TypeRef{Kind: graphqlschema.Object, Name: tl.GraphQLOperation}
		if _, err := tr.TranslateOperation(tl.Name, root); err != nil {
			return fmt.Errorf("translate graphql operation: %w", err)
		}
		*issues = append(*issues, tr.Issues...)
		return nil

	default:
		return fmt.Errorf("no samples, schema, or GraphQL schema given")
	}
}

// resolveLanguage maps a --lang string to a concrete renderer and its
// keyword table. Only "go" has a shipped renderer; every other name
// returns an error rather than silently falling back.
func resolveLanguage(target string, opts map[string]string) (render.LangRenderer, []string, error) {
	switch target {
	case "", "go":
		return gojson.New(opts["package"]), naming.GoKeywords, nil
	default:
		return nil, nil, fmt.Errorf("session: unsupported target language %q", target)
	}
}
