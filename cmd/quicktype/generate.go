package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marlowcharite/quicktype/internal/schema/graphqlschema"
	"github.com/marlowcharite/quicktype/internal/schema/jsonschema"
	"github.com/marlowcharite/quicktype/internal/session"
)

func newGenerateCmd() *cobra.Command {
	gen := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Infer a type graph from one or more input files and emit source code.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGenerate,
	}

	gen.Flags().String("lang", "go", "Target language (only \"go\" is shipped).")
	gen.Flags().String("top-level", "Root", "Name of the top-level type.")
	gen.Flags().String("src-type", "json", "Input kind: \"json\" (one or more samples), \"schema\" (a JSON Schema document), or \"graphql\" (an introspection result).")
	gen.Flags().String("graphql-operation", "", "Root object type to translate, for --src-type=graphql.")
	gen.Flags().String("package", "main", "Package name to emit, for --lang=go.")
	gen.Flags().String("out", "", "Output file; stdout if empty.")
	gen.Flags().Bool("no-maps", false, "Disable the map-vs-class heuristic; every sufficiently-shaped object stays a class.")

	return gen
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topLevel := viper.GetString("top-level")
	log.V(1).Infof("quicktype: generating top level %q from %d file(s), src-type=%s", topLevel, len(args), viper.GetString("src-type"))

	src, err := readTopLevel(topLevel, viper.GetString("src-type"), viper.GetString("graphql-operation"), args)
	if err != nil {
		return err
	}

	result, err := session.Run(session.Config{
		TargetLanguage:  viper.GetString("lang"),
		TopLevels:       []session.TopLevelSource{src},
		NoInferMaps:     viper.GetBool("no-maps"),
		RendererOptions: map[string]string{"package": viper.GetString("package")},
	})
	if err != nil {
		return err
	}

	for _, ann := range result.Annotations {
		log.Warningf("quicktype: %s", ann.Message)
	}

	out := strings.Join(result.Lines, "\n") + "\n"
	outPath := viper.GetString("out")
	if outPath == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outPath, []byte(out), 0o644)
}

func readTopLevel(name, srcType, graphqlOperation string, files []string) (session.TopLevelSource, error) {
	switch srcType {
	case "json":
		samples := make([]string, 0, len(files))
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return session.TopLevelSource{}, fmt.Errorf("reading %s: %w", f, err)
			}
			samples = append(samples, string(data))
		}
		return session.TopLevelSource{Name: name, Samples: samples}, nil

	case "schema":
		if len(files) != 1 {
			return session.TopLevelSource{}, fmt.Errorf("--src-type=schema takes exactly one file, got %d", len(files))
		}
		f, err := os.Open(files[0])
		if err != nil {
			return session.TopLevelSource{}, fmt.Errorf("opening %s: %w", files[0], err)
		}
		defer f.Close()
		doc, err := jsonschema.LoadDocument(f)
		if err != nil {
			return session.TopLevelSource{}, fmt.Errorf("loading schema %s: %w", files[0], err)
		}
		return session.TopLevelSource{Name: name, Schema: doc}, nil

	case "graphql":
		if len(files) != 1 {
			return session.TopLevelSource{}, fmt.Errorf("--src-type=graphql takes exactly one file, got %d", len(files))
		}
		if graphqlOperation == "" {
			return session.TopLevelSource{}, fmt.Errorf("--graphql-operation is required for --src-type=graphql")
		}
		f, err := os.Open(files[0])
		if err != nil {
			return session.TopLevelSource{}, fmt.Errorf("opening %s: %w", files[0], err)
		}
		defer f.Close()
		schema, err := graphqlschema.LoadSchema(f)
		if err != nil {
			return session.TopLevelSource{}, fmt.Errorf("loading graphql schema %s: %w", files[0], err)
		}
		return session.TopLevelSource{Name: name, GraphQLSchema: schema, GraphQLOperation: graphqlOperation}, nil

	default:
		return session.TopLevelSource{}, fmt.Errorf("unknown --src-type %q", srcType)
	}
}
