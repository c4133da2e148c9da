// Command hints-scaffold generates a skeleton hints document for a schema
// component of an OpenAPI specification. The generated file lands in the
// target directory's "Hints" subfolder, ready for an author to refine and
// for the runtime source chain to pick up.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-hints/pkg/model"
	"github.com/goliatone/go-hints/pkg/source"
)

func main() {
	var (
		schemaPath  = flag.String("schema", "", "path to the OpenAPI document")
		component   = flag.String("component", "", "schema component to scaffold (prompted when omitted)")
		outDir      = flag.String("out", ".", "directory receiving the Hints folder")
		interactive = flag.Bool("interactive", true, "prompt before overwriting an existing document")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -schema openapi.json [-component Name] [-out dir]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nGenerate a skeleton hints document from an OpenAPI schema component.\n")
	}
	flag.Parse()

	if *schemaPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *schemaPath, *component, *outDir, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "hints-scaffold: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, schemaPath, component, outDir string, interactive bool) error {
	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	spec, err := loader.LoadFromFile(schemaPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", schemaPath, err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return fmt.Errorf("%s declares no schema components", schemaPath)
	}

	if component == "" {
		if !interactive {
			return fmt.Errorf("-component is required when prompts are disabled")
		}
		component, err = pickComponent(spec.Components.Schemas)
		if err != nil {
			return err
		}
	}

	ref, ok := spec.Components.Schemas[component]
	if !ok {
		return fmt.Errorf("component %q not found in %s", component, schemaPath)
	}

	hints := scaffoldHints(ref)
	if len(hints) == 0 {
		return fmt.Errorf("component %q has no object properties to scaffold", component)
	}

	target := filepath.Join(outDir, source.HintsDir, component+".json")
	if interactive {
		if _, err := os.Stat(target); err == nil {
			overwrite := false
			prompt := &survey.Confirm{Message: fmt.Sprintf("Overwrite %s?", target)}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				return nil
			}
		}
	}

	if err := source.Save(outDir, component, hints); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d fields)\n", target, len(hints))
	return nil
}

func pickComponent(schemas openapi3.Schemas) (string, error) {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	selected := ""
	prompt := &survey.Select{Message: "Schema component:", Options: names}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func scaffoldHints(ref *openapi3.SchemaRef) map[string]model.FieldHint {
	if ref == nil || ref.Value == nil {
		return nil
	}
	schema := ref.Value

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	hints := make(map[string]model.FieldHint, len(schema.Properties))
	for name, property := range schema.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		hints[name] = scaffoldField(property.Value, name, required)
	}
	return hints
}

func scaffoldField(schema *openapi3.Schema, name string, required map[string]struct{}) model.FieldHint {
	hint := model.FieldHint{Type: valueKind(schema.Type)}

	_, isRequired := required[name]
	optional := !isRequired
	hint.Optional = &optional

	if hint.Type == model.ValueKindArray {
		collection := true
		hint.Collection = &collection
	}

	switch v := schema.Default.(type) {
	case string, bool, float64, int64:
		hint.Default = v
	}

	if schema.Min != nil && schema.Max != nil {
		hint.Range = &model.Range{Min: *schema.Min, Max: *schema.Max}
	}
	if schema.MinLength != 0 {
		length := int(schema.MinLength)
		hint.MinLength = &length
	}
	if schema.MaxLength != nil {
		length := int(*schema.MaxLength)
		hint.MaxLength = &length
	}

	for _, entry := range schema.Enum {
		value, ok := enumString(entry)
		if !ok {
			continue
		}
		hint.Options = append(hint.Options, model.Option{Value: value, Label: value})
	}

	return hint
}

func valueKind(types *openapi3.Types) model.ValueKind {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return model.ValueKind(values[0])
}

func enumString(entry any) (string, bool) {
	switch v := entry.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed, trimmed != ""
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
