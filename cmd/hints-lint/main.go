// Command hints-lint validates hints documents against the authoring
// schema. The runtime parser is deliberately forgiving, so this is the
// strict check an author runs before shipping a document: it reports the
// malformed members the parser would silently drop.
package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var hintsSchema []byte

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [files...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nValidate hints documents against the authoring schema.\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	schema, err := compileSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hints-lint: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, path := range paths {
		if err := lintFile(schema, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("hints.schema.json", bytes.NewReader(hintsSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("hints.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func lintFile(schema *jsonschema.Schema, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	instance, err := decode(data, path)
	if err != nil {
		return err
	}

	if err := schema.Validate(instance); err != nil {
		return err
	}
	return nil
}

func decode(data []byte, path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var instance map[string]any
		if err := yaml.Unmarshal(data, &instance); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		return normalize(instance), nil
	case ".toml":
		var instance map[string]any
		if err := toml.Unmarshal(data, &instance); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
		return normalize(instance), nil
	default:
		var instance any
		if err := json.Unmarshal(data, &instance); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		return instance, nil
	}
}

// normalize round-trips a decoded document through JSON so the validator
// sees JSON-native value kinds regardless of the input format.
func normalize(instance map[string]any) any {
	payload, err := json.Marshal(instance)
	if err != nil {
		return instance
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return instance
	}
	return out
}
