// Package main generates JSON schemas for the file formats misctools
// reads and writes: solver job definitions, campaign checkpoint
// metadata and the configuration file. The schemas land in docs/schemas
// for editor integration.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/rodrigo1392/misc-tools/pkg/checkpoint"
	"github.com/rodrigo1392/misc-tools/pkg/config"
	"github.com/rodrigo1392/misc-tools/pkg/runner"
)

// Schema models the subset of JSON Schema draft-07 the generator emits.
type Schema struct {
	Schema      string             `json:"$schema,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// target describes one generated schema: the Go type it mirrors, the
// struct tag carrying the field names, and whether every field is
// optional (configuration files have defaults for everything).
type target struct {
	value       any
	tag         string
	allOptional bool
	title       string
	description string
}

var targets = map[string]target{
	"job": {
		value:       runner.Job{},
		tag:         "json",
		title:       "Solver Job",
		description: "Job definition file consumed by misctools jobs run",
	},
	"checkpoint": {
		value:       checkpoint.Metadata{},
		tag:         "json",
		title:       "Campaign Checkpoint",
		description: "Checkpoint metadata written by resumable job campaigns",
	},
	"config": {
		value:       config.Config{},
		tag:         "mapstructure",
		allOptional: true,
		title:       "Configuration",
		description: "misctools configuration file",
	},
}

func main() {
	var outputDir string

	flag.StringVar(&outputDir, "o", "docs/schemas", "Output directory for schemas")
	flag.Parse()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for name, tgt := range targets {
		schema := generateSchema(tgt)
		if err := writeSchema(outputDir, name, schema); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schema for %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Printf("Generated schema for %s\n", name)
	}

	fmt.Println("All schemas generated")
}

// walker carries the per-target settings through the reflection walk.
type walker struct {
	tag         string
	allOptional bool
	defs        map[string]*Schema
}

func generateSchema(tgt target) *Schema {
	t := reflect.TypeOf(tgt.value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	w := &walker{tag: tgt.tag, allOptional: tgt.allOptional, defs: make(map[string]*Schema)}
	props, required := w.structToProperties(t)

	schema := &Schema{
		Schema:      "https://json-schema.org/draft-07/schema#",
		Title:       tgt.title,
		Description: tgt.description,
		Type:        "object",
		Properties:  props,
		Required:    required,
	}

	if len(w.defs) > 0 {
		schema.Definitions = w.defs
	}

	return schema
}

func (w *walker) structToProperties(t reflect.Type) (map[string]*Schema, []string) {
	props := make(map[string]*Schema)

	var required []string

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get(w.tag)

		if tag == "-" || tag == "" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		omitempty := len(parts) > 1 && parts[1] == "omitempty"

		props[name] = w.typeToSchema(field.Type)

		if !omitempty && !w.allOptional {
			required = append(required, name)
		}
	}

	return props, required
}

func (w *walker) typeToSchema(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t == reflect.TypeOf(time.Duration(0)) {
			return &Schema{Type: "string", Description: "Go duration string, for example 10s"}
		}

		return &Schema{Type: "integer"}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Slice:
		return &Schema{Type: "array", Items: w.typeToSchema(t.Elem())}

	case reflect.Map:
		return &Schema{
			Type: "object",
			Description: fmt.Sprintf("Map with %s keys and %s values",
				t.Key().Kind().String(), t.Elem().Kind().String()),
		}

	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return &Schema{Type: "string", Description: "ISO 8601 timestamp"}
		}

		name := t.Name()
		if name == "" {
			props, required := w.structToProperties(t)

			return &Schema{Type: "object", Properties: props, Required: required}
		}

		if _, exists := w.defs[name]; !exists {
			props, required := w.structToProperties(t)
			w.defs[name] = &Schema{Type: "object", Properties: props, Required: required}
		}

		return &Schema{Ref: "#/definitions/" + name}

	case reflect.Ptr:
		return w.typeToSchema(t.Elem())

	default:
		return &Schema{Type: "object"}
	}
}

func writeSchema(dir, name string, schema *Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	path := filepath.Join(dir, name+".json")

	return os.WriteFile(path, data, 0o600)
}
