package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hints/pkg/model"
	"github.com/goliatone/go-hints/pkg/parser"
)

func TestParse_FieldHints(t *testing.T) {
	doc, warnings := parser.Parse([]byte(`{
		"email": {
			"fieldType": "string",
			"isOptional": "false",
			"minLength": 3,
			"maxLength": "254",
			"displayWidth": "wide",
			"widget": "email-input",
			"metadata": {"group": "contact", "priority": 2}
		},
		"age": {
			"fieldType": "integer",
			"isOptional": false,
			"minValue": 0,
			"maxValue": "120",
			"defaultValue": 18
		}
	}`), "")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	email, ok := doc.Hint("email")
	if !ok {
		t.Fatalf("email hint missing")
	}
	if email.Type != model.ValueKindString {
		t.Fatalf("fieldType mismatch: %s", email.Type)
	}
	if email.Optional == nil || *email.Optional {
		t.Fatalf("isOptional %q should parse as false", "false")
	}
	if !email.FullyDeclarative() {
		t.Fatalf("hint with type and optionality must be fully declarative")
	}
	if email.MinLength == nil || *email.MinLength != 3 {
		t.Fatalf("minLength not parsed: %#v", email.MinLength)
	}
	if email.MaxLength == nil || *email.MaxLength != 254 {
		t.Fatalf("numeric string maxLength not parsed: %#v", email.MaxLength)
	}
	if email.Metadata["priority"] != "2" {
		t.Fatalf("metadata numbers should coerce to strings: %#v", email.Metadata)
	}

	age, _ := doc.Hint("age")
	if age.Range == nil || age.Range.Min != 0 || age.Range.Max != 120 {
		t.Fatalf("range not parsed: %#v", age.Range)
	}
	if age.Default != int64(18) {
		t.Fatalf("default value mismatch: %#v", age.Default)
	}
}

func TestParse_LenientValuesDegradeToAbsent(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"status": {
			"fieldType": 42,
			"isOptional": "yes",
			"minLength": "many",
			"defaultValue": {"nested": true},
			"widget": ""
		}
	}`), "")

	hint, ok := doc.Hint("status")
	if !ok {
		t.Fatalf("status hint missing")
	}
	if hint.Type != "" {
		t.Fatalf("non-string fieldType should be absent, got %q", hint.Type)
	}
	if hint.Optional != nil {
		t.Fatalf("non-boolean isOptional should be absent, got %v", *hint.Optional)
	}
	if hint.FullyDeclarative() {
		t.Fatalf("hint without type/optionality must not be fully declarative")
	}
	if hint.MinLength != nil {
		t.Fatalf("non-numeric minLength should be absent")
	}
	if hint.Default != nil {
		t.Fatalf("non-primitive default should be dropped, got %#v", hint.Default)
	}
}

func TestParse_AliasLocaleFallback(t *testing.T) {
	raw := []byte(`{
		"total": {
			"alias.es": "x, y",
			"alias": "z"
		}
	}`)

	doc, _ := parser.Parse(raw, "es")
	hint, _ := doc.Hint("total")
	if diff := cmp.Diff([]string{"x", "y"}, hint.Aliases); diff != "" {
		t.Fatalf("locale aliases mismatch (-want +got):\n%s", diff)
	}

	doc, _ = parser.Parse(raw, "fr")
	hint, _ = doc.Hint("total")
	if diff := cmp.Diff([]string{"z"}, hint.Aliases); diff != "" {
		t.Fatalf("fallback aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AliasList(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{"total": {"alias": ["sum", " amount due "]}}`), "")
	hint, _ := doc.Hint("total")
	if diff := cmp.Diff([]string{"sum", "amount due"}, hint.Aliases); diff != "" {
		t.Fatalf("alias list mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PartialRangeIsDropped(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{"age": {"minValue": 3}}`), "")
	hint, _ := doc.Hint("age")
	if hint.Range != nil {
		t.Fatalf("single bound must not produce a range: %#v", hint.Range)
	}
}

func TestParse_NestedRangeShape(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{"age": {"range": {"min": 1, "max": 5}}}`), "")
	hint, _ := doc.Hint("age")
	if hint.Range == nil || hint.Range.Min != 1 || hint.Range.Max != 5 {
		t.Fatalf("saved-document range shape not parsed: %#v", hint.Range)
	}
}

func TestParse_ReservedKeysAreNotFields(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"_defaults": {"color": "blue"},
		"_sections": [],
		"_example": {"fieldType": "string"},
		"name": {"fieldType": "string"}
	}`), "")

	if len(doc.FieldHints) != 1 {
		t.Fatalf("expected exactly one field hint, got %#v", doc.FieldHints)
	}
	if _, ok := doc.Hint("_example"); ok {
		t.Fatalf("documentation key must not become a field hint")
	}
}

func TestParse_Sections(t *testing.T) {
	doc, warnings := parser.Parse([]byte(`{
		"_sections": [
			{"id": "main", "title": "Main", "fields": ["a", "b"], "isCollapsible": "true", "layoutStyle": "card"},
			{"id": "extra", "title": "<b>Extra</b>", "description": "<i>More</i> detail", "fields": "c, d"},
			{"id": "broken"},
			{"title": "No id"},
			{"id": "main", "title": "Duplicate"}
		]
	}`), "")

	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warnings)
	}

	main := doc.Sections[0]
	if main.Metadata[model.FieldRefsKey] != "a,b" {
		t.Fatalf("field refs not stashed: %#v", main.Metadata)
	}
	if !main.Collapsible {
		t.Fatalf("stringly isCollapsible not parsed")
	}
	if len(main.Fields) != 0 {
		t.Fatalf("freshly parsed sections must not hold concrete fields")
	}

	extra := doc.Sections[1]
	if extra.Title != "Extra" {
		t.Fatalf("title markup not stripped: %q", extra.Title)
	}
	if extra.Description != "More detail" {
		t.Fatalf("description markup not stripped: %q", extra.Description)
	}
	if extra.Metadata[model.FieldRefsKey] != "c,d" {
		t.Fatalf("CSV field refs not trimmed: %#v", extra.Metadata)
	}
}

func TestParse_SectionTitlesStayPlainText(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"_sections": [
			{"id": "qa", "title": "Q&A", "description": "<b>Sales & Support</b>"}
		]
	}`), "")

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	section := doc.Sections[0]
	if section.Title != "Q&A" {
		t.Fatalf("ampersand must not be entity-escaped: %q", section.Title)
	}
	if section.Description != "Sales & Support" {
		t.Fatalf("markup stripped but text entity-escaped: %q", section.Description)
	}
}

func TestParse_Defaults(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"_defaults": {
			"color": "brand",
			"colors": {"string": "blue", "integer": "green"},
			"itemColors": {"field": "status", "colors": {"open": "red"}, "default": "gray"},
			"dataType": "record",
			"complexity": "simple",
			"context": "detail",
			"custom": {"showBadges": true},
			"presentation": {"lowCount": "cards", "highCount": "table", "threshold": "5"}
		}
	}`), "")

	if doc.DefaultColor != "brand" {
		t.Fatalf("default color mismatch: %q", doc.DefaultColor)
	}
	if doc.ColorMap["integer"] != "green" {
		t.Fatalf("color map mismatch: %#v", doc.ColorMap)
	}
	if doc.ItemColors == nil || doc.ItemColors.Field != "status" || doc.ItemColors.Default != "gray" {
		t.Fatalf("item colors mismatch: %#v", doc.ItemColors)
	}
	if doc.TypeDefault != "record" || doc.ComplexityDefault != "simple" || doc.ContextDefault != "detail" {
		t.Fatalf("default tags mismatch: %#v", doc)
	}
	if doc.CustomPreferences["showBadges"] != "true" {
		t.Fatalf("custom preferences mismatch: %#v", doc.CustomPreferences)
	}

	rule := doc.Presentation
	if rule == nil || rule.Threshold != 5 {
		t.Fatalf("presentation rule mismatch: %#v", rule)
	}
	if rule.StyleFor(5) != "cards" || rule.StyleFor(6) != "table" {
		t.Fatalf("StyleFor around threshold broken")
	}
}

func TestParse_PresentationShapes(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{"_defaults": {"presentation": "table"}}`), "")
	if doc.Presentation == nil || doc.Presentation.StyleFor(0) != "table" {
		t.Fatalf("plain tag presentation mismatch: %#v", doc.Presentation)
	}

	doc, _ = parser.Parse([]byte(`{"_defaults": {"presentation": {"lowCount": "cards"}}}`), "")
	if doc.Presentation != nil {
		t.Fatalf("incomplete count rule must be absent: %#v", doc.Presentation)
	}

	doc, _ = parser.Parse([]byte(`{"_defaults": {"presentation": 7}}`), "")
	if doc.Presentation != nil {
		t.Fatalf("unrecognised presentation shape must be absent")
	}
}

func TestParse_ComputedFromGroups(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"total": {"computedFrom": [["net", "tax"], "quantity, unitPrice"]}
	}`), "")
	hint, _ := doc.Hint("total")
	want := [][]string{{"net", "tax"}, {"quantity", "unitPrice"}}
	if diff := cmp.Diff(want, hint.ComputedFrom); diff != "" {
		t.Fatalf("dependency groups mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Options(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{
		"status": {"options": [
			{"value": "open", "label": "Open"},
			{"value": 2},
			"closed",
			{"label": "no value"}
		]}
	}`), "")
	hint, _ := doc.Hint("status")
	want := []model.Option{
		{Value: "open", Label: "Open"},
		{Value: "2", Label: "2"},
		{Value: "closed", Label: "closed"},
	}
	if diff := cmp.Diff(want, hint.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YAMLAndTOML(t *testing.T) {
	yamlDoc := strings.Join([]string{
		"email:",
		"  fieldType: string",
		"  isOptional: false",
		"_sections:",
		"  - id: s1",
		"    title: Main",
		"    fields: [email]",
	}, "\n")

	doc, warnings := parser.Parse([]byte(yamlDoc), "")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	hint, ok := doc.Hint("email")
	if !ok || hint.Type != model.ValueKindString {
		t.Fatalf("YAML field hint not parsed: %#v", doc.FieldHints)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Metadata[model.FieldRefsKey] != "email" {
		t.Fatalf("YAML sections not parsed: %#v", doc.Sections)
	}

	tomlDoc := strings.Join([]string{
		`[email]`,
		`fieldType = "string"`,
		`isOptional = false`,
	}, "\n")

	doc, _ = parser.Parse([]byte(tomlDoc), "")
	hint, ok = doc.Hint("email")
	if !ok || hint.Optional == nil || *hint.Optional {
		t.Fatalf("TOML field hint not parsed: %#v", doc.FieldHints)
	}
}

func TestParse_UndecodablePayload(t *testing.T) {
	doc, warnings := parser.Parse([]byte("{{{not a document"), "es")
	if doc == nil {
		t.Fatalf("parse must never return nil")
	}
	if len(doc.FieldHints) != 0 || len(doc.Sections) != 0 || len(warnings) != 0 {
		t.Fatalf("undecodable payload must yield an empty document")
	}
}

func TestParse_AbsentVersusEmpty(t *testing.T) {
	doc, _ := parser.Parse([]byte(`{"name": {"fieldType": "string"}}`), "")
	if doc.ColorMap != nil {
		t.Fatalf("absent color map must stay nil")
	}
	if doc.CustomPreferences != nil {
		t.Fatalf("absent custom preferences must stay nil")
	}
	if doc.Presentation != nil || doc.ItemColors != nil {
		t.Fatalf("absent defaults must stay nil")
	}
}
