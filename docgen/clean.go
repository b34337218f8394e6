// Package docgen formats the default asset reference for generated
// documentation: free-text cleanup for table cells and descriptions, display
// names for primitive and documented types, and markdown/HTML output.
package docgen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	descriptionReplacer = strings.NewReplacer("\n", " ", "\r", " ", ":", ".", "`", "")
	tableReplacer       = strings.NewReplacer("\n", " ", "\r", " ")
)

// CleanForDescription flattens text for a one-line description field.
// Line breaks become spaces, colons become periods and backticks are dropped.
func CleanForDescription(text string) string {
	return descriptionReplacer.Replace(text)
}

// CleanForTable flattens text for a markdown table cell.
func CleanForTable(text string) string {
	return tableReplacer.Replace(text)
}

// CleanMultiLine trims the whitespace around every line and keeps the
// line structure.
func CleanMultiLine(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n")
}

// primitiveNames maps runtime primitive type names to their display names.
var primitiveNames = map[string]string{
	"Single":  "float",
	"Double":  "double",
	"Int32":   "int",
	"UInt32":  "uint",
	"String":  "string",
	"Boolean": "bool",
	"Void":    "void",
}

// Lookup returns the documentation URL of a documented type.
type Lookup func(name string) (url string, ok bool)

// TypeName returns the display form of a type name: the canonical name of a
// primitive, a markdown link if lookup documents the type, or name unchanged.
// A nil lookup documents nothing.
func TypeName(name string, lookup Lookup) string {
	if p, ok := primitiveNames[name]; ok {
		return p
	}
	if lookup != nil {
		if url, ok := lookup(name); ok {
			return "[" + name + "](" + url + ")"
		}
	}
	return name
}

// DisplayName turns a lookup key such as "default/material_ui" into a
// heading such as "Material Ui". The path prefix is dropped.
func DisplayName(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		key = key[i+1:]
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
