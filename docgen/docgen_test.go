package docgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/defaults"
)

func TestCleanForDescription(t *testing.T) {
	got := CleanForDescription("Uses `diffuse`:\r\nsee below")
	assert.Equal(t, "Uses diffuse.  see below", got)
}

func TestCleanForTable(t *testing.T) {
	assert.Equal(t, "a b  c: `d`", CleanForTable("a\nb\r\nc: `d`"))
}

func TestCleanMultiLine(t *testing.T) {
	assert.Equal(t, "first\nsecond\n\nthird", CleanMultiLine("  first  \n\tsecond\n   \n third"))
}

func TestTypeName(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "Material" {
			return "Material.md", true
		}
		return "", false
	}
	tests := []struct {
		in   string
		want string
	}{
		{"Single", "float"},
		{"Double", "double"},
		{"Int32", "int"},
		{"UInt32", "uint"},
		{"String", "string"},
		{"Boolean", "bool"},
		{"Void", "void"},
		{"Material", "[Material](Material.md)"},
		{"Widget", "Widget"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeName(tt.in, lookup), tt.in)
	}
	assert.Equal(t, "Material", TypeName("Material", nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Material Ui", DisplayName("default/material_ui"))
	assert.Equal(t, "Tex", DisplayName("default/tex"))
	assert.Equal(t, "Equirect Convert", DisplayName("equirect_convert"))
}

func TestSlotRows(t *testing.T) {
	rows := SlotRows()
	require.Len(t, rows, defaults.NumSlots)
	assert.Equal(t, "Material", rows[0].Name)
	assert.Equal(t, defaults.KeyMaterial, rows[0].Key)
	assert.Equal(t, "Sound", rows[len(rows)-1].Type)
}

func TestWriteSlotTable(t *testing.T) {
	rows := []Row{
		{Name: "MeshQuad", Type: "Mesh", Key: "default/mesh_quad", Description: "A quad:\nfacing -Z | white"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSlotTable(&buf, rows, func(name string) (string, bool) {
		return "asset.md#" + strings.ToLower(name), true
	}))

	out := buf.String()
	assert.Contains(t, out, "| MeshQuad | [Mesh](asset.md#mesh) | `default/mesh_quad` | A quad: facing -Z \\| white |")
	assert.Contains(t, out, "## Mesh Quad\n\nA quad. facing -Z | white\n")
}

func TestToHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlotTable(&buf, SlotRows()[:1], nil))
	html := string(ToHTML(buf.Bytes()))
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "default/material")
}
