package tests

import (
	"testing"

	"github.com/iancoleman/strcase"
	"gotest.tools/v3/golden"

	"github.com/vito/alspec/pkg/alspec"
	"github.com/vito/alspec/pkg/examples"
)

// TestInterchangeGolden pins the wire format of every example
// specification. The files double as documentation of the interchange
// representation; regenerate with -update after deliberate format
// changes.
func TestInterchangeGolden(t *testing.T) {
	for _, sp := range examples.All() {
		t.Run(sp.Name, func(t *testing.T) {
			data, err := alspec.MarshalSpec(sp)
			if err != nil {
				t.Fatalf("marshal %s: %v", sp.Name, err)
			}
			golden.Assert(t, string(data)+"\n", strcase.ToKebab(sp.Name)+".json.golden")
		})
	}
}

// TestFormatGolden pins the concrete-syntax rendering of every example.
func TestFormatGolden(t *testing.T) {
	for _, sp := range examples.All() {
		t.Run(sp.Name, func(t *testing.T) {
			golden.Assert(t, alspec.FormatSpec(sp), strcase.ToKebab(sp.Name)+".casl.golden")
		})
	}
}

// TestGoldenFilesDecode re-reads each pinned wire file and checks that
// decoding reproduces the in-memory catalog entry, so the golden files
// stay loadable and not merely byte-stable.
func TestGoldenFilesDecode(t *testing.T) {
	for _, sp := range examples.All() {
		t.Run(sp.Name, func(t *testing.T) {
			data := golden.Get(t, strcase.ToKebab(sp.Name)+".json.golden")
			back, err := alspec.UnmarshalSpec(data)
			if err != nil {
				t.Fatalf("unmarshal %s: %v", sp.Name, err)
			}
			if alspec.FormatSpec(back) != alspec.FormatSpec(sp) {
				t.Errorf("decoded %s does not match the catalog entry", sp.Name)
			}
		})
	}
}
