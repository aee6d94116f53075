package theme

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLookupIsDeterministic(t *testing.T) {
	for _, id := range All() {
		a := Lookup(id)
		b := Lookup(id)
		if a != b {
			t.Errorf("%s: two lookups returned different records", id)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	rec := Lookup(Earth)
	rec.BaseColor = mgl32.Vec4{0, 0, 0, 0}
	rec.Gradient[0] = mgl32.Vec4{9, 9, 9, 9}

	again := Lookup(Earth)
	if again.BaseColor != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Error("mutating a looked-up record changed the table")
	}
	if again.Gradient[0] == (mgl32.Vec4{9, 9, 9, 9}) {
		t.Error("mutating a looked-up gradient changed the table")
	}
}

func TestAllCoversEightThemes(t *testing.T) {
	ids := All()
	if len(ids) != 8 {
		t.Fatalf("expected 8 themes, got %d", len(ids))
	}
	if ids[0] != Earth || ids[7] != NormalMap {
		t.Errorf("unexpected theme order: %v", ids)
	}
}

func TestGradientThemes(t *testing.T) {
	for _, id := range All() {
		rec := Lookup(id)
		wantGradient := id == Earth || id == Heatmap
		if rec.UseGradient != wantGradient {
			t.Errorf("%s: UseGradient = %v, want %v", id, rec.UseGradient, wantGradient)
		}
		if !rec.UseGradient && rec.Gradient != ([4]mgl32.Vec4{}) {
			t.Errorf("%s: flat theme should not carry gradient colors", id)
		}
	}
}

func TestFillModes(t *testing.T) {
	wire := map[ID]bool{WireLight: true, WireDark: true, Synthwave: true, Tron: true}
	for _, id := range All() {
		rec := Lookup(id)
		want := Filled
		if wire[id] {
			want = Wireframe
		}
		if rec.Fill != want {
			t.Errorf("%s: fill mode %d, want %d", id, rec.Fill, want)
		}
	}
}

func TestNormalMapTheme(t *testing.T) {
	rec := Lookup(NormalMap)
	if !rec.UseNormalMap {
		t.Error("normal map theme should set UseNormalMap")
	}
	if rec.Ambient != 0 || rec.Diffuse != 0 || rec.Specular != 0 || rec.Shininess != 0 {
		t.Errorf("normal map theme should zero lighting, got ka=%f kd=%f ks=%f sh=%f",
			rec.Ambient, rec.Diffuse, rec.Specular, rec.Shininess)
	}

	for _, id := range All() {
		if id != NormalMap && Lookup(id).UseNormalMap {
			t.Errorf("%s should not use the normal map path", id)
		}
	}
}

func TestEarthValues(t *testing.T) {
	rec := Lookup(Earth)
	if rec.ClearColor != (mgl32.Vec4{.65, .72, .77, 1}) {
		t.Errorf("earth clear color = %v", rec.ClearColor)
	}
	if rec.Ambient != 0.4 || rec.Diffuse != 0.8 || rec.Specular != 0.2 || rec.Shininess != 0 {
		t.Errorf("earth lighting = %f %f %f %f", rec.Ambient, rec.Diffuse, rec.Specular, rec.Shininess)
	}
}

func TestLookupUndefinedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined theme")
		}
	}()
	Lookup(ID(42))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{"earth", Earth},
		{"Earth", Earth},
		{"wire-light", WireLight},
		{"Wire Light", WireLight},
		{"wire_dark", WireDark},
		{"TRON", Tron},
		{"heat map", Heatmap},
		{"heatmap", Heatmap},
		{"normal-map", NormalMap},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	if _, err := Parse("vaporwave"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(id.String())
		if err != nil || got != id {
			t.Errorf("Parse(%q) = %v, %v", id.String(), got, err)
		}
		if id.Label() == "" {
			t.Errorf("%s has empty label", id)
		}
	}
	if ID(-1).Valid() || ID(8).Valid() {
		t.Error("out of range ids should be invalid")
	}
}
