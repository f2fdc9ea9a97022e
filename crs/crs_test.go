package crs

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "longlat proj string", spec: "+proj=longlat +datum=WGS84"},
		{name: "utm proj string", spec: "+proj=utm +zone=32 +ellps=GRS80"},
		{name: "flag-only parameter", spec: "+proj=longlat +no_defs"},
		{name: "epsg reference", spec: "EPSG:32632"},
		{name: "lowercase epsg", spec: "epsg:4326"},
		{name: "empty", spec: "", wantErr: true},
		{name: "whitespace only", spec: "   ", wantErr: true},
		{name: "no proj parameter", spec: "+datum=WGS84", wantErr: true},
		{name: "bare word", spec: "longlat", wantErr: true},
		{name: "malformed epsg", spec: "EPSG:abc", wantErr: true},
		{name: "malformed token", spec: "+proj=utm zone=32", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if !c.IsDefined() {
				t.Errorf("Parse(%q) produced an undefined CRS", tt.spec)
			}
		})
	}
}

func TestEqualIsStructural(t *testing.T) {
	a, err := Parse("+proj=utm +zone=32 +ellps=GRS80")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("+ellps=GRS80  +proj=utm +zone=32")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("parameter order should not affect equality: %q vs %q", a, b)
	}

	c, err := Parse("+proj=utm +zone=33 +ellps=GRS80")
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Errorf("different zones compare equal: %q vs %q", a, c)
	}

	e1, _ := Parse("epsg:4326")
	e2, _ := Parse("EPSG:4326")
	if !e1.Equal(e2) {
		t.Errorf("EPSG case should not affect equality")
	}
}

func TestUnprojected(t *testing.T) {
	if Unprojected.IsDefined() {
		t.Error("zero CRS reports defined")
	}
	if Unprojected.String() != "unprojected" {
		t.Errorf("String() = %q, want %q", Unprojected.String(), "unprojected")
	}
	if !LongLat.IsDefined() {
		t.Error("LongLat reports undefined")
	}
	if LongLat.Equal(Unprojected) {
		t.Error("LongLat equals the zero CRS")
	}
}

func TestRegistry(t *testing.T) {
	if err := Register("utm32", "+proj=utm +zone=32 +ellps=GRS80"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	got, err := Resolve("UTM32")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := MustParse("+proj=utm +zone=32 +ellps=GRS80")
	if !got.Equal(want) {
		t.Errorf("Resolve(UTM32) = %q, want %q", got, want)
	}

	// Unregistered specs fall back to Parse.
	if _, err := Resolve("+proj=longlat +datum=WGS84"); err != nil {
		t.Errorf("Resolve of a raw spec failed: %v", err)
	}
	if _, err := Resolve("no-such-alias"); err == nil {
		t.Error("Resolve of an unknown alias succeeded")
	}

	if err := Register("", "+proj=longlat"); err == nil {
		t.Error("Register with empty name succeeded")
	}
	if err := Register("bad", "nonsense"); err == nil {
		t.Error("Register with invalid spec succeeded")
	}
}
