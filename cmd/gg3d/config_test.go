package main

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/gogpu/gg3d"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.width != 1920 || cfg.height != 1080 || cfg.scale != 500 {
		t.Errorf("size = %dx%d scale %v, want 1920x1080 scale 500", cfg.width, cfg.height, cfg.scale)
	}
	if cfg.base != "in" || cfg.output != "out.ppm" || cfg.wireframe || cfg.stereo {
		t.Errorf("parseConfig() = %+v, want base in, out.ppm, filled mono", cfg)
	}
	if cfg.center != nil || cfg.dir != nil || cfg.up != nil {
		t.Error("parseConfig() set camera overrides without triples")
	}
}

func TestParseConfig_Interleaved(t *testing.T) {
	args := strings.Fields("-w 640 cube c 1 2 -3 -W -o x.png d 0 0 1 -h 480 u 0 1 0 -s 250 -a")
	cfg, err := parseConfig(args)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.width != 640 || cfg.height != 480 || cfg.scale != 250 {
		t.Errorf("size = %dx%d scale %v, want 640x480 scale 250", cfg.width, cfg.height, cfg.scale)
	}
	if cfg.base != "cube" || cfg.output != "x.png" || !cfg.wireframe || !cfg.stereo {
		t.Errorf("parseConfig() = %+v", cfg)
	}
	cam := cfg.camera(gg3d.Camera{})
	want := gg3d.Camera{Center: gg3d.P3(1, 2, -3), Dir: gg3d.P3(0, 0, 1), Up: gg3d.P3(0, 1, 0)}
	if cam != want {
		t.Errorf("camera = %+v, want %+v", cam, want)
	}
}

func TestParseConfig_LongFlags(t *testing.T) {
	cfg, err := parseConfig(strings.Fields("--width 10 --height 20 --scale 3 --wireframe"))
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.width != 10 || cfg.height != 20 || cfg.scale != 3 || !cfg.wireframe {
		t.Errorf("parseConfig() = %+v", cfg)
	}
}

func TestParseConfig_PartialOverride(t *testing.T) {
	cfg, err := parseConfig(strings.Fields("d 1 0 0"))
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	base := gg3d.DefaultCamera()
	got := cfg.camera(base)
	if got.Center != base.Center || got.Up != base.Up || got.Dir != gg3d.P3(1, 0, 0) {
		t.Errorf("camera = %+v, want default with dir (1,0,0)", got)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"unknown flag", "-q"},
		{"short triple", "c 1 2"},
		{"bad number", "u 0 one 0"},
		{"infinite", "c 0 0 Inf"},
		{"zero width", "-w 0"},
		{"negative height", "-h -5"},
		{"zero scale", "-s 0"},
		{"zero zoom", "-zoom 0"},
		{"negative workers", "-workers -1"},
		{"bad int", "-w wide"},
		{"huge zoom", "-w 33 -h 21 -zoom 1099511627776"},
		{"zoom past pixel limit", "-zoom 100"},
		{"huge image", "-w 1048576 -h 1048576"},
		{"nan separation", "-a -sep NaN"},
		{"infinite separation", "-a -sep Inf"},
		{"negative infinite separation", "-sep -Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(strings.Fields(tt.args)); err == nil {
				t.Errorf("parseConfig(%q) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	if _, err := parseConfig([]string{"-help"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseConfig(-help) error = %v, want flag.ErrHelp", err)
	}
}

func TestPrintUsage(t *testing.T) {
	var b strings.Builder
	printUsage(&b)
	for _, want := range []string{"usage: gg3d", "-wireframe", "-zoom"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("usage is missing %q", want)
		}
	}
}
