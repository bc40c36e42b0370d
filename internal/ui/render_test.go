package ui

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/quadrant/internal/board"
	"github.com/javiermolinar/quadrant/internal/config"
	"github.com/javiermolinar/quadrant/internal/logging"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		arg     string
		name    string
		point   board.Point
		wantErr bool
	}{
		{arg: "MDB=375,375", name: "MDB", point: board.Point{X: 375, Y: 375}},
		{arg: " PT = 1.5 , -20 ", name: "PT", point: board.Point{X: 1.5, Y: -20}},
		{arg: "MDB", wantErr: true},
		{arg: "=1,2", wantErr: true},
		{arg: "MDB=1", wantErr: true},
		{arg: "MDB=a,2", wantErr: true},
		{arg: "MDB=1,b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, p, err := parsePlacement(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if name != tt.name || p != tt.point {
				t.Errorf("got %q %+v, want %q %+v", name, p, tt.name, tt.point)
			}
		})
	}
}

func TestScript(t *testing.T) {
	cfg := config.Default()
	s := newScript(cfg.Entries(), cfg.Geometry(), logging.Discard())

	err := s.run(renderOptions{
		place:   []string{"MDB=375,375", "PT=0,0", "NOPE=1,1", "MDB=10,10"},
		move:    []string{"PT=1000,1000"},
		selectN: "MDB",
		remove:  []string{"PT", "PT"},
	})
	if err != nil {
		t.Fatal(err)
	}

	snap := s.coord.Snapshot()
	if len(snap.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(snap.Items))
	}
	it := snap.Items[0]
	if it.Name != "MDB" || it.X != 350 || it.Y != 350 || !it.Selected {
		t.Errorf("item = %+v", it)
	}

	var names []string
	for _, e := range snap.Palette {
		names = append(names, e.Name)
	}
	if got := strings.Join(names, ","); got != "PP,PRD,PT" {
		t.Errorf("palette = %s", got)
	}
}

func TestScriptBadArgument(t *testing.T) {
	cfg := config.Default()
	s := newScript(cfg.Entries(), cfg.Geometry(), logging.Discard())
	if err := s.run(renderOptions{place: []string{"MDB"}}); err == nil {
		t.Error("expected a parse error")
	}
}

func TestRenderCommand(t *testing.T) {
	DisableColor()
	out := filepath.Join(t.TempDir(), "board.png")

	var stdout, stderr bytes.Buffer
	app := NewApp(config.Default())
	app.SetOutput(&stdout, &stderr)
	app.SetArgs([]string{"render", "--place", "MDB=375,375", "--place", "PT=40,40", "--select", "PT", "--out", out})
	if err := app.Execute(); err != nil {
		t.Fatalf("render: %v\nstderr: %s", err, stderr.String())
	}

	got := stdout.String()
	for _, want := range []string{"NAME", "MDB", "350", "Liberalismo", "PT", "Totalitarismo: 1", "Liberalismo: 1", "Palette: PP, PRD"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(stderr.String(), "wrote snapshot") {
		t.Errorf("stderr = %q", stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("decoding snapshot: %v", err)
	}
}

func TestRenderCommandEmpty(t *testing.T) {
	DisableColor()
	var stdout bytes.Buffer
	app := NewApp(config.Default())
	app.SetOutput(&stdout, &bytes.Buffer{})
	app.SetArgs([]string{"render"})
	if err := app.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Nothing placed.") {
		t.Errorf("output = %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Palette: MDB, PT, PP, PRD") {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestRenderCommandRejectsArgs(t *testing.T) {
	app := NewApp(config.Default())
	app.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	app.SetArgs([]string{"render", "stray"})
	if err := app.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
