package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-room/room/engine"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestFieldCommandModal(t *testing.T) {
	out, err := run(t, "field", "--res", "24")
	if err != nil {
		t.Fatalf("field: %v\n%s", err, out)
	}

	for _, want := range []string{"modal", "|p|", "24³"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Centred source sits on a node of every axial and tangential mode.
	if !strings.Contains(out, "skipped (source on node)") {
		t.Errorf("expected skipped preview:\n%s", out)
	}
}

func TestFieldCommandStatistical(t *testing.T) {
	out, err := run(t, "field", "--res", "24", "--freq", "1000")
	if err != nil {
		t.Fatalf("field: %v\n%s", err, out)
	}

	if !strings.Contains(out, "statistical") || !strings.Contains(out, "RT60 Field") {
		t.Errorf("expected statistical summary:\n%s", out)
	}
	if !strings.Contains(out, "flat") {
		t.Errorf("expected flat-field notice:\n%s", out)
	}
}

func TestFieldCommandRejectsOutOfRange(t *testing.T) {
	_, err := run(t, "field", "--res", "200")
	if err == nil {
		t.Fatal("expected error for resolution 200")
	}

	var re *engine.RangeError
	if !errors.As(err, &re) || re.Param != "resolution" {
		t.Errorf("got %v, want resolution range error", err)
	}
}

func TestFieldCommandUnknownFilter(t *testing.T) {
	_, err := run(t, "field", "--filter", "obliqe")
	if err == nil || !strings.Contains(err.Error(), "Oblique") {
		t.Errorf("got %v, want suggestion of Oblique", err)
	}
}

func TestFileSinkWritesFloat32AndSidecar(t *testing.T) {
	dir := t.TempDir()
	req := engine.DefaultRequest()
	room := geometry.MustNew(req.Lx, req.Ly, req.Lz)
	grid, err := geometry.NewGrid(room, 2)
	if err != nil {
		t.Fatal(err)
	}

	values := []float64{0, 0.25, 0.5, 0.75, 1, 0.125, 0.375, 0.625}
	sink := newFileSink(dir, req)
	if err := sink.Consume(values, grid, "modal"); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	data, err := os.ReadFile(sink.dataPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4*len(values) {
		t.Fatalf("data length = %d, want %d", len(data), 4*len(values))
	}
	for i, want := range values {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		if float64(got) != want {
			t.Errorf("value[%d] = %v, want %v", i, got, want)
		}
	}

	raw, err := os.ReadFile(sink.metaPath)
	if err != nil {
		t.Fatal(err)
	}
	var meta exportMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatal(err)
	}
	if meta.Resolution != 2 || meta.Regime != "modal" || meta.Fingerprint != req.Fingerprint().String() {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if filepath.Base(sink.dataPath) != meta.Fingerprint+".f32" {
		t.Errorf("data file %s not named after fingerprint", sink.dataPath)
	}
}

func TestFieldCommandExport(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "field", "--res", "24", "--out", dir)
	if err != nil {
		t.Fatalf("field: %v\n%s", err, out)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.f32"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %d exports, want 1", len(matches))
	}

	info, err := os.Stat(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 4*24*24*24 {
		t.Errorf("export size = %d, want %d", info.Size(), 4*24*24*24)
	}
}

func TestListModesCoupling(t *testing.T) {
	room := geometry.MustNew(5, 4, 3)
	modes := mode.Collect(mode.Limits{NX: 2, NY: 2, NZ: 2}, mode.FilterAll)

	rows := listModes(room, room.Center(), modes, 343, 1e-8)
	if len(rows) != len(modes) {
		t.Fatalf("rows = %d, want %d", len(rows), len(modes))
	}

	for _, r := range rows {
		// Only (1,1,1) avoids a node at the centre within these limits.
		want := r.mode == mode.Mode{NX: 1, NY: 1, NZ: 1}
		if r.coupled != want {
			t.Errorf("%s coupled = %v, want %v", r.mode, r.coupled, want)
		}
	}
}

func TestModesCommandSortsByFrequency(t *testing.T) {
	out, err := run(t, "modes", "--nx", "2", "--ny", "2", "--nz", "2", "--sort", "freq")
	if err != nil {
		t.Fatalf("modes: %v\n%s", err, out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output:\n%s", out)
	}
	// (1,0,0) at 34.3 Hz is the lowest mode of a 5 m room.
	if !strings.HasPrefix(lines[1], "(1,0,0)") {
		t.Errorf("first row = %q, want (1,0,0)", lines[1])
	}
	if !strings.Contains(lines[len(lines)-1], "26 admitted") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestModesCommandRejectsUnknownSort(t *testing.T) {
	if _, err := run(t, "modes", "--sort", "size"); err == nil {
		t.Fatal("expected error for --sort size")
	}
}

func TestResponseCommand(t *testing.T) {
	out, err := run(t, "response", "--sx", "1.1", "--sy", "0.7", "--sz", "0.9", "--length", "4096")
	if err != nil {
		t.Fatalf("response: %v\n%s", err, out)
	}

	for _, want := range []string{"impulse response", "4096 @ 8000 Hz", "RT60 (Sabine)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResponseCommandReceiverOutsideRoom(t *testing.T) {
	if _, err := run(t, "response", "--rx", "9"); err == nil {
		t.Fatal("expected error for receiver outside the room")
	}
}
