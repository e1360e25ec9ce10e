package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-room/room/engine"
	"github.com/cwbudde/algo-room/room/geometry"
)

// exportMeta is written next to the raw field.
type exportMeta struct {
	Fingerprint string    `json:"fingerprint"`
	Regime      string    `json:"regime"`
	Resolution  int       `json:"resolution"`
	Layout      string    `json:"layout"`
	DType       string    `json:"dtype"`
	FrequencyHz float64   `json:"frequency_hz"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Z           []float64 `json:"z"`
}

// fileSink writes a normalized field as little-endian float32 plus a JSON
// sidecar, both named after the request fingerprint.
type fileSink struct {
	dir string
	req engine.Request

	dataPath, metaPath string
}

func newFileSink(dir string, req engine.Request) *fileSink {
	name := req.Fingerprint().String()

	return &fileSink{
		dir:      dir,
		req:      req,
		dataPath: filepath.Join(dir, name+".f32"),
		metaPath: filepath.Join(dir, name+".json"),
	}
}

// Consume implements engine.Sink.
func (s *fileSink) Consume(normalized []float64, grid geometry.Grid, regime string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	if err := writeFloat32(s.dataPath, normalized); err != nil {
		return err
	}

	meta := exportMeta{
		Fingerprint: s.req.Fingerprint().String(),
		Regime:      regime,
		Resolution:  grid.Resolution,
		Layout:      "x-major, z fastest",
		DType:       "float32le",
		FrequencyHz: s.req.FrequencyHz,
		X:           grid.X,
		Y:           grid.Y,
		Z:           grid.Z,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export metadata: %w", err)
	}

	if err := os.WriteFile(s.metaPath, data, 0o644); err != nil {
		return fmt.Errorf("write export metadata: %w", err)
	}

	return nil
}

func writeFloat32(path string, values []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	var buf [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	return nil
}
