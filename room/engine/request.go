package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

// Request bounds.
const (
	MinZeta        = 0.0
	MaxZeta        = 0.05
	MinFrequency   = 20.0
	MaxFrequency   = 3000.0
	MinCrossover   = 100.0
	MaxCrossover   = 3000.0
	MaxAbsorption  = 1.0
	MinResolution  = 24
	MaxResolution  = 96
	MaxExportRes   = 128
	MaxTimeSeconds = 1.0
)

// Request holds one resolved value per evaluation parameter.
type Request struct {
	Lx, Ly, Lz  float64 // room dimensions, meters
	Source      geometry.Point
	Zeta        float64 // fraction of critical damping
	Limits      mode.Limits
	Filter      mode.Filter
	FrequencyHz float64
	CrossoverHz float64
	Absorption  float64 // average wall absorption coefficient
	Resolution  int     // voxels per axis
	HighRes     bool    // export path, lifts the resolution bound to MaxExportRes
	Animate     bool
	TimeSeconds float64
}

// DefaultRequest returns a 5×4×3 m room driven at 100 Hz from its centre.
func DefaultRequest() Request {
	return Request{
		Lx: 5, Ly: 4, Lz: 3,
		Source:      geometry.Point{X: 2.5, Y: 2, Z: 1.5},
		Zeta:        0.01,
		Limits:      mode.Limits{NX: 5, NY: 5, NZ: 5},
		Filter:      mode.FilterAll,
		FrequencyHz: 100,
		CrossoverHz: 800,
		Absorption:  0.2,
		Resolution:  32,
	}
}

// MaxResolutionFor returns the resolution ceiling of the request's path.
func (r Request) MaxResolutionFor() int {
	if r.HighRes {
		return MaxExportRes
	}

	return MaxResolution
}

// Validate returns a *RangeError for the first parameter outside its bounds.
func (r Request) Validate() error {
	checks := []error{
		checkRange("Lx", r.Lx, geometry.MinDimension, geometry.MaxDimension),
		checkRange("Ly", r.Ly, geometry.MinDimension, geometry.MaxDimension),
		checkRange("Lz", r.Lz, geometry.MinDimension, geometry.MaxDimension),
		checkRange("source.x", r.Source.X, 0, r.Lx),
		checkRange("source.y", r.Source.Y, 0, r.Ly),
		checkRange("source.z", r.Source.Z, 0, r.Lz),
		checkRange("nx_max", float64(r.Limits.NX), mode.MinLimit, mode.MaxLimit),
		checkRange("ny_max", float64(r.Limits.NY), mode.MinLimit, mode.MaxLimit),
		checkRange("nz_max", float64(r.Limits.NZ), mode.MinLimit, mode.MaxLimit),
		checkRange("filter", float64(r.Filter), float64(mode.FilterAll), float64(mode.FilterOblique)),
		checkRange("zeta", r.Zeta, MinZeta, MaxZeta),
		checkRange("frequency", r.FrequencyHz, MinFrequency, MaxFrequency),
		checkRange("crossover", r.CrossoverHz, MinCrossover, MaxCrossover),
		checkRangeOpenLow("absorption", r.Absorption, 0, MaxAbsorption),
		checkRange("resolution", float64(r.Resolution), MinResolution, float64(r.MaxResolutionFor())),
		checkRange("time", r.TimeSeconds, 0, MaxTimeSeconds),
	}

	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	return nil
}

// canonical renders every field that influences the result.
func (r Request) canonical() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	parts := []string{
		f(r.Lx), f(r.Ly), f(r.Lz),
		f(r.Source.X), f(r.Source.Y), f(r.Source.Z),
		f(r.Zeta),
		fmt.Sprintf("%d/%d/%d", r.Limits.NX, r.Limits.NY, r.Limits.NZ),
		r.Filter.String(),
		f(r.FrequencyHz), f(r.CrossoverHz), f(r.Absorption),
		strconv.Itoa(r.Resolution),
		strconv.FormatBool(r.Animate),
		f(r.TimeSeconds),
	}

	return strings.Join(parts, ";")
}

// Fingerprint returns a name-based UUID identifying the request parameters.
// Identical requests share a fingerprint, so exports can be deduplicated.
func (r Request) Fingerprint() uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(r.canonical()))
}
