// Package field projects complex pressure fields onto real scalars and maps
// them to [0, 1] for renderers and exporters.
//
// Magnitude and energy use the SIMD kernels of algo-vecmath when available.
// Normalize never produces NaN or Inf: a flat field maps to all zeros.
package field
