// Package utils provides small helpers shared by the trackdf
// packages and their callers.
//
// It contains:
//   - Mode computation over discrete collections
//   - Per-row error code accumulation
//   - Time formatting and conversion utilities
package utils
