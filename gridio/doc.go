// Package gridio reads and writes raw intensity grids, the input the
// planner inflates.
//
// Formats:
//
//   - Text: whitespace-separated integers, one grid row per line. Blank lines
//     and lines starting with '#' are skipped.
//   - PGM:  Netpbm graymap, plain (P2) or binary (P5), 8- or 16-bit.
//   - PNG:  any PNG; colour pixels are converted to 8-bit luminance.
//
// ReadFile picks a decoder from the file extension, falling back to the
// leading magic bytes. Values are returned unscaled, so a threshold of 100
// on an 8-bit frame means the same thing whichever format carried it.
package gridio
