// Package lagoon measures the area of a lagoon dug by following a closed
// plan of axis-aligned steps. The trench itself and every cell it encloses
// count.
//
// Three methods are provided:
//
//   - Raster digs the plan into a unit grid with one cell of padding and
//     scans each row with a grid.Crossing. Memory grows with the bounding
//     box, so it suits the plain plans.
//   - Area digs the same plan into a coordinate-compressed grid: every
//     vertex contributes the bands [v, v+1) and [v+1, next), so each
//     compressed cell is uniformly trench, interior or exterior and weighs
//     width × height. This handles hex plans whose steps reach 10⁶.
//   - Shoelace evaluates the closed form A + P/2 + 1 and is kept as a
//     cross-check of the two scanners.
//
// Input lines look like "R 6 (#70c710)". ParsePlan reads direction and
// distance; ParseHex decodes the color instead: five hex digits of distance
// followed by a direction digit 0:R 1:D 2:L 3:U.
package lagoon
