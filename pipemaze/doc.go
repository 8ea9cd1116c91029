// Package pipemaze finds the closed pipe loop through the start tile of a
// pipe maze and counts the tiles it encloses by ray casting along rows.
//
// Tiles:
//
//	|  north-south      -  east-west
//	L  north-east       J  north-west
//	7  south-west       F  south-east
//	.  ground           S  start (shape derived from its neighbors)
//
// Algorithm:
//
//  1. Resolve S: exactly two neighbors must open back towards it; S takes the
//     unique connector shape with those two openings.
//  2. Walk the loop from S, leaving each tile through the opening it was not
//     entered by, until the walker is back on S.
//  3. Scan each row with a grid.Crossing: loop cells update parity and
//     ridge state, other cells count when the scan is inside.
//
// Complexity: O(R×C) time and memory.
package pipemaze
