// Package converters reads and writes flow networks in a plain-text
// edge-list format:
//
//	# comment lines and blank lines are ignored
//	6            optional header: number of distinct vertices
//	s a 10       one edge per line: from to capacity
//	a t 4.5
//
// Vertex IDs are whitespace-free tokens. The source and sink are the
// vertices named "s" and "t" unless WithSourceID / WithSinkID say otherwise;
// a terminal that never appears is left undesignated so the flow algorithms
// report it. Capacities are parsed as float64; negative values are kept for
// the algorithms to reject with context.
package converters
