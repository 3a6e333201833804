// Package render turns a graph and a stepper snapshot into a frame.
//
// Renderers only read their inputs. The Terminal renderer draws one
// character per lattice node, coloured with lipgloss:
//
//	S start    E end     * path     @ current node
//	o visited  + frontier (reached, not finalized)
//	. untouched node, dimmed by the mean weight of its outgoing edges
//
// followed by a one-line status summary of the snapshot.
package render
