// Package emit writes a single, self-contained Go source file that
// computes the generated minimal perfect hash.
//
// The emitted file embeds the packed label array, the four rank summary
// tables, the hash primitive's inline computation, and the final
// reduction that turns three hash words into a winning vertex and then a
// dense output rank. Each of these is its own writer function: a small
// tree of writer calls reads more clearly than one monolithic printf
// sequence.
package emit
