// Package pipeline streams reference FASTA records through a Mapper on a
// pool of workers and hands the resulting mappings to a visit callback in
// input order, so output does not depend on the thread count.
//
// The only contract to implement is Mapper (Scan).
package pipeline
