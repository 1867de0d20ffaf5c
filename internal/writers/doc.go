// Package writers turns mappings into the serialized outputs of a run.
//
// Design:
//   - Writers own all presentation: the TSV table, GFF features, ePST FASTA and JSONL.
//   - Scanner stays domain-only; Pipeline stays orchestration-only.
package writers
