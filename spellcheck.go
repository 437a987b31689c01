// Package spellcheck provides a CLI tool that spellchecks document
// files with an external spellchecking engine, pruning code spans,
// code blocks, and link targets from the input first, and reporting
// flagged words in their original-file line context.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., aspell/,
// pandoc/, lipgloss/).
package spellcheck
