// Package export provides the Exporter implementations for the four
// output encodings: pass-through WRIML, plain narrative text, a
// row-oriented tabular block, and a LaTeX document-preparation block.
//
// All exporters preserve corpus and group order and substitute the
// ContextTypeUnspecified sentinel when a record's context type
// attribute is absent. Substitution happens only here, at render time;
// parsed records keep the absence.
package export
