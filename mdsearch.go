// Package mdsearch provides full-text search over a local corpus of
// markdown documents. A search expands the query through a synonym table,
// scans every document concurrently, and ranks matches into exact and
// partial tiers. Selected documents can then be narrowed down to the
// paragraphs and code blocks around a keyword, or to the links they contain.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, edlib/, slog/).
package mdsearch
