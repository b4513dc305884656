// Package walstat parses official Welsh Government statistics data files
// into an in-memory model of local authority areas, and renders that model
// as aligned text tables or as JSON.
//
// The model is a three-level hierarchy:
//   - Measure: a single named metric (e.g. population density) holding one
//     value per year.
//   - Area: one local authority, with its names in English and Welsh and a
//     collection of measures.
//   - Areas: the store of every imported area, keyed by authority code.
//
// Data is imported through [Areas.Populate], which understands three source
// layouts (a simple authority-code CSV, a wide CSV with one column per year,
// and the StatsWales JSON export) and merges every imported record into the
// store, so several datasets can contribute measures to the same area
// without losing data. Imports can be narrowed by area codes, measure codes
// and an inclusive year range.
//
// This package is the foundation for the `wls` command-line tool.
package walstat
