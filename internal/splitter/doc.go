// Package splitter turns one PGN collection into one fixture file per game.
//
// The pipeline is linear: ReadInput decodes the source file, Split breaks
// the text on blank-line runs, Pair groups the resulting blocks two at a time
// (tag section, then movetext), and Writer persists every game concurrently,
// joining all writes before returning. Pairing is positional; nothing here
// interprets PGN syntax.
//
// A failed read aborts the run before any file is touched. Write failures are
// isolated per game: each is logged and reported in the Report, and sibling
// writes proceed.
package splitter
