// Package main hosts the pgnsplit CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration (file, .env,
// environment, flags), builds the structured logger, and hands off to the
// splitter. Running the binary with no subcommand performs a split, so
// `DATASET=twic1413 pgnsplit` turns data/twic1413.pgn into tests/games/*.pgn.
//
// Keep this package lean: behaviour lives in the internal packages and the
// commands here only wire and render.
package main
