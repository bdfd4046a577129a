// Package catalog keeps an optional SQLite record of written fixtures.
//
// Each row ties a dataset/game index pair to the file that was written, its
// size and SHA-256 digest, and the run that produced it. Rows are upserted on
// (dataset, game_index), so rerunning a split refreshes the catalog instead of
// accumulating duplicates. The catalog is disabled by default and a failure
// here never fails a split.
package catalog
