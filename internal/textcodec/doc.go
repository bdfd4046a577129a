// Package textcodec turns raw PGN file bytes into UTF-8 text.
//
// Older game collections are frequently exported as Latin-1 or Windows-1252,
// while newer ones are UTF-8 with or without a byte order mark. Decode accepts
// the configured encoding name and returns clean UTF-8 so the splitter never
// has to care which one it was handed.
package textcodec
