// Package preflight checks that a split can read its input and write its
// output before any work starts.
//
// Checks report rather than fail: the split command logs failed checks as
// warnings and proceeds, so a missing output directory still surfaces as one
// write error per game. The preflight command renders the same results for a
// quick manual sanity check.
package preflight
