// Package input parses newline-separated module masses from text sources.
// Parsing is fail-fast: the first malformed line aborts the read with an
// error naming the line number and its content, so a run never produces
// totals from a partially valid mass list.
package input
