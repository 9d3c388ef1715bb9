// Package scaffold creates a layout's folder tree and, optionally, its empty
// placeholder files under a base directory. Every path is handled on its own:
// a failure is logged with the path and the underlying error, and the run
// moves on to the next path. Nothing is retried and no failure aborts a run.
package scaffold
