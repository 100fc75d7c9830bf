// Package logging builds the structured logger of bbgame.
//
// Records fan out (github.com/samber/slog-multi) to a text handler on the
// terminal and, when a file is configured, to a JSON handler appending to
// that file. The level is shared by both and can be changed at run time.
//
// Handler adds the worker id stored in a context by WithWorker to every
// record logged with that context.
//
// Errors:
//
//   - ErrLevel  unknown level name
package logging
