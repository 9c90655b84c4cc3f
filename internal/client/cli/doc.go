// Package cli provides the interactive directory console.
//
// It wires configuration, the local session store, the HTTP API client and
// the UI flows into a line-oriented REPL. On start the console restores a
// stored session, or asks for admin credentials, and then accepts commands:
//   - login / logout / whoami
//   - list, page, size, next, prev, filter, sort
//   - create, edit <id>, show <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
