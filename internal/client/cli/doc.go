// Package cli provides the interactive hygiene tracker command-line client.
//
// It wires configuration, the persisted session, the REST API client and an
// interactive REPL. On start the stored session is verified against the
// server; every screen is then opened through the route guard, so commands a
// role may not use never reach the backend.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
