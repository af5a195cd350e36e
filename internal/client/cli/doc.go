// Package cli provides the interactive command-line client for the journal.
//
// It wires configuration, the local session store, the collaborator API
// services, and an interactive REPL. Typical flow: restore a persisted
// session, start a background session watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout with a persisted session token
//   - Browse published papers and journal categories
//   - Submit manuscripts and apply as a reviewer
//   - Review queues and decisions for admins
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Manager.Watch, and runREPL for details.
package cli
