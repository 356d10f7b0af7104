// Package cli provides the interactive HouseSell terminal client.
//
// It wires configuration, the blob store backend and the two core services
// (session manager and listing store), then runs a REPL whose commands map
// onto the screens of the web UI:
//
//   - signup / login / logout / whoami
//   - list [filter]   browse listings, optionally narrowed by criteria
//   - show <id>       listing details
//   - add             create a listing
//   - edit <id>       edit one of your listings
//   - delete <id>     delete one of your listings
//   - mine            your listings with summary statistics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for dispatch details.
package cli
