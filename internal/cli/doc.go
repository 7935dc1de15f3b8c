// Package cli provides the interactive drawerfinder terminal client.
//
// It wires configuration, storage, the auth and inventory services, and a
// read–eval–print loop. Each App owns one session; logging out drops it.
//
// Key features:
//   - Login / Logout / WhoAmI
//   - Find items by keyword, list all, add, delete by position
//   - User management for administrators (users, adduser)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
