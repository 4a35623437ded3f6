// Package client implements the interactive client application runtime.
//
// It wires the secrets gateway, the local item index, the note sync engine,
// and the terminal UI into a single process lifecycle.
package client
