// Package library wires the record store and the reconciliation, query,
// and tag engines into the operations the CLI exposes.
//
// Each Service instance owns one collection snapshot with a
// load→mutate→save lifecycle: the snapshot loads at Open, mutating
// operations rewrite the file atomically before returning, and operations
// that change nothing perform no write. There is no ambient global state;
// every operation goes through the injected store.
package library
