// Command gpalbums is the CLI over the local album metadata library.
//
// It is a thin presentation adapter: every verb loads the collection,
// invokes one library operation, and renders the plain result as a table
// (or JSON with --json). All merge, query, and mutation semantics live in
// the internal packages.
package main
