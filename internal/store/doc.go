// Package store persists album records as one JSON object per line and
// guarantees one record per URL.
//
// The collection is loaded whole at invocation start, mutated in memory, and
// rewritten atomically (temp file + rename, under a flock file lock). Reads
// are lenient: a line that fails to parse is skipped with a warning and the
// remaining records survive, so a corrupt line never discards the collection.
package store
