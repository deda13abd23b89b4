// Package usage provides persisted implementations of gate.UsageStore:
// a PostgreSQL store over the usage_counters table and a Redis store for
// hosts that keep daily counters out of the relational database.
//
// Both stores implement the increment as a single atomic operation so
// concurrent increments never lose updates. Rows are created lazily on the
// first increment of a day and never deleted; the Redis store lets superseded
// days expire via TTL instead.
package usage
