// Package store provides the data-access collaborators consumed by the
// computation engine: a Postgres-backed category reader and summary store,
// a Redis summary cache, and an in-memory implementation used by tests and
// the offline snapshot path.
package store

import "errors"

// ErrTaxpayerNotFound is returned by taxpayer lookups for unknown ids.
// Unlike a missing category record, this is a hard error: there is nothing
// to compute a summary for.
var ErrTaxpayerNotFound = errors.New("taxpayer not found")
