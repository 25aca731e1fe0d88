// Package sink writes the final record batch to its destination.
//
// Every sink replaces the destination's contents wholesale: the previous
// run's rows are cleared and the new batch inserted. The delete-then-insert
// is not transactional on the REST sink; a failed insert after a successful
// delete is an accepted risk of the design.
package sink

import (
	"context"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

// Sink replaces the stored competition set with the given batch.
type Sink interface {
	Replace(ctx context.Context, records []competition.Record) error
}
