package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"go-measlesmonitor/simulation"
)

// OutcomeCache stores computed outcomes keyed by their inputs. The
// model is deterministic, so a hit is always exact. Misses and backend
// errors are never fatal; the caller just recomputes.
type OutcomeCache interface {
	Get(ctx context.Context, key string) (simulation.Outcome, bool)
	Set(ctx context.Context, key string, out simulation.Outcome) error
}

// Key builds the canonical cache key for one input triple.
func Key(enrollment int, immunizationRate, r0 float64) string {
	canonical := fmt.Sprintf("%d|%s|%s",
		enrollment,
		strconv.FormatFloat(immunizationRate, 'g', -1, 64),
		strconv.FormatFloat(r0, 'g', -1, 64),
	)
	h := sha256.Sum256([]byte(canonical))
	return "outcome:" + hex.EncodeToString(h[:])
}
