package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

// ChartRecord is the only birth-related state the server ever persists:
// the verified artifact plus the public positions. Written once after a
// successful verification, never mutated, never deleted by this subsystem.
type ChartRecord struct {
	ID         string                  `json:"id"`
	Commitment string                  `json:"commitment"`
	Proof      string                  `json:"proof"`
	Nonce      string                  `json:"nonce"`
	Positions  zkproof.PublicPositions `json:"positions"`
	Verified   bool                    `json:"verified"`
	CreatedAt  time.Time               `json:"created_at"`
}

var (
	// ErrDuplicateCommitment rejects a second record for an already
	// accepted commitment.
	ErrDuplicateCommitment = errors.New("commitment already recorded")

	// ErrNotFound means no record exists under the requested id.
	ErrNotFound = errors.New("chart not found")
)

// Store persists accepted chart records. Create enforces uniqueness on the
// commitment; it is the admission-control point for duplicate submissions.
type Store interface {
	Create(ctx context.Context, rec ChartRecord) error
	Get(ctx context.Context, id string) (ChartRecord, error)
}
