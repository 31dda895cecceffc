package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

func testRecord(id, commitment string) ChartRecord {
	return ChartRecord{
		ID:         id,
		Commitment: commitment,
		Proof:      strings.Repeat("ab", 32),
		Nonce:      strings.Repeat("cd", 32),
		Positions: zkproof.PublicPositions{
			Sun:       24500,
			Moon:      8765,
			Ascendant: 15000,
			Midheaven: 20000,
			Algo:      "zkastro-v1",
		},
		Verified:  true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	rec := testRecord("chart-1", strings.Repeat("11", 32))
	if err := s.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, "chart-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Commitment != rec.Commitment || got.Positions != rec.Positions || !got.Verified {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Fatalf("created_at mismatch: %v vs %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestFileStoreDuplicateCommitment(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	commitment := strings.Repeat("22", 32)
	if err := s.Create(ctx, testRecord("chart-1", commitment)); err != nil {
		t.Fatal(err)
	}
	err = s.Create(ctx, testRecord("chart-2", commitment))
	if !errors.Is(err, ErrDuplicateCommitment) {
		t.Fatalf("got %v, want ErrDuplicateCommitment", err)
	}

	// The rejected record must not be readable: no partial state.
	if _, err := s.Get(ctx, "chart-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rejected record was persisted: %v", err)
	}
}

func TestFileStoreIndexSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	commitment := strings.Repeat("33", 32)
	if err := s.Create(ctx, testRecord("chart-1", commitment)); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	err = reopened.Create(ctx, testRecord("chart-2", commitment))
	if !errors.Is(err, ErrDuplicateCommitment) {
		t.Fatalf("reopened store lost the commitment index: %v", err)
	}
}

func TestFileStoreGetUnknown(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsPathEscapes(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"../outside", "a/b", ".", ""} {
		if _, err := s.Get(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("id %q: got %v, want ErrNotFound", id, err)
		}
	}
}
