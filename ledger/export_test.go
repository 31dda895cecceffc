package ledger

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/AbhishekDubey013/zkastro-proof/store"
	"github.com/AbhishekDubey013/zkastro-proof/zkproof"
)

func samplePositions() zkproof.PublicPositions {
	return zkproof.PublicPositions{
		Sun:       24500,
		Moon:      8765,
		Mercury:   18234,
		Venus:     21098,
		Mars:      9876,
		Jupiter:   12345,
		Saturn:    30000,
		Ascendant: 15000,
		Midheaven: 20000,
		Algo:      "zkastro-v1",
	}
}

func TestChartHashDeterministic(t *testing.T) {
	commitment := strings.Repeat("ab", 32)
	a := ChartHash(commitment, samplePositions())
	b := ChartHash(commitment, samplePositions())
	if a != b {
		t.Fatal("same record hashed differently")
	}
}

func TestChartHashBindsInputs(t *testing.T) {
	commitment := strings.Repeat("ab", 32)
	base := ChartHash(commitment, samplePositions())

	other := samplePositions()
	other.Sun = 99999
	if ChartHash(commitment, other) == base {
		t.Fatal("position change did not move the chart hash")
	}
	if ChartHash(strings.Repeat("cd", 32), samplePositions()) == base {
		t.Fatal("commitment change did not move the chart hash")
	}
}

func TestNewEntry(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := store.ChartRecord{
		ID:         "chart-1",
		Commitment: strings.Repeat("ab", 32),
		Positions:  samplePositions(),
		Verified:   true,
		CreatedAt:  created,
	}
	entry := NewEntry(rec)
	if entry.ChartID != "chart-1" || !entry.Verified {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.Timestamp != created.Unix() {
		t.Fatalf("timestamp = %d, want %d", entry.Timestamp, created.Unix())
	}
	if len(entry.ChartHash) != 64 {
		t.Fatalf("chart hash length %d, want 64", len(entry.ChartHash))
	}
	if _, err := hex.DecodeString(entry.ChartHash); err != nil {
		t.Fatalf("chart hash is not hex: %v", err)
	}
}
