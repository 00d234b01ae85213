package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/mireval/rampart/internal/models"
)

// RiskSample is one candidate launch point with its estimated risk.
type RiskSample struct {
	At   models.Coordinate `json:"at"`
	Risk float64           `json:"risk"`
}

// TurnRecord is one JSONL entry in the decision log: everything the agent
// decided on one turn, for post-game inspection.
type TurnRecord struct {
	GameID          string         `json:"gameId"`
	Turn            int            `json:"turn"`
	Strategy        string         `json:"strategy,omitempty"`
	ThresholdBefore float64        `json:"thresholdBefore,omitempty"`
	ThresholdAfter  float64        `json:"thresholdAfter,omitempty"`
	Risks           []RiskSample   `json:"risks,omitempty"`
	Orders          []models.Order `json:"orders"`
	Breaches        int            `json:"breaches"`
}

// Recorder writes one zstd-compressed JSONL decision log per game.
type Recorder struct {
	gameID string
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
}

// NewRecorder opens a fresh decision log under dir, named after a short
// random game ID.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create replay dir: %w", err)
	}

	gameID := uuid.New().String()[:8]
	path := filepath.Join(dir, fmt.Sprintf("rampart-%s.jsonl.zst", gameID))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create decision log: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to init zstd writer: %w", err)
	}

	return &Recorder{
		gameID: gameID,
		f:      f,
		enc:    enc,
		w:      bufio.NewWriter(enc),
	}, nil
}

// GameID returns the short identifier of this game's log.
func (r *Recorder) GameID() string { return r.gameID }

// Write appends one turn record.
func (r *Recorder) Write(rec TurnRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	return r.w.Flush()
}

// Close flushes and closes the log file.
func (r *Recorder) Close() error {
	var errFlush error
	if r.w != nil {
		errFlush = r.w.Flush()
	}
	if r.enc != nil {
		if err := r.enc.Close(); err != nil && errFlush == nil {
			errFlush = err
		}
		r.enc = nil
	}
	if r.f != nil {
		if err := r.f.Close(); err != nil && errFlush == nil {
			errFlush = err
		}
		r.f = nil
	}
	return errFlush
}
