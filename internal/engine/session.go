package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mireval/rampart/internal/models"
)

// Handler receives the session's game lifecycle hooks. One decision pass runs
// per turn and runs to completion before the order batch is transmitted;
// action frames arrive strictly between turn boundaries and are delivered in
// order.
type Handler interface {
	// OnGameStart is called once with the resolved immutable configuration.
	OnGameStart(cfg *models.GameConfig) error
	// OnTurn is called at every decision point. The handler issues orders
	// through g; the session submits the batch after the handler returns.
	OnTurn(g *GameState) error
	// OnActionFrame is called for every action-frame event batch.
	OnActionFrame(turn int, events []BreachEvent)
}

// Session drives the turn-synchronous exchange with the game engine over
// newline-delimited JSON: one config line, then state lines until game end.
// Stdout belongs to the engine, so all diagnostics go to the logger (stderr).
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	log    *zap.Logger
	pather PathFinder
}

// NewSession creates a session reading state messages from r and writing
// order batches to w.
func NewSession(r io.Reader, w io.Writer, log *zap.Logger) *Session {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<24) // snapshots grow with board occupancy
	return &Session{
		in:     sc,
		out:    w,
		log:    log,
		pather: NewPathFinder(),
	}
}

// Run reads the config message, then processes state messages until the
// engine reports game end or the input closes.
func (s *Session) Run(h Handler) error {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return fmt.Errorf("failed to read config message: %w", err)
		}
		return fmt.Errorf("engine closed the session before sending config")
	}

	var raw models.RawGameConfig
	if err := json.Unmarshal(s.in.Bytes(), &raw); err != nil {
		return fmt.Errorf("failed to parse config message: %w", err)
	}
	cfg, err := models.ResolveGameConfig(&raw)
	if err != nil {
		return fmt.Errorf("failed to resolve game config: %w", err)
	}
	if err := h.OnGameStart(cfg); err != nil {
		return fmt.Errorf("game start hook failed: %w", err)
	}

	for s.in.Scan() {
		st, err := parseState(s.in.Bytes())
		if err != nil {
			// A malformed message costs at most this message, never the game.
			s.log.Warn("skipping unparseable state message", zap.Error(err))
			continue
		}

		switch st.stateType() {
		case stateTurnStart:
			g := newGameState(cfg, st, s.pather, s.out, s.log)
			if err := h.OnTurn(g); err != nil {
				s.log.Error("turn handler failed, submitting what was stacked",
					zap.Int("turn", g.TurnNumber()), zap.Error(err))
			}
			if err := g.SubmitTurn(); err != nil {
				return err
			}
		case stateFrame:
			events, err := st.breachEvents()
			if err != nil {
				s.log.Warn("skipping malformed frame events",
					zap.Int("turn", st.turnNumber()), zap.Error(err))
				continue
			}
			h.OnActionFrame(st.turnNumber(), events)
		case stateGameEnd:
			s.log.Info("game over", zap.Int("turn", st.turnNumber()))
			return nil
		default:
			s.log.Warn("unknown state type", zap.Int("stateType", st.stateType()))
		}
	}

	if err := s.in.Err(); err != nil {
		return fmt.Errorf("engine session read failed: %w", err)
	}
	return nil
}
