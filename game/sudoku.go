package game

import (
	"sync"

	"github.com/sudokulive/sudoku-backend/utils/logger"
)

// sharedGame is one shared-board session: a single board every member
// plays on, plus a score table keyed by display name. Membership (the
// connID -> name map) and the score table are deliberately separate:
// NewGame empties the scores while the room lives on, and empty-room
// cleanup keys off membership only.
type sharedGame struct {
	mu      sync.Mutex
	pin     string
	dead    bool
	started bool
	board   Board
	members map[string]string // connID -> display name
	scores  map[string]int    // display name -> score
}

func (g *sharedGame) scoresSnapshotLocked() map[string]int {
	out := make(map[string]int, len(g.scores))
	for name, score := range g.scores {
		out[name] = score
	}
	return out
}

// SudokuCoordinator owns the shared-board registry. It is independent
// of the room-mode registry: the same pin names different sessions in
// the two modes and each cleans up its own state on disconnect.
type SudokuCoordinator struct {
	mu    sync.Mutex
	games map[string]*sharedGame
	conns map[string]map[string]bool // connID -> pins joined
	msg   Messenger
}

func NewSudokuCoordinator(msg Messenger) *SudokuCoordinator {
	return &SudokuCoordinator{
		games: make(map[string]*sharedGame),
		conns: make(map[string]map[string]bool),
		msg:   msg,
	}
}

func (sc *SudokuCoordinator) getOrCreate(pin string) *sharedGame {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	g, ok := sc.games[pin]
	if !ok {
		g = &sharedGame{
			pin:     pin,
			members: make(map[string]string),
			scores:  make(map[string]int),
		}
		sc.games[pin] = g
	}
	return g
}

func (sc *SudokuCoordinator) get(pin string) (*sharedGame, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	g, ok := sc.games[pin]
	return g, ok
}

func (sc *SudokuCoordinator) dropGame(g *sharedGame) {
	sc.mu.Lock()
	if sc.games[g.pin] == g {
		delete(sc.games, g.pin)
	}
	sc.mu.Unlock()
}

func (sc *SudokuCoordinator) trackConn(connID, pin string) {
	sc.mu.Lock()
	pins, ok := sc.conns[connID]
	if !ok {
		pins = make(map[string]bool)
		sc.conns[connID] = pins
	}
	pins[pin] = true
	sc.mu.Unlock()
}

func (sc *SudokuCoordinator) untrackConn(connID, pin string) {
	sc.mu.Lock()
	if pins, ok := sc.conns[connID]; ok {
		delete(pins, pin)
		if len(pins) == 0 {
			delete(sc.conns, connID)
		}
	}
	sc.mu.Unlock()
}

// JoinGame registers the connection and (re)initializes the player's
// score to zero -- a re-join resets, last write wins. Joining never
// fails on capacity in this mode. The whole group, joiner included,
// gets the fresh score snapshot.
func (sc *SudokuCoordinator) JoinGame(pin, name, connID string) {
	for {
		g := sc.getOrCreate(pin)
		g.mu.Lock()
		if g.dead {
			g.mu.Unlock()
			continue
		}
		g.members[connID] = name
		g.scores[name] = 0
		snapshot := g.scoresSnapshotLocked()
		started := g.started
		board := g.board.Clone()
		g.mu.Unlock()

		sc.trackConn(connID, pin)
		sc.msg.AddToGroup(connID, pin)
		logger.Infof("[game %s] %s joined", pin, name)
		sc.msg.SendToGroup(pin, EventReceiveScores, snapshot)
		if started && board != nil {
			sc.msg.SendToCaller(connID, EventNewGame, board)
		}
		return
	}
}

// LeaveGame removes the connection from one game; the last member out
// deletes the game with no broadcast.
func (sc *SudokuCoordinator) LeaveGame(pin, connID string) {
	g, ok := sc.get(pin)
	if !ok {
		return
	}
	sc.removeMember(g, connID)
}

func (sc *SudokuCoordinator) removeMember(g *sharedGame, connID string) {
	g.mu.Lock()
	name, ok := g.members[connID]
	if !ok {
		g.mu.Unlock()
		return
	}
	delete(g.members, connID)
	delete(g.scores, name)
	empty := len(g.members) == 0
	var snapshot map[string]int
	if empty {
		g.dead = true
	} else {
		snapshot = g.scoresSnapshotLocked()
	}
	g.mu.Unlock()

	pin := g.pin
	sc.untrackConn(connID, pin)
	sc.msg.RemoveFromGroup(connID, pin)
	if empty {
		sc.dropGame(g)
		logger.Infof("[game %s] empty, removed", pin)
		return
	}
	sc.msg.SendToGroup(pin, EventReceiveScores, snapshot)
}

// HandleDisconnect removes the connection from every game it joined.
// Idempotent; an untracked connection is a no-op.
func (sc *SudokuCoordinator) HandleDisconnect(connID string) {
	sc.mu.Lock()
	pins := make([]string, 0, len(sc.conns[connID]))
	for pin := range sc.conns[connID] {
		pins = append(pins, pin)
	}
	sc.mu.Unlock()

	for _, pin := range pins {
		if g, ok := sc.get(pin); ok {
			sc.removeMember(g, connID)
		}
	}
}

// NewGame unconditionally installs the caller-supplied board, marks the
// game started, and empties the score table. It may be invoked
// repeatedly to restart a session and always succeeds.
func (sc *SudokuCoordinator) NewGame(pin string, board Board) {
	for {
		g := sc.getOrCreate(pin)
		g.mu.Lock()
		if g.dead {
			g.mu.Unlock()
			continue
		}
		g.board = board.Clone()
		g.started = true
		g.scores = make(map[string]int)
		out := g.board.Clone()
		g.mu.Unlock()

		logger.Infof("[game %s] new game", pin)
		sc.msg.SendToGroup(pin, EventNewGame, out)
		return
	}
}

// UpdateCell relays one edit to the whole group, origin included. The
// coordinator does not fold the edit into its stored board; every
// member's copy converges through the broadcast, last delivery wins.
func (sc *SudokuCoordinator) UpdateCell(pin, name string, row, col, value int) {
	sc.msg.SendToGroup(pin, EventUpdateCell, name, row, col, value)
}

// UpdateScore overwrites one player's score. Unknown game or player is
// silently dropped.
func (sc *SudokuCoordinator) UpdateScore(pin, name string, score int) bool {
	g, ok := sc.get(pin)
	if !ok {
		return false
	}
	g.mu.Lock()
	if _, ok := g.scores[name]; !ok {
		g.mu.Unlock()
		return false
	}
	g.scores[name] = score
	snapshot := g.scoresSnapshotLocked()
	g.mu.Unlock()

	sc.msg.SendToGroup(pin, EventReceiveScores, snapshot)
	return true
}

// RequestGameState replays the current board to the caller only, and
// only once a game has started. Absent state yields no reply.
func (sc *SudokuCoordinator) RequestGameState(pin, connID string) bool {
	g, ok := sc.get(pin)
	if !ok {
		return false
	}
	g.mu.Lock()
	started := g.started
	board := g.board.Clone()
	g.mu.Unlock()
	if !started || board == nil {
		return false
	}

	sc.msg.SendToCaller(connID, EventNewGame, board)
	return true
}

// RequestAllScores replies to the caller with the current score table.
func (sc *SudokuCoordinator) RequestAllScores(pin, connID string) bool {
	g, ok := sc.get(pin)
	if !ok {
		return false
	}
	g.mu.Lock()
	snapshot := g.scoresSnapshotLocked()
	g.mu.Unlock()

	sc.msg.SendToCaller(connID, EventReceiveScores, snapshot)
	return true
}

// PlayerCompletedGame announces a completion to the whole group. Pure
// broadcast, no state change.
func (sc *SudokuCoordinator) PlayerCompletedGame(pin, name string) {
	sc.msg.SendToGroup(pin, EventPlayerComplete, name)
}
