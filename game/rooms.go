package game

import (
	"fmt"
	"sync"

	"github.com/sudokulive/sudoku-backend/utils/logger"
)

// RoomCapacity is the fixed member limit of a room.
const RoomCapacity = 3

const startGameError = "Unable to start the game. It may have already started or the room doesn't exist."

// MemberInfo is one row of the members snapshot broadcast after every
// membership or score mutation, keyed by slot label.
type MemberInfo struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type roomPlayer struct {
	connID string
	name   string
	slot   int
	board  Board
	score  int
}

// roomState is one room's aggregate. Its mutex serializes every
// mutation of the room; dead marks a room already removed from the
// registry so a racing join re-creates a fresh one instead of
// resurrecting this.
type roomState struct {
	mu      sync.Mutex
	pin     string
	dead    bool
	started bool
	slotSeq int
	members map[string]*roomPlayer // keyed by connection ID
}

// membersSnapshotLocked builds the snapshot payload. Callers hold r.mu.
func (r *roomState) membersSnapshotLocked() map[string]MemberInfo {
	out := make(map[string]MemberInfo, len(r.members))
	for _, p := range r.members {
		out[slotLabel(p.slot)] = MemberInfo{Name: p.name, Score: p.score}
	}
	return out
}

func slotLabel(slot int) string {
	return fmt.Sprintf("Player %d", slot)
}

// RoomCoordinator owns the room-mode registry: rooms with private
// per-player boards, ordinal slots, and a capacity of three. The
// registry mutex guards only room creation/deletion and the
// connection index; each room carries its own lock.
type RoomCoordinator struct {
	mu    sync.Mutex
	rooms map[string]*roomState
	conns map[string]map[string]bool // connID -> pins joined
	msg   Messenger
	gen   BoardGenerator
}

func NewRoomCoordinator(msg Messenger, gen BoardGenerator) *RoomCoordinator {
	return &RoomCoordinator{
		rooms: make(map[string]*roomState),
		conns: make(map[string]map[string]bool),
		msg:   msg,
		gen:   gen,
	}
}

func (rc *RoomCoordinator) getOrCreate(pin string) *roomState {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	room, ok := rc.rooms[pin]
	if !ok {
		room = &roomState{pin: pin, members: make(map[string]*roomPlayer)}
		rc.rooms[pin] = room
	}
	return room
}

func (rc *RoomCoordinator) get(pin string) (*roomState, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	room, ok := rc.rooms[pin]
	return room, ok
}

// dropRoom removes room from the registry if it is still the one
// registered under its pin. Callers have already marked it dead.
func (rc *RoomCoordinator) dropRoom(room *roomState) {
	rc.mu.Lock()
	if rc.rooms[room.pin] == room {
		delete(rc.rooms, room.pin)
	}
	rc.mu.Unlock()
}

func (rc *RoomCoordinator) trackConn(connID, pin string) {
	rc.mu.Lock()
	pins, ok := rc.conns[connID]
	if !ok {
		pins = make(map[string]bool)
		rc.conns[connID] = pins
	}
	pins[pin] = true
	rc.mu.Unlock()
}

func (rc *RoomCoordinator) untrackConn(connID, pin string) {
	rc.mu.Lock()
	if pins, ok := rc.conns[connID]; ok {
		delete(pins, pin)
		if len(pins) == 0 {
			delete(rc.conns, connID)
		}
	}
	rc.mu.Unlock()
}

// JoinRoom adds the connection to the room identified by pin, creating
// the room on first join. Slots are handed out from a per-room counter
// and never reused while the room exists. A full room rejects the join
// with a caller-only error and no state change.
func (rc *RoomCoordinator) JoinRoom(pin, name, connID string) bool {
	for {
		room := rc.getOrCreate(pin)
		room.mu.Lock()
		if room.dead {
			room.mu.Unlock()
			continue
		}
		if len(room.members) >= RoomCapacity {
			room.mu.Unlock()
			rc.msg.SendToCaller(connID, EventErrorMessage, fmt.Sprintf("Room %s is full.", pin))
			return false
		}
		room.slotSeq++
		p := &roomPlayer{connID: connID, name: name, slot: room.slotSeq}
		room.members[connID] = p
		rc.msg.AddToGroup(connID, pin)
		snapshot := room.membersSnapshotLocked()
		slot := slotLabel(p.slot)
		room.mu.Unlock()

		rc.trackConn(connID, pin)
		logger.Infof("[room %s] %s joined as %s", pin, name, slot)
		rc.msg.SendToGroup(pin, EventPlayerJoined, name, slot)
		rc.msg.SendToGroup(pin, EventMembersUpdate, snapshot)
		return true
	}
}

// LeaveRoom removes the connection from the room. Emptying the room
// deletes it from the registry with no broadcast; otherwise the
// survivors get PlayerLeft and a fresh snapshot.
func (rc *RoomCoordinator) LeaveRoom(pin, connID string) {
	room, ok := rc.get(pin)
	if !ok {
		return
	}
	rc.removeMember(room, connID)
}

// removeMember is the shared tail of leave and disconnect.
func (rc *RoomCoordinator) removeMember(room *roomState, connID string) {
	room.mu.Lock()
	p, ok := room.members[connID]
	if !ok {
		room.mu.Unlock()
		return
	}
	delete(room.members, connID)
	empty := len(room.members) == 0
	var snapshot map[string]MemberInfo
	if empty {
		room.dead = true
	} else {
		snapshot = room.membersSnapshotLocked()
	}
	room.mu.Unlock()

	pin := room.pin
	rc.untrackConn(connID, pin)
	rc.msg.RemoveFromGroup(connID, pin)
	if empty {
		rc.dropRoom(room)
		logger.Infof("[room %s] empty, removed", pin)
		return
	}
	rc.msg.SendToGroup(pin, EventPlayerLeft, slotLabel(p.slot))
	rc.msg.SendToGroup(pin, EventMembersUpdate, snapshot)
}

// HandleDisconnect resolves every room the connection belongs to via
// the connection index and removes it from each. Unknown connections
// are a no-op.
func (rc *RoomCoordinator) HandleDisconnect(connID string) {
	rc.mu.Lock()
	pins := make([]string, 0, len(rc.conns[connID]))
	for pin := range rc.conns[connID] {
		pins = append(pins, pin)
	}
	rc.mu.Unlock()

	for _, pin := range pins {
		if room, ok := rc.get(pin); ok {
			rc.removeMember(room, connID)
		}
	}
}

// StartGame flips the room to started and assigns each current member a
// freshly generated private board. A missing or already-started room
// sends ErrorMessage to the caller only and leaves the room untouched.
func (rc *RoomCoordinator) StartGame(pin, connID string) bool {
	room, ok := rc.get(pin)
	if !ok {
		rc.msg.SendToCaller(connID, EventErrorMessage, startGameError)
		return false
	}
	room.mu.Lock()
	if room.dead || room.started {
		room.mu.Unlock()
		rc.msg.SendToCaller(connID, EventErrorMessage, startGameError)
		return false
	}
	room.started = true
	for _, p := range room.members {
		p.board = rc.gen()
	}
	room.mu.Unlock()

	logger.Infof("[room %s] game started", pin)
	rc.msg.SendToGroup(pin, EventGameStarted)
	return true
}

// UpdateCell writes one cell of the caller's own private board and
// echoes it back to the caller only. Unknown room, unknown player, or
// an out-of-range coordinate is silently dropped.
func (rc *RoomCoordinator) UpdateCell(pin, connID string, row, col, value int) bool {
	if !InBounds(row, col) {
		return false
	}
	room, ok := rc.get(pin)
	if !ok {
		return false
	}
	room.mu.Lock()
	p, ok := room.members[connID]
	if !ok || p.board == nil {
		room.mu.Unlock()
		return false
	}
	p.board.SetCell(row, col, value)
	room.mu.Unlock()

	rc.msg.SendToCaller(connID, EventCellUpdated, row, col, value)
	return true
}

// UpdateScore overwrites the caller's score, last write wins. Unknown
// room or player is silently dropped.
func (rc *RoomCoordinator) UpdateScore(pin, connID string, score int) bool {
	room, ok := rc.get(pin)
	if !ok {
		return false
	}
	room.mu.Lock()
	p, ok := room.members[connID]
	if !ok {
		room.mu.Unlock()
		return false
	}
	p.score = score
	snapshot := room.membersSnapshotLocked()
	slot := slotLabel(p.slot)
	room.mu.Unlock()

	rc.msg.SendToGroup(pin, EventScoreUpdated, slot, score)
	rc.msg.SendToGroup(pin, EventMembersUpdate, snapshot)
	return true
}

// CheckGameStatus replies to the caller with the room's started flag.
// An absent room yields no reply.
func (rc *RoomCoordinator) CheckGameStatus(pin, connID string) (started, ok bool) {
	room, ok := rc.get(pin)
	if !ok {
		return false, false
	}
	room.mu.Lock()
	started = room.started
	room.mu.Unlock()

	rc.msg.SendToCaller(connID, EventGameStatus, started)
	return started, true
}

// RequestBoard replies to the caller with their own private board, or
// nothing when the room, player, or board does not exist yet.
func (rc *RoomCoordinator) RequestBoard(pin, connID string) bool {
	room, ok := rc.get(pin)
	if !ok {
		return false
	}
	room.mu.Lock()
	p, ok := room.members[connID]
	var board Board
	if ok {
		board = p.board.Clone()
	}
	room.mu.Unlock()
	if board == nil {
		return false
	}

	rc.msg.SendToCaller(connID, EventReceiveBoard, board)
	return true
}
