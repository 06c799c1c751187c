package game

import (
	"testing"
)

func testBoard(seed int) Board {
	b := NewBoard()
	for i := range b {
		b[i] = (i + seed) % 10
	}
	return b
}

func TestJoinGameInitializesScore(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")

	snap, ok := msg.last(EventReceiveScores)
	if !ok || snap.kind != "group" || snap.target != "XY9" {
		t.Fatalf("want group score snapshot, got %+v", snap)
	}
	scores := snap.args[0].(map[string]int)
	if scores["Alice"] != 0 {
		t.Errorf("joiner's score = %d, want 0", scores["Alice"])
	}
}

func TestRejoinResetsScore(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")
	sc.UpdateScore("XY9", "Alice", 7)
	sc.JoinGame("XY9", "Alice", "c1")

	snap, _ := msg.last(EventReceiveScores)
	scores := snap.args[0].(map[string]int)
	if scores["Alice"] != 0 {
		t.Errorf("re-join kept score %d, want reset to 0", scores["Alice"])
	}
}

func TestJoinNeverFailsOnCapacity(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	for i := 0; i < 10; i++ {
		sc.JoinGame("XY9", string(rune('A'+i)), string(rune('a'+i)))
	}
	snap, _ := msg.last(EventReceiveScores)
	scores := snap.args[0].(map[string]int)
	if len(scores) != 10 {
		t.Errorf("score table holds %d players, want 10", len(scores))
	}
}

func TestNewGameOverwritesBoardAndResetsScores(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")
	sc.UpdateScore("XY9", "Alice", 9)

	first := testBoard(1)
	second := testBoard(2)
	sc.NewGame("XY9", first)
	sc.NewGame("XY9", second)

	broadcasts := msg.named(EventNewGame)
	if len(broadcasts) != 2 {
		t.Fatalf("expected 2 NewGame broadcasts, got %d", len(broadcasts))
	}

	// The replayed state is the second board.
	msg.reset()
	if !sc.RequestGameState("XY9", "c1") {
		t.Fatal("no game state after NewGame")
	}
	reply, _ := msg.last(EventNewGame)
	got := reply.args[0].(Board)
	for i := range second {
		if got[i] != second[i] {
			t.Fatalf("cell %d = %d, want %d from the second board", i, got[i], second[i])
		}
	}

	// Both calls reset the score table to empty.
	msg.reset()
	if !sc.RequestAllScores("XY9", "c1") {
		t.Fatal("no score reply")
	}
	scores, _ := msg.last(EventReceiveScores)
	if n := len(scores.args[0].(map[string]int)); n != 0 {
		t.Errorf("score table holds %d entries after NewGame, want 0", n)
	}
}

func TestNewGameDoesNotAliasCallerBoard(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	board := testBoard(3)
	sc.NewGame("XY9", board)
	board[0] = 99

	msg.reset()
	sc.RequestGameState("XY9", "c1")
	reply, _ := msg.last(EventNewGame)
	if got := reply.args[0].(Board)[0]; got == 99 {
		t.Error("coordinator state aliases the caller's slice")
	}
}

func TestUpdateCellRelaysToWholeGroupInOrder(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")
	sc.JoinGame("XY9", "Bob", "c2")
	sc.NewGame("XY9", testBoard(0))
	msg.reset()

	sc.UpdateCell("XY9", "Alice", 0, 0, 5)
	sc.UpdateCell("XY9", "Bob", 1, 1, 3)

	edits := msg.named(EventUpdateCell)
	if len(edits) != 2 {
		t.Fatalf("expected 2 relayed edits, got %d", len(edits))
	}
	if edits[0].kind != "group" || edits[0].args[0] != "Alice" || edits[0].args[1] != 0 || edits[0].args[3] != 5 {
		t.Errorf("first edit %+v", edits[0])
	}
	if edits[1].args[0] != "Bob" || edits[1].args[1] != 1 || edits[1].args[3] != 3 {
		t.Errorf("second edit %+v", edits[1])
	}
}

func TestUpdateScoreUnknownDropped(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)
	sc.JoinGame("XY9", "Alice", "c1")
	msg.reset()

	if sc.UpdateScore("NOPE", "Alice", 3) {
		t.Error("score update on missing game accepted")
	}
	if sc.UpdateScore("XY9", "Ghost", 3) {
		t.Error("score update for unknown player accepted")
	}
	if n := msg.count(); n != 0 {
		t.Errorf("dropped updates emitted %d events", n)
	}
}

func TestScoreLastWriteWinsShared(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")
	sc.UpdateScore("XY9", "Alice", 5)
	sc.UpdateScore("XY9", "Alice", 12)

	snap, _ := msg.last(EventReceiveScores)
	if got := snap.args[0].(map[string]int)["Alice"]; got != 12 {
		t.Errorf("final score %d, want 12", got)
	}
}

func TestRequestGameStateBeforeStart(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)
	sc.JoinGame("XY9", "Alice", "c1")
	msg.reset()

	if sc.RequestGameState("XY9", "c1") {
		t.Error("state replayed before any NewGame")
	}
	if sc.RequestGameState("NOPE", "c1") {
		t.Error("state replayed for missing game")
	}
	if n := msg.count(); n != 0 {
		t.Errorf("silent paths emitted %d events", n)
	}
}

func TestLateJoinerReceivesRunningBoard(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	sc.JoinGame("XY9", "Alice", "c1")
	sc.NewGame("XY9", testBoard(4))
	msg.reset()

	sc.JoinGame("XY9", "Bob", "c2")

	replay, ok := msg.last(EventNewGame)
	if !ok || replay.kind != "caller" || replay.target != "c2" {
		t.Fatalf("late joiner got no caller-only board replay: %+v", replay)
	}
}

func TestPlayerCompletedBroadcast(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)
	sc.JoinGame("XY9", "Alice", "c1")
	msg.reset()

	sc.PlayerCompletedGame("XY9", "Alice")

	done, ok := msg.last(EventPlayerComplete)
	if !ok || done.kind != "group" || done.args[0] != "Alice" {
		t.Fatalf("want group PlayerCompleted[Alice], got %+v", done)
	}
	if msg.count() != 1 {
		t.Error("completion announcement mutated state or sent extra events")
	}
}

func TestDisconnectRemovesPlayerEverywhere(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	// Alice plays in two independent games over one connection.
	sc.JoinGame("XY9", "Alice", "c1")
	sc.JoinGame("ZZ1", "Alice", "c1")
	sc.JoinGame("XY9", "Bob", "c2")
	msg.reset()

	sc.HandleDisconnect("c1")

	snap, ok := msg.last(EventReceiveScores)
	if !ok {
		t.Fatal("no snapshot for survivors")
	}
	scores := snap.args[0].(map[string]int)
	if _, still := scores["Alice"]; still {
		t.Error("Alice's score survived her disconnect")
	}
	if _, ok := scores["Bob"]; !ok {
		t.Error("survivor missing from snapshot")
	}

	// ZZ1 emptied, so it is gone and silent.
	if sc.RequestAllScores("ZZ1", "c2") {
		t.Error("emptied game still registered")
	}

	// A repeat disconnect is a no-op.
	msg.reset()
	sc.HandleDisconnect("c1")
	if n := msg.count(); n != 0 {
		t.Errorf("repeated disconnect emitted %d events", n)
	}
}

func TestSharedBoardScenario(t *testing.T) {
	msg := newFakeMessenger()
	sc := NewSudokuCoordinator(msg)

	board0 := testBoard(0)
	sc.JoinGame("XY9", "Alice", "c1")
	sc.JoinGame("XY9", "Bob", "c2")
	sc.NewGame("XY9", board0)
	msg.reset()

	sc.UpdateCell("XY9", "Alice", 0, 1, 4)
	sc.UpdateCell("XY9", "Bob", 8, 8, 9)

	edits := msg.named(EventUpdateCell)
	if len(edits) != 2 {
		t.Fatalf("expected both edits broadcast, got %d", len(edits))
	}
	// Delivery order matches call order; composing them in that order
	// is the group's converged view.
	if edits[0].args[0] != "Alice" || edits[1].args[0] != "Bob" {
		t.Errorf("edits out of order: %+v", edits)
	}
}
