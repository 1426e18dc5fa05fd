package connect4

// GameSnapshot captures the adapter state on top of the engine snapshot.
type GameSnapshot struct {
	Engine   Snapshot
	Cursor   int
	Status   string
	LastMove *MoveResult
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		Engine:   g.engine.Snapshot(),
		Cursor:   g.cursor,
		Status:   g.Status(),
		TooSmall: g.tooSmall,
	}
	if g.last != nil {
		last := *g.last
		snap.LastMove = &last
	}
	return snap
}
