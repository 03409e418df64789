package snake

// Snapshot captures the complete observable game state for determinism
// testing and debugging.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Reason  OverReason
	Score   int
	Length  int
	HeadX   int
	HeadY   int
	Dir     Direction
	FruitX  int
	FruitY  int
	DelayMS int
}

// Snapshot returns the current game snapshot for determinism verification.
// Safe to call before Reset: the body fields read as zero.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Reason:  g.reason,
		Score:   g.score,
		Dir:     g.direction,
		FruitX:  g.fruit.X,
		FruitY:  g.fruit.Y,
		DelayMS: int(g.TickDelay().Milliseconds()),
	}
	if g.body != nil {
		snap.Length = g.body.Len()
		if snap.Length > 0 {
			head := g.body.Head()
			snap.HeadX = head.X
			snap.HeadY = head.Y
		}
	}
	return snap
}
