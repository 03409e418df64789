// Package snake implements the Snake game core: movement, collision,
// growth, scoring and the session state machine. It is pure logic with no
// terminal dependencies; the platform layer feeds it input frames and
// flushes its Screen renders.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mkarpenko/snake-tui/internal/config"
	"github.com/mkarpenko/snake-tui/internal/core"
)

// Phase is the session state: idle until the first accepted direction,
// running while ticking normally, over once a terminal outcome is reached.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// OverReason classifies how a session ended.
type OverReason int

const (
	ReasonNone OverReason = iota
	ReasonSelfCollision
	ReasonWallCollision
	ReasonWin
	ReasonUserQuit
)

// String returns a human-readable name for the reason.
func (r OverReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonSelfCollision:
		return "self_collision"
	case ReasonWallCollision:
		return "wall_collision"
	case ReasonWin:
		return "win"
	case ReasonUserQuit:
		return "user_quit"
	default:
		return "unknown"
	}
}

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	body      *Body
	direction Direction
	fruit     Point
	score     int

	phase  Phase
	reason OverReason

	screenW  int
	screenH  int
	tooSmall bool
}

// footerHeight is the number of rows the score line and instruction block
// occupy below the grid.
const footerHeight = 8

// New creates a new Snake game with the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier, used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.phase = PhaseIdle
	g.reason = ReasonNone
	g.direction = DirNone
	g.Resize(rc.ScreenW, rc.ScreenH)

	g.body = NewBody(g.cfg.Body.Capacity)
	g.body.PushHead(Point{X: g.cfg.Grid.Height / 2, Y: g.cfg.Grid.Width / 2})

	g.spawnFruit()
}

// Resize records the available screen size. The session pauses behind an
// overlay whenever the grid plus its footer does not fit the screen, and
// resumes once the window grows enough again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.cfg.Grid.Width || h < g.cfg.Grid.Height+footerHeight
}

// TickDelay returns the delay before the next tick, derived from the
// current score. Re-evaluated by the platform every tick so the game
// speeds up as score crosses each threshold.
func (g *Game) TickDelay() time.Duration {
	return g.cfg.DelayFor(g.score)
}

// Step advances the game by one tick: arbitrate direction, move, detect
// collision, grow on fruit. Quit bypasses the rest of the tick's work.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionQuit) {
		if g.phase != PhaseOver {
			g.phase = PhaseOver
			g.reason = ReasonUserQuit
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.phase == PhaseOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseOver {
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		// Frozen until the window fits the board again.
		return core.StepResult{State: g.State()}
	}

	g.direction = arbitrate(g.direction, candidateFrom(input))
	if g.direction == DirNone {
		// Still idle: no key accepted yet, the tick is a strict no-op.
		return core.StepResult{State: g.State()}
	}
	g.phase = PhaseRunning

	g.advance()

	return core.StepResult{State: g.State()}
}

// candidateFrom maps the tick's input frame to a candidate direction.
func candidateFrom(input core.InputFrame) Direction {
	switch {
	case input.Has(core.ActionUp):
		return DirUp
	case input.Has(core.ActionDown):
		return DirDown
	case input.Has(core.ActionLeft):
		return DirLeft
	case input.Has(core.ActionRight):
		return DirRight
	}
	return DirNone
}

// advance moves the snake one cell, classifies collisions and handles
// fruit growth. Collision is checked before growth/win, so a colliding
// tick never reports a win.
func (g *Game) advance() {
	dx, dy := g.direction.Offset()
	head := g.body.Head()
	newHead := Point{X: head.X + dx, Y: head.Y + dy}

	vacated := g.body.PopTail()
	g.body.PushHead(newHead)

	if !g.inside(newHead) {
		g.phase = PhaseOver
		g.reason = ReasonWallCollision
		return
	}
	for i := 0; i < g.body.Len()-1; i++ {
		if g.body.At(i) == newHead {
			g.phase = PhaseOver
			g.reason = ReasonSelfCollision
			return
		}
	}

	if newHead == g.fruit {
		// Keep the vacated tail cell: length +1 without moving the tail.
		g.body.PushTail(vacated)
		g.score += g.cfg.Rules.FruitScore
		g.spawnFruit()
		if g.score >= g.cfg.Rules.WinScore {
			g.phase = PhaseOver
			g.reason = ReasonWin
		}
	}
}

// inside reports whether p is within the playable interior. The outermost
// ring of the grid is the wall: rows are bounded by the grid height and
// columns by the grid width.
func (g *Game) inside(p Point) bool {
	interior := core.NewRect(1, 1, g.cfg.Grid.Width-2, g.cfg.Grid.Height-2)
	return interior.Contains(p.Y, p.X)
}

// spawnFruit places the fruit at a uniformly random free interior cell,
// never under the snake. With no free cell left the fruit parks off-grid;
// capacity limits make that unreachable in a normal game.
func (g *Game) spawnFruit() {
	free := make([]Point, 0, (g.cfg.Grid.Height-2)*(g.cfg.Grid.Width-2))
	for x := 1; x <= g.cfg.Grid.Height-2; x++ {
		for y := 1; y <= g.cfg.Grid.Width-2; y++ {
			p := Point{X: x, Y: y}
			if !g.body.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.fruit = Point{X: -1, Y: -1}
		return
	}
	g.fruit = free[g.rng.Intn(len(free))]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Over:  g.phase == PhaseOver,
	}
}

// Render draws the game into the screen buffer. Screen x is the column
// (game Y), screen y is the row (game X).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.phase == PhaseOver {
		g.renderOver(dst)
		return
	}

	dst.DrawRing(core.NewRect(0, 0, g.cfg.Grid.Width, g.cfg.Grid.Height), '#', core.ColorGray)

	if g.fruit.X >= 0 && g.fruit.Y >= 0 {
		dst.SetCell(g.fruit.Y, g.fruit.X, '*', core.ColorBrightRed)
	}

	for i := 0; i < g.body.Len(); i++ {
		p := g.body.At(i)
		color := core.ColorGreen
		if i == g.body.Len()-1 {
			color = core.ColorBrightGreen
		}
		dst.SetCell(p.Y, p.X, '0', color)
	}

	base := g.cfg.Grid.Height
	dst.DrawText(0, base+1, fmt.Sprintf("Score = %d", g.score), core.ColorDefault)
	dst.DrawText(0, base+2, "Press 'X' to quit the game", core.ColorDefault)

	dst.DrawText(0, base+4, "Welcome to the Snake Game!", core.ColorDefault)
	dst.DrawText(0, base+5, "Use the arrow keys to move the snake.", core.ColorDefault)
	dst.DrawText(0, base+6, "Eat the fruit (*) to grow and score points.", core.ColorDefault)
	dst.DrawText(0, base+7, "Avoid running into the walls or the snake itself.", core.ColorDefault)
}

// renderOver draws the end-of-session screen.
func (g *Game) renderOver(dst *core.Screen) {
	msg := "Game Over"
	color := core.ColorRed
	switch g.reason {
	case ReasonSelfCollision:
		msg = "You hit yourself"
	case ReasonWallCollision:
		msg = "You hit the boundary"
	case ReasonWin:
		msg = "You are a winner"
		color = core.ColorGreen
	}

	dst.DrawText(0, 0, msg, color)
	dst.DrawText(0, 1, fmt.Sprintf("Score = %d", g.score), core.ColorDefault)
	dst.DrawText(0, 2, "Press 'X' to quit the game", core.ColorDefault)
	dst.DrawText(0, 3, "Press 'R' to play again", core.ColorDefault)
}

// renderOverlay draws a centered boxed two-line message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := core.Max((w-boxW)/2, 0)
	boxY := core.Max((h-boxH)/2, 0)

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.SetCell(x, y, '+', core.ColorWhite)
			case isTopOrBottom:
				dst.SetCell(x, y, '-', core.ColorWhite)
			case isLeftOrRight:
				dst.SetCell(x, y, '|', core.ColorWhite)
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}
