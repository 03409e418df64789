// Package config provides YAML-based game configuration loading for the
// snake platform. Grid dimensions, body capacity, scoring rules and the
// speed curve are fixed for the lifetime of a session once loaded.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Body  BodyConfig  `yaml:"body"`
	Rules RulesConfig `yaml:"rules"`
	Speed []SpeedTier `yaml:"speed"`
}

// GridConfig defines the play area. The outermost ring of cells is the wall;
// the playable interior is (Width-2) x (Height-2).
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BodyConfig defines the snake body buffer.
type BodyConfig struct {
	// Capacity is the maximum number of body cells. It must exceed the
	// longest length reachable before winning, so growth can never
	// legitimately overflow the buffer.
	Capacity int `yaml:"capacity"`
}

// RulesConfig defines scoring.
type RulesConfig struct {
	FruitScore int `yaml:"fruit_score"` // Points per fruit eaten
	WinScore   int `yaml:"win_score"`   // Score at which the game is won
}

// SpeedTier maps a score threshold to a tick delay. The tier with the
// highest MinScore not exceeding the current score is in effect.
type SpeedTier struct {
	MinScore int `yaml:"min_score"`
	DelayMS  int `yaml:"delay_ms"`
}

// Delay returns the tier's tick delay as a duration.
func (t SpeedTier) Delay() time.Duration {
	return time.Duration(t.DelayMS) * time.Millisecond
}

// DelayFor returns the tick delay in effect at the given score.
// Tiers are sorted ascending by MinScore (enforced by Validate).
func (c SnakeConfig) DelayFor(score int) time.Duration {
	delay := c.Speed[0].Delay()
	for _, tier := range c.Speed {
		if score >= tier.MinScore {
			delay = tier.Delay()
		}
	}
	return delay
}

// MaxLength returns the longest body length reachable before the win
// threshold ends the game: the initial single cell plus one per fruit.
func (c SnakeConfig) MaxLength() int {
	if c.Rules.FruitScore <= 0 {
		return c.Body.Capacity
	}
	return 1 + c.Rules.WinScore/c.Rules.FruitScore
}

// Validate checks the configuration invariants.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d too small, need at least 4x4", c.Grid.Width, c.Grid.Height)
	}
	if c.Rules.FruitScore <= 0 {
		return fmt.Errorf("config: fruit_score must be positive, got %d", c.Rules.FruitScore)
	}
	if c.Rules.WinScore <= 0 {
		return fmt.Errorf("config: win_score must be positive, got %d", c.Rules.WinScore)
	}
	if c.Body.Capacity < c.MaxLength() {
		return fmt.Errorf("config: body capacity %d cannot hold the maximum reachable length %d",
			c.Body.Capacity, c.MaxLength())
	}
	if interior := (c.Grid.Width - 2) * (c.Grid.Height - 2); interior < c.MaxLength() {
		return fmt.Errorf("config: interior of %d cells cannot hold the maximum reachable length %d",
			interior, c.MaxLength())
	}
	if len(c.Speed) == 0 {
		return fmt.Errorf("config: at least one speed tier is required")
	}
	if c.Speed[0].MinScore != 0 {
		return fmt.Errorf("config: first speed tier must start at score 0, got %d", c.Speed[0].MinScore)
	}
	for i, tier := range c.Speed {
		if tier.DelayMS <= 0 {
			return fmt.Errorf("config: speed tier %d has invalid delay %dms", i, tier.DelayMS)
		}
		if i == 0 {
			continue
		}
		if tier.MinScore <= c.Speed[i-1].MinScore {
			return fmt.Errorf("config: speed tiers must be sorted by ascending min_score")
		}
		if tier.DelayMS > c.Speed[i-1].DelayMS {
			return fmt.Errorf("config: speed tier %d delay %dms increases over previous tier", i, tier.DelayMS)
		}
	}
	return nil
}
