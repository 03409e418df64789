package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  50,
			Height: 25,
		},
		Body: BodyConfig{
			Capacity: 100,
		},
		Rules: RulesConfig{
			FruitScore: 5,
			WinScore:   100,
		},
		Speed: []SpeedTier{
			{MinScore: 0, DelayMS: 250},
			{MinScore: 25, DelayMS: 200},
			{MinScore: 50, DelayMS: 150},
			{MinScore: 75, DelayMS: 100},
		},
	}
}
