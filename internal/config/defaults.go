package config

import (
	_ "embed"
)

//go:embed defaults/pou.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  1200,
			Height: 600,
		},
		Catcher: CatcherConfig{
			Player: CatcherPlayer{
				X:     550,
				Y:     380,
				Size:  100,
				Speed: 15,
			},
			Items: CatcherItems{
				Size:          50,
				FoodTarget:    2,
				TrashTarget:   1,
				SpawnMinY:     -1000,
				SpawnMaxY:     -50,
				FoodVariants:  6,
				TrashVariants: 4,
			},
			Fall: CatcherFall{
				Base:         3,
				ScoreDivisor: 5,
			},
			MaxMisses: 4,
		},
		Dodger: DodgerConfig{
			Player: DodgerPlayer{
				X:             200,
				StartY:        100,
				Size:          50,
				StartVelocity: 1,
				JumpStrength:  -5,
				Gravity:       0.15,
				Ceiling:       20,
				FallLimit:     550,
				HitboxInset:   10,
			},
			Trees: DodgerTrees{
				Width:     100,
				Height:    450,
				Speed:     2,
				Pairs:     4,
				FirstX:    1000,
				Spacing:   400,
				MinUpperY: -400,
				MaxUpperY: 0,
				Gap:       600,
			},
			Scenery: DodgerScenery{
				BackgroundSpeed: 1,
				GroundSpeed:     2,
			},
		},
		Hopper: HopperConfig{
			Player: HopperPlayer{
				Size:        70,
				Y:           440,
				HopVelocity: -10,
				HopEnd:      11,
				HopDX:       7.25,
				MinX:        -20,
				MaxX:        1170,
			},
			Cells: HopperCells{
				Width:      116,
				Height:     36,
				FourWide:   [4]float64{100, 400, 700, 1000},
				ThreeWide:  [3]float64{250, 550, 850},
				RowSpacing: 150,
			},
			Scroll: HopperScroll{
				Start: 17,
				Floor: 2,
			},
			Pressure: HopperPressure{
				HopRelief:    100,
				ScoreDivisor: 10,
			},
		},
	}
}
