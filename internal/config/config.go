// Package config provides YAML-based tuning for the arcade: the world size
// and every constant of the three minigames.
package config

import "fmt"

// Config is the complete arcade configuration.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Catcher CatcherConfig `yaml:"catcher"`
	Dodger  DodgerConfig  `yaml:"dodger"`
	Hopper  HopperConfig  `yaml:"hopper"`
}

// WorldConfig is the fixed playfield all minigames simulate in.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherConfig contains all configuration for Food Drop.
type CatcherConfig struct {
	Player    CatcherPlayer `yaml:"player"`
	Items     CatcherItems  `yaml:"items"`
	Fall      CatcherFall   `yaml:"fall"`
	MaxMisses int           `yaml:"max_misses"` // Round ends once misses exceed this
}

// CatcherPlayer defines the catching character.
type CatcherPlayer struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Horizontal movement per tick
}

// CatcherItems defines the falling food and trash.
type CatcherItems struct {
	Size          float64 `yaml:"size"`
	FoodTarget    int     `yaml:"food_target"`
	TrashTarget   int     `yaml:"trash_target"`
	SpawnMinY     float64 `yaml:"spawn_min_y"`
	SpawnMaxY     float64 `yaml:"spawn_max_y"`
	FoodVariants  int     `yaml:"food_variants"`
	TrashVariants int     `yaml:"trash_variants"`
}

// CatcherFall defines how fast items fall: score/ScoreDivisor + Base.
type CatcherFall struct {
	Base         float64 `yaml:"base"`
	ScoreDivisor float64 `yaml:"score_divisor"`
}

// DodgerConfig contains all configuration for Jet Pou.
type DodgerConfig struct {
	Player  DodgerPlayer  `yaml:"player"`
	Trees   DodgerTrees   `yaml:"trees"`
	Scenery DodgerScenery `yaml:"scenery"`
}

// DodgerPlayer defines the jetpack physics.
type DodgerPlayer struct {
	X             float64 `yaml:"x"`
	StartY        float64 `yaml:"start_y"`
	Size          float64 `yaml:"size"`
	StartVelocity float64 `yaml:"start_velocity"`
	JumpStrength  float64 `yaml:"jump_strength"`
	Gravity       float64 `yaml:"gravity"`
	Ceiling       float64 `yaml:"ceiling"`    // Thrust only works below this y
	FallLimit     float64 `yaml:"fall_limit"` // Round ends past this y
	HitboxInset   float64 `yaml:"hitbox_inset"`
}

// DodgerTrees defines the scrolling tree pairs.
type DodgerTrees struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	Pairs     int     `yaml:"pairs"`
	FirstX    float64 `yaml:"first_x"`
	Spacing   float64 `yaml:"spacing"`
	MinUpperY float64 `yaml:"min_upper_y"`
	MaxUpperY float64 `yaml:"max_upper_y"`
	Gap       float64 `yaml:"gap"` // Distance from the upper tree's top to the lower tree's top
}

// DodgerScenery defines the parallax layers.
type DodgerScenery struct {
	BackgroundSpeed float64 `yaml:"background_speed"`
	GroundSpeed     float64 `yaml:"ground_speed"`
}

// HopperConfig contains all configuration for Sky Hop.
type HopperConfig struct {
	Player   HopperPlayer   `yaml:"player"`
	Cells    HopperCells    `yaml:"cells"`
	Scroll   HopperScroll   `yaml:"scroll"`
	Pressure HopperPressure `yaml:"pressure"`
}

// HopperPlayer defines the hop arc.
type HopperPlayer struct {
	Size        float64 `yaml:"size"`
	Y           float64 `yaml:"y"`
	HopVelocity float64 `yaml:"hop_velocity"` // Vertical velocity at the start of a hop
	HopEnd      float64 `yaml:"hop_end"`      // Hop finishes when velocity reaches this
	HopDX       float64 `yaml:"hop_dx"`
	MinX        float64 `yaml:"min_x"`
	MaxX        float64 `yaml:"max_x"`
}

// HopperCells defines the row geometry.
type HopperCells struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	FourWide   [4]float64 `yaml:"four_wide"`
	ThreeWide  [3]float64 `yaml:"three_wide"`
	RowSpacing float64    `yaml:"row_spacing"`
}

// HopperScroll defines the per-hop scroll animation.
type HopperScroll struct {
	Start float64 `yaml:"start"`
	Floor float64 `yaml:"floor"`
}

// HopperPressure defines the time-pressure meter.
type HopperPressure struct {
	HopRelief    float64 `yaml:"hop_relief"`
	ScoreDivisor int     `yaml:"score_divisor"`
}

// Validate reports the first setting that would break a simulation.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Catcher.Fall.ScoreDivisor <= 0:
		return fmt.Errorf("config: catcher.fall.score_divisor must be positive")
	case c.Catcher.Items.FoodVariants <= 0 || c.Catcher.Items.TrashVariants <= 0:
		return fmt.Errorf("config: catcher item variants must be positive")
	case c.Catcher.Items.SpawnMinY > c.Catcher.Items.SpawnMaxY:
		return fmt.Errorf("config: catcher spawn range is empty")
	case c.Dodger.Trees.Pairs <= 0:
		return fmt.Errorf("config: dodger.trees.pairs must be positive")
	case c.Dodger.Trees.MinUpperY > c.Dodger.Trees.MaxUpperY:
		return fmt.Errorf("config: dodger upper tree range is empty")
	case c.Hopper.Pressure.ScoreDivisor <= 0:
		return fmt.Errorf("config: hopper.pressure.score_divisor must be positive")
	case c.Hopper.Scroll.Start <= c.Hopper.Scroll.Floor:
		return fmt.Errorf("config: hopper scroll start must exceed its floor")
	case c.Hopper.Player.HopVelocity >= c.Hopper.Player.HopEnd:
		return fmt.Errorf("config: hopper hop velocity must start below hop_end")
	}
	return nil
}
