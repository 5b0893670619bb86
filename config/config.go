package config

import "image/color"

// BoomerangConfig contains the tuning values for the homing boomerang
type BoomerangConfig struct {
	// Steering
	Acceleration        float64 `yaml:"acceleration"`         // steering force magnitude
	ScaleByDelta        bool    `yaml:"scale_by_delta"`       // multiply steering by frame delta
	GravityCompensation float64 `yaml:"gravity_compensation"` // 1.0 cancels world gravity

	// Throw
	LaunchForce float64 `yaml:"launch_force"` // impulse magnitude at throw time
	Spacing     float64 `yaml:"spacing"`      // forward offset from the thrower
	ThrowHeight float64 `yaml:"throw_height"` // height above the thrower's feet

	// Body
	Mass          float64 `yaml:"mass"`
	MaxSpeed      float64 `yaml:"max_speed"`
	LinearDamping float64 `yaml:"linear_damping"`

	// Dimensions
	Size   float64 `yaml:"size"`
	Height float64 `yaml:"height"`

	// Combat
	Damage int `yaml:"damage"`
}

// PlatformConfig contains moving platform defaults
type PlatformConfig struct {
	SegmentDuration   float64 `yaml:"segment_duration"` // seconds per segment when a level omits it
	Thickness         float64 `yaml:"thickness"`
	Size              float64 `yaml:"size"`
	LegacyBezierBasis bool    `yaml:"legacy_bezier_basis"` // evaluate BEZIER with the Catmull-Rom blend
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveForce        float64 `yaml:"move_force"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	TurnSpeed        float64 `yaml:"turn_speed"` // radians per second at full deflection
	MaxSpeed         float64 `yaml:"max_speed"`
	LinearDamping    float64 `yaml:"linear_damping"`
	Mass             float64 `yaml:"mass"`

	// Aiming
	AimDistance float64 `yaml:"aim_distance"` // distance of the point target in front of the player

	// Dimensions
	Size   float64 `yaml:"size"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // acceleration along Z (negative is down)
	GroundSnap    float64 `yaml:"ground_snap"`    // distance below a support that still counts as standing
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // clamp for long frames
}

// HealthConfig contains health and damage feedback values
type HealthConfig struct {
	Max                 int     `yaml:"max"`
	DamageFlashDuration float64 `yaml:"damage_flash_duration"` // seconds for the overlay to fade out
}

// ArenaConfig contains arena bounds and rendering scale
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CellSize      float64 `yaml:"cell_size"` // resolv space cell size in world units
	WallThickness float64 `yaml:"wall_thickness"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	File          string  `yaml:"file"` // arena name or TMX path loaded at startup, empty plays the default arena
}

// MatchConfig contains round flow timings
type MatchConfig struct {
	CountdownDuration float64 `yaml:"countdown_duration"` // seconds
	RestartDelay      float64 `yaml:"restart_delay"`      // seconds on the results screen
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool `yaml:"draw_colliders"`
	SkipCountdown bool `yaml:"skip_countdown"`
}

// Config holds general game configuration
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TickRate int    `yaml:"tick_rate"`
	Title    string `yaml:"title"`
}

// Global configuration instances
var C *Config
var Boomerang BoomerangConfig
var Platform PlatformConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Health HealthConfig
var Arena ArenaConfig
var Match MatchConfig
var Debug DebugConfig

// Player names double as scene lookup keys.
var PlayerNames = [2]string{"Player 1", "Player 2"}

// BoomerangNames are the scene names of each player's boomerang.
var BoomerangNames = [2]string{"Boomerang 1", "Boomerang 2"}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	Floor        = color.RGBA{R: 28, G: 32, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// PlayerColors tints each player and their boomerang.
var PlayerColors = [2]color.RGBA{
	{R: 80, G: 200, B: 120, A: 255},
	{R: 230, G: 90, B: 200, A: 255},
}

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 60,
		Title:    "Wang Arena",
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:       -9.81,
		GroundSnap:    0.05,
		MaxFrameDelta: 0.1,
	}

	// Boomerang Config
	Boomerang = BoomerangConfig{
		Acceleration:        40.0,
		ScaleByDelta:        false,
		GravityCompensation: 1.0,

		LaunchForce: 18.0,
		Spacing:     1.5,
		ThrowHeight: 1.0,

		Mass:          1.0,
		MaxSpeed:      24.0,
		LinearDamping: 0.1,

		Size:   0.6,
		Height: 0.3,

		Damage: 1,
	}

	// Platform Config
	Platform = PlatformConfig{
		SegmentDuration:   2.0,
		Thickness:         0.5,
		Size:              4.0,
		LegacyBezierBasis: false,
	}

	// Player Config
	Player = PlayerConfig{
		MoveForce:        10.0,
		SprintMultiplier: 2.5,
		JumpImpulse:      6.0,
		TurnSpeed:        3.0,
		MaxSpeed:         8.0,
		LinearDamping:    2.0,
		Mass:             1.0,

		AimDistance: 12.0,

		Size:   1.0,
		Height: 1.8,
	}

	// Health Config (3 hits and you are out)
	Health = HealthConfig{
		Max:                 3,
		DamageFlashDuration: 1.2,
	}

	// Arena Config
	Arena = ArenaConfig{
		Width:         48.0,
		Height:        32.0,
		CellSize:      2.0,
		WallThickness: 1.0,
		PixelsPerUnit: 16.0,
	}

	// Match Config
	Match = MatchConfig{
		CountdownDuration: 3.0,
		RestartDelay:      4.0,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		DrawColliders: false,
		SkipCountdown: false,
	}
}
