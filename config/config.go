package config

import "image/color"

// PhysicsConfig holds the world constants shared by every body. Speeds are
// px/s and accelerations px/s².
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	WaterBuoyancy float64 `yaml:"water_buoyancy"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	MaxRiseSpeed  float64 `yaml:"max_rise_speed"`

	// Drag coefficients, applied as v -= v*drag*dt
	WaterDrag  float64 `yaml:"water_drag"`
	GroundDrag float64 `yaml:"ground_drag"`
	IceDrag    float64 `yaml:"ice_drag"`
	AirDrag    float64 `yaml:"air_drag"`

	JumpPower       float64 `yaml:"jump_power"`
	DoubleJumpPower float64 `yaml:"double_jump_power"`

	// Collision
	CellSize            float64 `yaml:"cell_size"`
	OneWayEdgeEpsilon   float64 `yaml:"one_way_edge_epsilon"`   // Side seam distance required to land on a one-way tile
	OneWayLandTolerance float64 `yaml:"one_way_land_tolerance"` // How far below the top the previous bottom may be
	ConveyorSpeed       float64 `yaml:"conveyor_speed"`
	HazardDamage        int     `yaml:"hazard_damage"`
	HazardKnockbackY    float64 `yaml:"hazard_knockback_y"`

	EntitySize     float64 `yaml:"entity_size"`
	ProjectileSize float64 `yaml:"projectile_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health          int     `yaml:"health"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	InvulnSeconds   float64 `yaml:"invuln_seconds"`
	DamageCooldown  float64 `yaml:"damage_cooldown"`
	FireballDefault bool    `yaml:"fireball_default"`

	// Used when a level has no player entity
	FallbackX     float64 `yaml:"fallback_x"`
	FallbackY     float64 `yaml:"fallback_y"`
	FallbackSpeed float64 `yaml:"fallback_speed"`
}

// ShotConfig describes one kind of projectile volley.
type ShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Health         int     `yaml:"health"`
	MaxSpeed       float64 `yaml:"max_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	DamageCooldown float64 `yaml:"damage_cooldown"`

	PatrolStallSpeed float64 `yaml:"patrol_stall_speed"` // |vx| below this flips a patroller
	JumpIntervalMin  float64 `yaml:"jump_interval_min"`
	JumpIntervalMax  float64 `yaml:"jump_interval_max"`
	FirstJumpMin     float64 `yaml:"first_jump_min"`
	FirstJumpMax     float64 `yaml:"first_jump_max"`
	JumperDrift      float64 `yaml:"jumper_drift"`
	WanderPhases     int     `yaml:"wander_phases"`

	LedgeProbeWidth  float64 `yaml:"ledge_probe_width"`
	LedgeProbeHeight float64 `yaml:"ledge_probe_height"`
	LedgeProbeGap    float64 `yaml:"ledge_probe_gap"`

	ShootChance float64    `yaml:"shoot_chance"` // Per tick
	DetectX     float64    `yaml:"detect_x"`
	DetectY     float64    `yaml:"detect_y"`
	Shot        ShotConfig `yaml:"shot"`

	ContactDamage int     `yaml:"contact_damage"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
}

// BossConfig contains boss encounter configuration
type BossConfig struct {
	Size         float64 `yaml:"size"`
	Health       int     `yaml:"health"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`

	FanAngles         []float64  `yaml:"fan_angles"`
	Shot              ShotConfig `yaml:"shot"`
	EnragedCooldown   float64    `yaml:"enraged_cooldown"`
	EnrageRatio       float64    `yaml:"enrage_ratio"` // Health ratio below which phase 2 starts
	EnragedMaxSpeed   float64    `yaml:"enraged_max_speed"`
	EnragedAccel      float64    `yaml:"enraged_accel"`
	ContactDamage     int        `yaml:"contact_damage"`
	KnockbackX        float64    `yaml:"knockback_x"`
	KnockbackY        float64    `yaml:"knockback_y"`
	DamageCooldownSec float64    `yaml:"damage_cooldown"`
}

// ProjectileConfig contains shared projectile configuration
type ProjectileConfig struct {
	TTL              float64    `yaml:"ttl"`
	KnockbackScale   float64    `yaml:"knockback_scale"` // Fraction of vx passed on as knockback
	KnockbackUpward  float64    `yaml:"knockback_upward"`
	Fireball         ShotConfig `yaml:"fireball"`
	OffscreenPadding float64    `yaml:"offscreen_padding"`
}

// ItemConfig contains pickup configuration
type ItemConfig struct {
	HealAmount int     `yaml:"heal_amount"`
	SpeedBoost float64 `yaml:"speed_boost"`
}

// PropConfig contains the sizes of static props
type PropConfig struct {
	DoorWidth  float64 `yaml:"door_width"`
	DoorHeight float64 `yaml:"door_height"`
}

// MessageConfig contains HUD message configuration
type MessageConfig struct {
	Duration      float64 `yaml:"duration"`
	WinDelay      float64 `yaml:"win_delay"`
	LoseDelay     float64 `yaml:"lose_delay"`
	WinText       string  `yaml:"win_text"`
	LoseText      string  `yaml:"lose_text"`
	EnterTemplate string  `yaml:"enter_template"`
	FailTemplate  string  `yaml:"fail_template"`
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowFactor float64 `yaml:"follow_factor"`
}

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Projectile ProjectileConfig
var Item ItemConfig
var Prop PropConfig
var Message MessageConfig
var Camera CameraConfig

var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Red    = color.RGBA{220, 50, 50, 255}
	Green  = color.RGBA{50, 200, 120, 255}
	Blue   = color.RGBA{80, 120, 255, 255}
	Yellow = color.RGBA{240, 220, 70, 255}
	Orange = color.RGBA{255, 160, 60, 255}
	Purple = color.RGBA{170, 120, 255, 255}
	Cyan   = color.RGBA{100, 220, 220, 255}
	Gray   = color.RGBA{150, 150, 150, 255}
	Sky    = color.RGBA{20, 24, 28, 255}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:       1600,
		WaterBuoyancy: -900,
		MaxFallSpeed:  1200,
		MaxRiseSpeed:  -2000,

		WaterDrag:  0.6,
		GroundDrag: 8.0,
		IceDrag:    1.0,
		AirDrag:    0.02,

		JumpPower:       -600,
		DoubleJumpPower: -570,

		CellSize:            64,
		OneWayEdgeEpsilon:   1,
		OneWayLandTolerance: 4,
		ConveyorSpeed:       40,
		HazardDamage:        10,
		HazardKnockbackY:    -200,

		EntitySize:     32,
		ProjectileSize: 10,
	}

	Player = PlayerConfig{
		Health:          100,
		MaxSpeed:        220,
		Acceleration:    2200,
		InvulnSeconds:   1.0,
		DamageCooldown:  1.0,
		FireballDefault: true,

		FallbackX:     100,
		FallbackY:     100,
		FallbackSpeed: 240,
	}

	Enemy = EnemyConfig{
		Width:          35,
		Height:         40,
		Health:         40,
		MaxSpeed:       180,
		Acceleration:   2000,
		DamageCooldown: 1.0,

		PatrolStallSpeed: 10,
		JumpIntervalMin:  1.2,
		JumpIntervalMax:  2.0,
		FirstJumpMin:     1.0,
		FirstJumpMax:     2.5,
		JumperDrift:      1.0,
		WanderPhases:     10,

		LedgeProbeWidth:  10,
		LedgeProbeHeight: 4,
		LedgeProbeGap:    2,

		ShootChance: 0.004,
		DetectX:     400,
		DetectY:     100,
		Shot:        ShotConfig{Speed: 420, Damage: 8},

		ContactDamage: 10,
		KnockbackX:    300,
		KnockbackY:    -200,
	}

	Boss = BossConfig{
		Size:         64,
		Health:       300,
		MaxSpeed:     180,
		Acceleration: 2000,

		FanAngles:         []float64{-0.3, -0.15, 0, 0.15, 0.3},
		Shot:              ShotConfig{Speed: 520, Damage: 10, Cooldown: 1.2},
		EnragedCooldown:   0.8,
		EnrageRatio:       0.5,
		EnragedMaxSpeed:   240,
		EnragedAccel:      2600,
		ContactDamage:     20,
		KnockbackX:        400,
		KnockbackY:        -300,
		DamageCooldownSec: 1.0,
	}

	Projectile = ProjectileConfig{
		TTL:              3.0,
		KnockbackScale:   0.02,
		KnockbackUpward:  -150,
		Fireball:         ShotConfig{Speed: 560, Damage: 12, Cooldown: 0.25},
		OffscreenPadding: 100,
	}

	Item = ItemConfig{
		HealAmount: 25,
		SpeedBoost: 40,
	}

	Prop = PropConfig{
		DoorWidth:  50,
		DoorHeight: 96,
	}

	Message = MessageConfig{
		Duration:      3.0,
		WinDelay:      2.0,
		LoseDelay:     3.0,
		WinText:       "Victory!",
		LoseText:      "You were defeated",
		EnterTemplate: "Entering %s",
		FailTemplate:  "Failed to load level: %v",
	}

	Camera = CameraConfig{
		FollowFactor: 0.12,
	}
}
