package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerBackground ecs.LayerID = iota
	LayerWorld
	LayerUI
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed float64 `yaml:"walk_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Dimensions
	FrameWidth      int `yaml:"frame_width"`
	FrameHeight     int `yaml:"frame_height"`
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 `yaml:"follow_smoothing"`           // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 `yaml:"look_ahead_distance_x"`      // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 `yaml:"look_ahead_smoothing"`       // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 `yaml:"look_ahead_speed_threshold"` // Minimum speed to update look-ahead
}

// ObstacleTypeConfig contains configuration for a specific obstacle kind
type ObstacleTypeConfig struct {
	Name              string
	InteractionRadius float64 `yaml:"interaction_radius"`
	SpriteSheetKey    string  `yaml:"sprite_sheet_key"`
	BubbleImage       string  `yaml:"bubble_image"`
	BubbleOffsetY     float64 `yaml:"bubble_offset_y"` // Bubble anchor relative to the top of the sprite
	Scale             float64 `yaml:"scale"`
}

// ObstacleConfig contains obstacle configuration keyed by kind
type ObstacleConfig struct {
	Types map[string]ObstacleTypeConfig `yaml:"types"`
}

// QuestBoardConfig contains the quest board panel configuration
type QuestBoardConfig struct {
	FadeInSeconds  float64 `yaml:"fade_in_seconds"`
	FadeOutSeconds float64 `yaml:"fade_out_seconds"`
	StartScale     float64 `yaml:"start_scale"` // Scale at the beginning of the open transition

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	TitleFontSize float64 `yaml:"title_font_size"`
	BodyFontSize  float64 `yaml:"body_font_size"`

	Title      string   `yaml:"title"`
	Lines      []string `yaml:"lines"`
	CloseLabel string   `yaml:"close_label"`
	Portrait   string   `yaml:"portrait"`

	OverlayColor    color.RGBA `yaml:"-"`
	BackgroundColor color.RGBA `yaml:"-"`
	TitleColor      color.RGBA `yaml:"-"`
	TextColor       color.RGBA `yaml:"-"`
}

// HUDConfig contains the interaction hint configuration
type HUDConfig struct {
	InteractHint string     `yaml:"interact_hint"`
	HintOffsetY  float64    `yaml:"hint_offset_y"`
	BoxPadding   float64    `yaml:"box_padding"`
	BoxColor     color.RGBA `yaml:"-"`
	TextColor    color.RGBA `yaml:"-"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string     `yaml:"title"`
	Subtitle          string     `yaml:"subtitle"`
	BackgroundColor   color.RGBA `yaml:"-"`
	TitleColor        color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	TitleY            float64    `yaml:"title_y"`
	MenuStartY        float64    `yaml:"menu_start_y"`
	MenuItemHeight    float64    `yaml:"menu_item_height"`
	MenuOptions       []string   `yaml:"menu_options"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Start with the debug overlay enabled
}

// Config holds general game configuration
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Obstacle ObstacleConfig
var QuestBoard QuestBoardConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cream        = color.RGBA{R: 246, G: 236, B: 210, A: 255}
	Ink          = color.RGBA{R: 48, G: 36, B: 30, A: 255}
	Amber        = color.RGBA{R: 240, G: 170, B: 60, A: 255}
	Moss         = color.RGBA{R: 110, G: 160, B: 90, A: 255}
	Soil         = color.RGBA{R: 86, G: 62, B: 44, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	NightBlue    = color.RGBA{R: 18, G: 24, B: 44, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// ObstacleSleepingCreature is the kind of the quest-giving sleeping creature.
const ObstacleSleepingCreature = "sleeping_creature"

func init() {
	C = &Config{
		Title:  "Quietwood",
		Width:  480,
		Height: 270,
		TPS:    60,
	}

	Player = PlayerConfig{
		WalkSpeed: 2.0,
		RunSpeed:  3.5,
		JumpSpeed: 7.5,

		Gravity:      0.35,
		MaxFallSpeed: 8.0,

		FrameWidth:      32,
		FrameHeight:     32,
		CollisionWidth:  14,
		CollisionHeight: 28,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.12,
		LookAheadDistanceX:      40.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}

	Obstacle = ObstacleConfig{
		Types: map[string]ObstacleTypeConfig{
			ObstacleSleepingCreature: {
				Name:              "Sleeping Creature",
				InteractionRadius: 60.0,
				SpriteSheetKey:    "creature",
				BubbleImage:       "bubble",
				BubbleOffsetY:     -6.0,
				Scale:             1.0,
			},
		},
	}

	QuestBoard = QuestBoardConfig{
		FadeInSeconds:  0.25,
		FadeOutSeconds: 0.2,
		StartScale:     0.8,

		Width:  360,
		Height: 200,

		TitleFontSize: 16,
		BodyFontSize:  10,

		Title: "Quest Board",
		Lines: []string{
			"The creature stirs but does not wake.",
			"Three lanterns, three colours, one order.",
			"Light them as the moon rises and it will let you pass.",
		},
		CloseLabel: "Close",
		Portrait:   "portrait",

		OverlayColor:    BlackOverlay,
		BackgroundColor: Cream,
		TitleColor:      Ink,
		TextColor:       Ink,
	}

	HUD = HUDConfig{
		InteractHint: "E",
		HintOffsetY:  -20,
		BoxPadding:   3,
		BoxColor:     color.RGBA{R: 0, G: 0, B: 0, A: 180},
		TextColor:    White,
	}

	Menu = MenuConfig{
		Title:             "QUIETWOOD",
		Subtitle:          "a short walk in the woods",
		BackgroundColor:   NightBlue,
		TitleColor:        Amber,
		TextColorNormal:   White,
		TextColorSelected: Amber,
		TitleY:            70,
		MenuStartY:        150,
		MenuItemHeight:    24,
		MenuOptions:       []string{"Start", "Exit"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
