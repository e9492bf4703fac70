package config

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// tuningFile points at the live configuration so decoding only overwrites
// the keys present in the document.
type tuningFile struct {
	Game       *Config           `yaml:"game"`
	Player     *PlayerConfig     `yaml:"player"`
	Camera     *CameraConfig     `yaml:"camera"`
	Input      *InputConfig      `yaml:"input"`
	Background *BackgroundConfig `yaml:"background"`
	Obstacle   *ObstacleConfig   `yaml:"obstacle"`
	QuestBoard *QuestBoardConfig `yaml:"quest_board"`
	HUD        *HUDConfig        `yaml:"hud"`
	Menu       *MenuConfig       `yaml:"menu"`
}

func init() {
	if err := LoadTuning(defaultTuningYAML); err != nil {
		// Keep the compiled defaults.
		log.Warn("could not apply tuning sheet", "err", err)
	}
}

// LoadTuning overlays a YAML tuning document onto the global configuration.
// The background invariants are checked after decoding; on failure the
// previous background is restored.
func LoadTuning(data []byte) error {
	prevBackground := Background
	prevBackground.Layers = append([]LayerConfig(nil), Background.Layers...)

	tf := tuningFile{
		Game:       C,
		Player:     &Player,
		Camera:     &Camera,
		Input:      &Input,
		Background: &Background,
		Obstacle:   &Obstacle,
		QuestBoard: &QuestBoard,
		HUD:        &HUD,
		Menu:       &Menu,
	}
	if err := yaml.Unmarshal(data, &tf); err != nil {
		Background = prevBackground
		return fmt.Errorf("parse tuning: %w", err)
	}

	if err := ValidateBackground(Background); err != nil {
		Background = prevBackground
		return fmt.Errorf("tuning: %w", err)
	}
	return nil
}
