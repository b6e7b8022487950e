package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// file mirrors the YAML layout. Sections point at the package globals so a
// partial file only overrides the keys it names.
type file struct {
	Screen     *Config           `yaml:"screen"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Boss       *BossConfig       `yaml:"boss"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Item       *ItemConfig       `yaml:"item"`
	Prop       *PropConfig       `yaml:"prop"`
	Message    *MessageConfig    `yaml:"message"`
	Camera     *CameraConfig     `yaml:"camera"`
}

func globals() *file {
	return &file{
		Screen:     C,
		Physics:    &Physics,
		Player:     &Player,
		Enemy:      &Enemy,
		Boss:       &Boss,
		Projectile: &Projectile,
		Item:       &Item,
		Prop:       &Prop,
		Message:    &Message,
		Camera:     &Camera,
	}
}

// Load overlays a YAML file onto the built-in defaults and returns the path
// that was applied, or "" when only defaults are in effect.
// Search order: customPath -> ~/.adventure/config.yaml -> ./configs/adventure.yaml -> defaults
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, candidate := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "adventure.yaml")} {
		if candidate == "" {
			continue
		}
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", nil
}

// Apply overlays YAML data onto the current configuration.
func Apply(data []byte) error {
	return yaml.Unmarshal(data, globals())
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure", filename)
}
