package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy rounds last longer with fewer demons; hard rounds are short and crowded.
func ApplyPreset(cfg *SetsubunConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Countdown = cfg.Countdown * 3 / 2
		cfg.Demons.Count = max(cfg.Demons.Count-2, 1)
	case DifficultyHard:
		cfg.Countdown = max(cfg.Countdown*3/5, 1)
		cfg.Demons.Count += 3
	}
}
