package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset for a flag value.
// Empty and unknown values map to normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}

// ApplySnakePreset adjusts the speed curve for a difficulty preset.
// Normal keeps whatever the loaded configuration says.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialIntervalMS = 200
		cfg.Speed.StepMS = 1
		cfg.Speed.MinIntervalMS = 110
	case DifficultyHard:
		cfg.Speed.InitialIntervalMS = 110
		cfg.Speed.StepMS = 2
		cfg.Speed.MinIntervalMS = 50
	case DifficultyFixed:
		// No progression: the round stays at its starting speed
		cfg.Speed.StepMS = 0
		cfg.Speed.MinIntervalMS = cfg.Speed.InitialIntervalMS
	}
}
