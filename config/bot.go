package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	Reaction      float64 // seconds between decisions
	PreferRange   float64 // fraction of the aim distance the bot tries to keep
	RetreatHealth int     // retreat when health drops to this
	AimTolerance  float64 // radians off target still worth a throw
	LockDelay     float64 // seconds of free flight before locking on
	RecallAfter   float64 // seconds before giving up on a throw
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulty   BotDifficulty `yaml:"difficulty"`
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Current returns the tuning for the selected difficulty.
func (b BotConfigData) Current() BotDifficultyConfig {
	if d, ok := b.Difficulties[b.Difficulty]; ok {
		return d
	}
	return b.Difficulties[BotDifficultyNormal]
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulty: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				Reaction:      0.5,
				PreferRange:   0.9,
				RetreatHealth: 0,
				AimTolerance:  0.4,
				LockDelay:     0.8,
				RecallAfter:   4.0,
			},
			BotDifficultyNormal: {
				Reaction:      0.25,
				PreferRange:   0.75,
				RetreatHealth: 1,
				AimTolerance:  0.25,
				LockDelay:     0.4,
				RecallAfter:   3.0,
			},
			BotDifficultyHard: {
				Reaction:      0.08, // near-instant
				PreferRange:   0.6,
				RetreatHealth: 1,
				AimTolerance:  0.15,
				LockDelay:     0.2,
				RecallAfter:   2.0,
			},
		},
	}
}
