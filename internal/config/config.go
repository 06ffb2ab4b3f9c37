package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Soundtrack button
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 20

	// Field population
	DensityDivisor  = 15000.0 // canvas px² per particle
	MinSpeed        = -0.25
	MaxSpeed        = 0.25
	MinSize         = 1.0
	MaxSize         = 3.0
	MinInitialAlpha = 0.2
	MaxInitialAlpha = 0.7
	MinPulseFreq    = 0.01
	MaxPulseFreq    = 0.03

	// Field physics
	ProximityThreshold = 100.0
	PointerCoefficient = 0.01
	Friction           = 0.99
	AlphaGain          = 0.02
	AlphaDecay         = 0.01
	MinAlpha           = 0.2
	MaxAlpha           = 1.0
	PulseAmplitude     = 0.1
	MinRadius          = 0.1

	// Field rendering
	ParticleBlur = 10.0
	LinkBlur     = 5.0
	LinkWidth    = 0.5
	LinkMaxAlpha = 0.2

	// Nominal frame length used to scale delta-time physics.
	FrameSeconds  = 1.0 / 60.0
	MaxStepFrames = 4.0

	// Cursor
	TrailLength      = 10
	TrailEase        = 0.1
	TrailMaxOpacity  = 0.2
	TrailScaleStep   = 0.1
	CursorRadius     = 6.0
	CursorHoverScale = 2.0
	CursorPressScale = 0.8

	// Lobby
	LivePlayersTarget  = 125432
	LivePlayersFloor   = 100000
	LiveCountUpSteps   = 100
	LiveCountUpJitter  = 50
	LiveUpdateSeconds  = 3.0
	LiveChangeSpan     = 200
	LiveFlashSeconds   = 0.2
	LeaderboardSize    = 25
	LeaderboardRowH    = 16
	LeaderboardRows    = 8
	ScrollStepSeconds  = 0.05
	ScoreBumpSeconds   = 10.0
	MinScore           = 500000
	ScoreSpan          = 1000000
	MinLevel           = 50
	LevelSpan          = 100
	ScoreBumpSpan      = 1000
	TerminalCellWidth  = 8
	TerminalCellHeight = 16
)

// Palette holds the three particle colors.
var Palette = [3]string{"#00ffff", "#9d00ff", "#ffdd00"}

// HoverColor is the cursor color over interactive regions.
const HoverColor = "#9d00ff"
