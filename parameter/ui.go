package parameter

// Layout
const (
	// MinCols is the narrowest canvas used regardless of terminal size
	MinCols = 60

	// ReservedRows are terminal rows outside canvas and footer: the header line
	// and the row the frame's trailing newline lands on
	ReservedRows = 2

	// HUDPanelWidth is the inner width of the standings panel
	HUDPanelWidth = 37
)

// Status Messages (seconds)
const (
	StatusDefaultTTL = 2.5
	StatusShortTTL   = 0.8
	StatusRaceTTL    = 2.2
	StatusLapTTL     = 1.4
	StatusFinishTTL  = 6.0
)

// Status Text
const (
	TextTitle         = "NEON RAILS"
	TextDefaultStatus = "Steal GPUs, fund your outlaw AGI."
	TextSplashPrompt  = "Press ENTER to jack in."
	TextRaceStart     = "Race start, grab the GPUs!"
	TextCrash         = "CRASH, press R"
	TextPaused        = "Paused"
	TextResumed       = "Back to racing"
	TextThrottleUp    = "Throttle up"
	TextThrottleDown  = "Throttle down"
	TextFinished      = "Race complete! Press R to run again."
)

// Event Text
const (
	TextLap          = "Lap %d/%d"
	TextHit          = "Hit! Hold your line."
	TextBump         = "Bump! Hold your line."
	TextWrecked      = "You wrecked it! Respawning..."
	TextPickup       = "GPU secured!"
	TextDropsRespawn = "Drops respawned!"
	TextNewBest      = "New best!"
	TextReloadFailed = "Config reload failed, keeping current settings"
)

// Panel
const (
	TextSubtitle     = "SOMA UNDERGROUND"
	TextDroneWarning = "SURVEILLANCE DRONES DETECTED..."
	TextLaneHint     = "lanes: ←/→"
	TextNoTruecolor  = " (no truecolor)"

	// HUDBarSegments is the width of the health bar
	HUDBarSegments = 10

	// HUDCriticalPercent marks health as critical at or below this value
	HUDCriticalPercent = 25

	// HUDSpeedScale converts arc units per second to displayed km/h
	HUDSpeedScale = 12.0

	// MinCanvasRows is the smallest canvas height kept when footer text competes for rows
	MinCanvasRows = 8
)
