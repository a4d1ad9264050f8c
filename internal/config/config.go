package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Particle field
	ParticleCount      = 50
	MaxVelocity        = 0.2
	MinRadius          = 1.0
	MaxRadius          = 3.5
	MinOpacity         = 0.3
	MaxOpacity         = 0.9
	ConnectDistance    = 120.0
	ConnectMaxAlpha    = 0.15
	ConnectLineWidth   = 0.8
	TerminalCellWidth  = 8
	TerminalCellHeight = 16

	// Transition delays, kept in sync with the stylesheet animation durations
	ImageFadeDelay   = 150 * time.Millisecond
	ModalCloseDelay  = 300 * time.Millisecond
	ModalOpenDelay   = 10 * time.Millisecond
	MenuToggleGuard  = 300 * time.Millisecond
	MenuButtonDelay  = 10 * time.Millisecond
	ManifestDebounce = 200 * time.Millisecond

	// Scroll effects
	NavbarScrolledOffset = 100
	BackToTopOffset      = 300
	MobileBreakpoint     = 768
	WheelStep            = 60

	// Reveal animation
	RevealThreshold    = 0.1
	RevealBottomMargin = 50

	ParallaxStrength = 10

	PreferredLanguageKey = "preferredLanguage"
	ColorShiftSpeed      = 0.002
)
