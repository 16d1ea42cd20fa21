package components

import "time"

// UI timing constants
const (
	UITickInterval   = 100 * time.Millisecond
	UITicksPerSecond = int(time.Second / UITickInterval)

	TipRotationTicks = 80
)

// Generic layout constants
const (
	PanelHeightPadding = 8
	MinPanelHeight     = 10
	PanelInnerPadding  = 4
	PanelBorderHeight  = 2
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Course list constants
const (
	CourseListWidth      = 32
	CourseTitleMinWidth  = 12
	MeterWidth           = 20
	DefaultViewportWidth = 80
)
