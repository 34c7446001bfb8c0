package constants

// UI Layout
const (
	// HeaderLeft, HeaderCenter are the fixed header captions
	HeaderLeft   = "MUD-R1 v1.0"
	HeaderCenter = "TERMINAL MONITOR"

	// LegendText is the bottom bar
	LegendText = "F=Forest | P=Plains | R=River | M=Mountain | @=You"

	// HelpText is shown right-aligned in the legend bar when there is room
	HelpText = "Up/Down: scroll  Enter: confirm  q: quit"

	// PanelTitleMap, PanelTitleStats, PanelTitleLog label the three browsable panels
	PanelTitleMap   = "World Map"
	PanelTitleStats = "Status"
	PanelTitleLog   = "Event Log"
	PanelTitleMenu  = "Movement Direction"

	// ScrollModeTag is appended to the log title while log scrolling is active
	ScrollModeTag = " [SCROLL]"

	// MenuFooter is the hint under the movement menu
	MenuFooter = "Select direction and press button to move"

	// ClockFormat is the header clock and log entry timestamp layout
	ClockFormat = "15:04:05"
)

// UI Sizing
const (
	// MapPanelWidth fits the 5x5 view with spacing plus borders and footer
	MapPanelWidth = 20

	// TopRowHeight is the height of the map and stats panels
	TopRowHeight = 10

	// MinLogRows is the fewest log rows for the log view to count as mounted
	MinLogRows = 1

	// MinLogWidth is the narrowest inner log width that can wrap text
	MinLogWidth = 12

	// StatBarWidth is the width of a terrain bar in the stats panel
	StatBarWidth = 10

	// MenuColumns is the direction grid width in the movement menu
	MenuColumns = 3
)
