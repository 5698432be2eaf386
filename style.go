package menu

// Spacing constants for consistent layout.
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Theme defines the visual appearance of menus and their widgets.
type Theme struct {
	// Colors
	TextColor         uint32
	DisabledTextColor uint32
	SelectedTextColor uint32
	SelectionBgColor  uint32

	// Menu frame
	BackgroundColor uint32
	BorderColor     uint32
	TitleBgColor    uint32
	TitleTextColor  uint32
	CloseBoxColor   uint32

	// Widgets
	ButtonColor       uint32
	ButtonActiveColor uint32
	InputBgColor      uint32
	InputBorderColor  uint32

	// Scrollbars
	ScrollbarBgColor       uint32
	ScrollbarSliderColor   uint32
	ScrollbarSliderHovered uint32

	// Metrics
	TitleHeight   float32
	Padding       float32
	ItemSpacing   float32
	ScrollbarSize float32
	BorderWidth   float32

	// Font is the atlas used to measure and draw widget text.
	Font *Atlas
}

// DefaultTheme returns a dark theme with the built-in bitmap font.
func DefaultTheme() *Theme {
	return &Theme{
		TextColor:         RGBA(220, 220, 220, 255),
		DisabledTextColor: RGBA(128, 128, 128, 255),
		SelectedTextColor: RGBA(255, 255, 255, 255),
		SelectionBgColor:  RGBA(60, 90, 150, 255),

		BackgroundColor: RGBA(30, 30, 34, 240),
		BorderColor:     RGBA(80, 80, 90, 255),
		TitleBgColor:    RGBA(45, 45, 55, 255),
		TitleTextColor:  RGBA(235, 235, 235, 255),
		CloseBoxColor:   RGBA(200, 80, 80, 255),

		ButtonColor:       RGBA(55, 55, 65, 255),
		ButtonActiveColor: RGBA(75, 75, 90, 255),
		InputBgColor:      RGBA(40, 40, 48, 255),
		InputBorderColor:  RGBA(90, 90, 100, 255),

		ScrollbarBgColor:       RGBA(38, 38, 44, 255),
		ScrollbarSliderColor:   RGBA(95, 95, 110, 255),
		ScrollbarSliderHovered: RGBA(130, 130, 150, 255),

		TitleHeight:   24,
		Padding:       SpaceMD,
		ItemSpacing:   SpaceSM,
		ScrollbarSize: 12,
		BorderWidth:   1,

		Font: DefaultAtlas(),
	}
}
