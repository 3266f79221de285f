package viewport

// Width breakpoints for viewport classification, in CSS pixels.
const (
	// MobileMaxWidth is the widest viewport still classified as mobile.
	MobileMaxWidth = 425

	// TabletMaxWidth is the widest viewport still classified as tablet.
	TabletMaxWidth = 1024
)

// Device classes reported by ScreenState.Class.
const (
	ClassMobile  = "mobile"
	ClassTablet  = "tablet"
	ClassDesktop = "desktop"
)

// ScreenState describes the device class derived from the viewport width.
// A classified state has exactly one flag set. The zero value means the
// viewport has not been queried yet.
type ScreenState struct {
	IsMobile  bool `json:"isMobile"`
	IsTablet  bool `json:"isTablet"`
	IsDesktop bool `json:"isDesktop"`
}

// IsZero reports whether no flag is set.
func (s ScreenState) IsZero() bool {
	return !s.IsMobile && !s.IsTablet && !s.IsDesktop
}

// Class returns the device class name, or an empty string for the zero state.
func (s ScreenState) Class() string {
	switch {
	case s.IsMobile:
		return ClassMobile
	case s.IsTablet:
		return ClassTablet
	case s.IsDesktop:
		return ClassDesktop
	default:
		return ""
	}
}

// Breakpoints holds the width thresholds used by Classify.
type Breakpoints struct {
	MobileMaxWidth int
	TabletMaxWidth int
}

// DefaultBreakpoints returns the 425/1024 thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		MobileMaxWidth: MobileMaxWidth,
		TabletMaxWidth: TabletMaxWidth,
	}
}

// Classify maps a viewport to a ScreenState. Only the width takes part in
// the decision; height is accepted so callers can pass the full viewport.
// Zero and negative widths are not rejected and classify as mobile.
func (b Breakpoints) Classify(width, height int) ScreenState {
	isMobile := width <= b.MobileMaxWidth
	isTablet := width <= b.TabletMaxWidth && width > b.MobileMaxWidth

	return ScreenState{
		IsMobile:  isMobile,
		IsTablet:  isTablet,
		IsDesktop: !isMobile && !isTablet,
	}
}

// Classify maps a viewport to a ScreenState using DefaultBreakpoints.
func Classify(width, height int) ScreenState {
	return DefaultBreakpoints().Classify(width, height)
}
