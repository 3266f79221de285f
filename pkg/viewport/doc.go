// Package viewport classifies a client viewport as mobile, tablet or desktop
// using width breakpoints.
//
// The policy is width-only:
//
//   - mobile:  width <= 425
//   - tablet:  425 < width <= 1024
//   - desktop: width > 1024
//
// Height is part of the signature but does not influence the result.
//
// # Usage
//
//	state := viewport.Classify(390, 844)
//	if state.IsMobile {
//	    // serve the compact layout
//	}
//
// Custom thresholds are available through Breakpoints:
//
//	bp := viewport.Breakpoints{MobileMaxWidth: 480, TabletMaxWidth: 1280}
//	state := bp.Classify(width, height)
//
// This classification is independent of the user-agent based device type in
// package useragent. The two may disagree and neither overrides the other.
package viewport
