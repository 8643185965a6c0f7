// Package viz renders analysis results in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell)
//   - [PlotCurve]: stress-strain curve with offset line and markers
//   - [PlotSeries]: line chart of any per-sample series
//   - [Summary]: styled panel of the key results
//   - [RunViewer]: interactive Bubble Tea browser over the samples
//
// # Key Bindings
//
//	←/→ h/l   - Move cursor one sample
//	shift+←/→ - Move cursor ten samples
//	home/end  - First/last sample
//	y/f/p     - Jump to yield, fracture or peak
//	t         - Cycle color themes
//	q         - Quit
package viz
