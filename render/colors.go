package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// tcellColor converts a constants RGB triple
func tcellColor(c [3]int32) tcell.Color {
	return tcell.NewRGBColor(c[0], c[1], c[2])
}

// Board colors for the terminal renderer
var (
	RgbBackground = tcellColor(constants.RgbBackground)
	RgbBorder     = tcellColor(constants.RgbBorder)
	RgbHead       = tcellColor(constants.RgbHead)
	RgbBody       = tcellColor(constants.RgbBody)
	RgbFood       = tcellColor(constants.RgbFood)
	RgbStatusText = tcellColor(constants.RgbStatusText)
	RgbGameOver   = tcellColor(constants.RgbGameOver)

	// Status bar mode backgrounds
	RgbModeRunningBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModePausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbModeGameOverBg = tcell.NewRGBColor(128, 0, 0)     // Dark red
	RgbModeText       = tcell.NewRGBColor(0, 0, 0)
)
