package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for maze area
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorSolution        = color.NRGBA{255, 80, 80, 140}  // Translucent red
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorPanelBackground = color.NRGBA{30, 30, 50, 220}   // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 120, 255}
)

// Window and layout defaults
const (
	defaultWindowWidth  = 900
	defaultWindowHeight = 900

	mapPadding       = 24
	hudHeight        = 110
	hudCornerRadius  = 8
	hudBorderWidth   = 1.5
	wallStrokeWidth  = 2
	uiFontSize       = 14
	lineSpacing      = 18
	minZoom, maxZoom = 0.25, 4.0
	zoomStep         = 1.25
)
