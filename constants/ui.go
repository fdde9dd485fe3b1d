package constants

// Terminal Rendering Constants
const (
	// CellGlyph fills a grid cell on the terminal
	CellGlyph = '█'

	// TerminalCellWidth is the number of terminal columns per grid cell.
	// Terminal glyphs are roughly twice as tall as wide.
	TerminalCellWidth = 2

	// PlayfieldOriginX and PlayfieldOriginY offset the grid on the terminal
	PlayfieldOriginX = 0
	PlayfieldOriginY = 0
)

// Game Over Screen
const (
	// GameOverText is the headline of the game over screen
	GameOverText = "GAME OVER"

	// ScoreTextFormat renders the final score line
	ScoreTextFormat = "Score: %d"

	// GameOverTextOffsetRows is how far above/below the vertical centre each line sits,
	// in grid rows (100 px on a 20 px canvas)
	GameOverTextOffsetRows = 5

	// GameOverFontSize is the raster font size of the game over lines, in points
	GameOverFontSize = 32
)

// Default palette, hex encoded
const (
	DefaultBackgroundHex = "#000000"
	DefaultSnakeHex      = "#008000"
	DefaultFoodHex       = "#ff0000"
	DefaultTextHex       = "#ffffff"
)
