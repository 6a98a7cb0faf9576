package constants

// Glyphs
const (
	GlyphHead   = '@'
	GlyphBody   = 'o'
	GlyphFood   = '*'
	GlyphBorder = '#'
)

// TerminalCellWidth is the number of terminal columns per board cell
// Two columns keep cells roughly square in most fonts
const TerminalCellWidth = 2

// Status bar text
const (
	StatusTextRunning  = " RUNNING "
	StatusTextPaused   = " PAUSED  "
	StatusTextGameOver = " GAME OVER "
	HelpTextRunning    = "arrows/hjkl/wasd: move  p: pause  q: quit"
	HelpTextGameOver   = "r: restart  q: quit"
)

// Board colors (RGB)
var (
	RgbBackground = [3]int32{24, 24, 28}
	RgbBorder     = [3]int32{90, 90, 110}
	RgbHead       = [3]int32{128, 128, 255}
	RgbBody       = [3]int32{80, 80, 200}
	RgbFood       = [3]int32{230, 80, 60}
	RgbStatusText = [3]int32{200, 200, 200}
	RgbGameOver   = [3]int32{255, 60, 60}
)
