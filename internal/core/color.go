package core

// Color is the semantic role of a screen cell. The platform layer maps
// roles to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorMuted         // Empty board cells, hints
	ColorBorder        // Board and panel frames
	ColorTile          // A tile waiting its turn
	ColorNext          // The tile that must be clicked next
	ColorTitle         // Headings
	ColorScore         // Score figures
	ColorOK            // Timer with plenty of time left
	ColorWarn          // Timer getting low
	ColorDanger        // Timer nearly expired
)
