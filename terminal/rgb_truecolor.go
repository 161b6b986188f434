package terminal

// Generic TrueColor palette, pure RGB definitions without game semantics
// Palette defaults and config color names resolve against these
var (
	Black     = RGB{0, 0, 0}
	DimGray   = RGB{55, 55, 55}
	Gray      = RGB{120, 120, 120}
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	Red        = RGB{255, 0, 0}
	Coral      = RGB{255, 80, 80}
	Orange     = RGB{255, 165, 0}
	Gold       = RGB{255, 215, 0}
	Yellow     = RGB{255, 255, 0}
	NeonGreen  = RGB{50, 255, 50}
	Cyan       = RGB{0, 255, 255}
	DodgerBlue = RGB{40, 180, 255}
	HotPink    = RGB{255, 140, 200}
	RoseRed    = RGB{255, 60, 120}
	Magenta    = RGB{255, 0, 255}
)
