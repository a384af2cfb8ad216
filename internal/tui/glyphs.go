package tui

import (
	"strings"
	"sync"
)

// Some terminal fonts render the Unicode markers poorly; an ASCII set is
// selectable via DATEWHEEL_TUI_GLYPHS or the "tui.glyphs" config key.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	default:
		return glyphSetUnicode, false
	}
}

// applyGlyphPreference picks the first recognized value, env before config.
func applyGlyphPreference(values ...string) {
	for _, v := range values {
		if gs, ok := parseGlyphSet(v); ok {
			setGlyphs(gs)
			return
		}
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphMarkLeft() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphMarkRight() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "◂"
}

func glyphArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}
