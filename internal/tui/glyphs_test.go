package tui

import "testing"

func TestGlyphs_EnvBeforeConfig(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("", "")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("", "ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected config ascii; got %v", got)
	}

	applyGlyphPreference("unicode", "ascii")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected env to win; got %v", got)
	}

	// Unknown values are ignored.
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	if glyphMarkLeft() != ">" || glyphArrow() != "->" {
		t.Fatalf("expected ascii markers")
	}
	setGlyphs(glyphSetUnicode)
}
