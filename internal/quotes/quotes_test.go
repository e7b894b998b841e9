package quotes

import (
	"strings"
	"testing"
)

func TestPick_NeverEmpty(t *testing.T) {
	for _, wc := range []int{10, 25, 50, 100} {
		for _, useAI := range []bool{false, true} {
			if text := Pick(wc, useAI, true); text == "" {
				t.Errorf("Pick(%d, %v, true) returned empty text", wc, useAI)
			}
		}
	}
}

func TestPick_LowercasesWithoutCapitals(t *testing.T) {
	for i := 0; i < 20; i++ {
		text := Pick(25, false, false)
		if text != strings.ToLower(text) {
			t.Errorf("Pick without capitals returned %q", text)
		}
	}
}

func TestPick_KeepsCapitals(t *testing.T) {
	// Every quote in the table starts with an uppercase letter, so at least
	// one capital must survive.
	text := Pick(25, false, true)
	if text == strings.ToLower(text) {
		t.Errorf("Pick with capitals returned all-lowercase %q", text)
	}
}

func TestBucket(t *testing.T) {
	cases := []struct {
		wordCount int
		want      length
	}{
		{10, lengthShort},
		{25, lengthShort},
		{26, lengthMedium},
		{50, lengthMedium},
		{51, lengthLong},
		{200, lengthLong},
	}
	for _, c := range cases {
		if got := bucket(c.wordCount); got != c.want {
			t.Errorf("bucket(%d) = %v, want %v", c.wordCount, got, c.want)
		}
	}
}

func TestGenerate_FragmentCount(t *testing.T) {
	cases := []struct {
		ln    length
		parts int
	}{
		{lengthShort, 2},
		{lengthMedium, 4},
		{lengthLong, 8},
	}
	for _, c := range cases {
		text := generate(c.ln)
		// Fragments never contain double spaces, so counting joins is safe
		got := strings.Count(text, " ")
		minWords := c.parts * 2
		if got < minWords {
			t.Errorf("generate(%v) = %q, looks shorter than %d fragments", c.ln, text, c.parts)
		}
	}
}
