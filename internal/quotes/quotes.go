// Package quotes supplies fallback race passages for rooms created without
// client-provided text.
package quotes

import (
	"math/rand"
	"strings"
)

type length int

const (
	lengthShort length = iota
	lengthMedium
	lengthLong
)

type quote struct {
	length length
	text   string
}

var defaultQuotes = []quote{
	{lengthShort, "There is no spoon. It is not the spoon that bends, it is only yourself."},
	{lengthShort, "Do. Or do not. There is no try. Fear is the path to the dark side."},
	{lengthShort, "I'll be back. Hasta la vista, baby. The future is not set."},
	{lengthShort, "You must'nt be afraid to dream a little bigger, darling."},
	{lengthMedium, "I've seen things you people wouldn't believe. Attack ships on fire off the shoulder of Orion. I watched C-beams glitter in the dark near the Tannhauser Gate. All those moments will be lost in time, like tears in rain."},
	{lengthMedium, "I must not fear. Fear is the mind-killer. Fear is the little-death that brings total obliteration. I will face my fear. I will permit it to pass over me and through me."},
	{lengthLong, "In Night City, you can be anyone you want to be. The only limit is your imagination and how much you're willing to pay. But remember, every choice has a price, and sometimes the price is higher than you can afford. So choose wisely, choom, because once you're in, there's no way out."},
	{lengthLong, "The sky above the port was the color of television, tuned to a dead channel. It's not like I'm using, Case heard someone say, as he shouldered his way through the crowd around the door of the Chat. It's like my body's developed this massive drug deficiency."},
}

var aiFragments = []string{
	"The neural network parses the data stream,",
	"creating a reality that transcends the physical realm.",
	"Neon lights flicker in the digital rain,",
	"while the algorithm optimized for maximum efficiency.",
	"Encrypted packets flow through the fiber optic veins,",
	"pulsing with the heartbeat of the machine city.",
	"System integrity is critical for survival in this sector.",
	"Hacking the mainframe requires precision and speed.",
}

// Pick returns a passage sized to the requested word count. With useAI set
// it assembles one from canned fragments instead of the quote table. Without
// includeCapitals the passage is lowercased to match what clients type.
func Pick(wordCount int, useAI, includeCapitals bool) string {
	ln := bucket(wordCount)

	var text string
	if useAI {
		text = generate(ln)
	} else {
		text = pickQuote(ln)
	}
	if !includeCapitals {
		text = strings.ToLower(text)
	}
	return text
}

// Buckets follow the quote table: short is 10-25 words, medium 25-50,
// long 50 and up.
func bucket(wordCount int) length {
	switch {
	case wordCount <= 25:
		return lengthShort
	case wordCount <= 50:
		return lengthMedium
	default:
		return lengthLong
	}
}

func pickQuote(ln length) string {
	filtered := make([]quote, 0, len(defaultQuotes))
	for _, q := range defaultQuotes {
		if q.length == ln {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return defaultQuotes[0].text
	}
	return filtered[rand.Intn(len(filtered))].text
}

func generate(ln length) string {
	count := 2
	switch ln {
	case lengthMedium:
		count = 4
	case lengthLong:
		count = 8
	}
	parts := make([]string, count)
	for i := range parts {
		parts[i] = aiFragments[rand.Intn(len(aiFragments))]
	}
	return strings.Join(parts, " ")
}
