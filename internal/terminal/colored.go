package terminal

// Colored is a piece of text with the colors it should be drawn in.
type Colored struct {
	Text       string
	Foreground Color
	Background Color
}

// Text returns a Colored with only a foreground color.
func Text(text string, fg Color) Colored {
	return Colored{Text: text, Foreground: fg}
}

// Write draws the text at the cursor and restores default colors.
func (c Colored) Write(s Sink) {
	WithColors(s, c.Foreground, c.Background, func() {
		s.Write(c.Text)
	})
}

// WriteLine draws the text followed by a line break.
func (c Colored) WriteLine(s Sink) {
	c.Write(s)
	s.WriteLine()
}
