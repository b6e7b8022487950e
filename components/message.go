package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the HUD message
type MessageStateData struct {
	Text  string
	Timer float64 // Seconds left on screen
}

// Set shows text for the given number of seconds.
func (m *MessageStateData) Set(text string, seconds float64) {
	m.Text = text
	m.Timer = seconds
}

// Active reports whether a message is on screen.
func (m *MessageStateData) Active() bool {
	return m.Timer > 0 && m.Text != ""
}

var MessageState = donburi.NewComponentType[MessageStateData]()
