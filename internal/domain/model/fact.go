package model

import "fmt"

// Fact is a short "did you know" entry shown on the facts carousel.
type Fact struct {
	Title       string
	Description string
}

// ShareMessage is the plain-text body used when a fact is shared.
func (f Fact) ShareMessage() string {
	return fmt.Sprintf("Did you know?\n\n%s\n%s\n\nDiscover more facts about New Zealand!", f.Title, f.Description)
}
