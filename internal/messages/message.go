// Package messages turns a detected moment into the copy the product shows,
// from static templates or provider-generated text with safe fallbacks.
package messages

// Action is a labeled navigation target attached to a message.
type Action struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Message is the rendered, user-facing output for a moment.
type Message struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Primary   Action  `json:"primary"`
	Secondary *Action `json:"secondary,omitempty"`
}
