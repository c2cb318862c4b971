package wealth

import "time"

// Profile carries the free-text context the coaching agent personalizes
// its advice with. All fields are optional.
type Profile struct {
	// Vision is where the user wants to be financially, in their words.
	Vision string `json:"vision,omitempty"`
	// Ambitions lists what they are saving towards beyond the tracked goals.
	Ambitions string `json:"ambitions,omitempty"`
	// Relationship describes how they feel about money today.
	Relationship string `json:"relationship,omitempty"`
}

// IsZero reports whether nothing has been filled in.
func (p Profile) IsZero() bool {
	return p.Vision == "" && p.Ambitions == "" && p.Relationship == ""
}

// Tip is a saved piece of generated coaching advice.
type Tip struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}
