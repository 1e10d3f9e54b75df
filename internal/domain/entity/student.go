package entity

// Student is a single entry in the demo roster.
type Student struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Marks int    `json:"marks"`
}
