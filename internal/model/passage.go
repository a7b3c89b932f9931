package model

// Passage is a retrieved chunk of portfolio text.
type Passage struct {
	ID      string
	Content string
	Source  string
	Score   float64
}
