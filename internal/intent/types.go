package intent

// Category is the closed set of intents a message can be routed to.
type Category int

const (
	Unknown Category = iota
	Greeting
	PortfolioQuestion
	Contact
)

func (c Category) String() string {
	switch c {
	case Greeting:
		return "greeting"
	case PortfolioQuestion:
		return "portfolio_question"
	case Contact:
		return "contact"
	default:
		return "unknown"
	}
}

// Flags is the structured classifier output. Field order mirrors Priority.
type Flags struct {
	Greeting          bool `json:"Greeting"`
	PortfolioQuestion bool `json:"PortfolioQuestion"`
	Unknown           bool `json:"Unknown"`
	Contact           bool `json:"Contact"`
}

// Priority decides the winner when the model sets more than one flag.
var Priority = []Category{Greeting, PortfolioQuestion, Unknown, Contact}

// Category returns the first set flag in Priority order, or Unknown.
func (f Flags) Category() Category {
	for _, c := range Priority {
		if f.isSet(c) {
			return c
		}
	}
	return Unknown
}

func (f Flags) isSet(c Category) bool {
	switch c {
	case Greeting:
		return f.Greeting
	case PortfolioQuestion:
		return f.PortfolioQuestion
	case Unknown:
		return f.Unknown
	case Contact:
		return f.Contact
	}
	return false
}
