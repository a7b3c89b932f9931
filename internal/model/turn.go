package model

import "strings"

// Role identifies who produced a turn.
type Role string

const (
	RoleHuman Role = "human"
	RoleAI    Role = "ai"
)

// turnSeparator splits role from content. Only the first occurrence counts.
const turnSeparator = ":"

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleHuman || r == RoleAI
}

// Turn is one logged utterance of a session.
type Turn struct {
	Role    Role
	Content string
}

// Encode serializes the turn as "role:content".
func (t Turn) Encode() string {
	return string(t.Role) + turnSeparator + t.Content
}

// ParseTurn reverses Encode. Values without a separator or with an unknown
// role are rejected.
func ParseTurn(raw string) (Turn, bool) {
	role, content, found := strings.Cut(raw, turnSeparator)
	if !found {
		return Turn{}, false
	}

	r := Role(role)
	if !r.Valid() {
		return Turn{}, false
	}

	return Turn{Role: r, Content: content}, true
}

// ParseTurns decodes raw values in order, skipping the ones ParseTurn rejects.
func ParseTurns(raw []string) []Turn {
	turns := make([]Turn, 0, len(raw))
	for _, v := range raw {
		if t, ok := ParseTurn(v); ok {
			turns = append(turns, t)
		}
	}
	return turns
}
