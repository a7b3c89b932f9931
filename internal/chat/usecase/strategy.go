package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/intent"
)

// strategy produces the reply for one category.
type strategy func(ctx context.Context, sessionID, message string) (string, error)

func (uc *implUseCase) strategyFor(c intent.Category) strategy {
	switch c {
	case intent.Greeting:
		return uc.greet
	case intent.Contact:
		return uc.contactInfo
	case intent.PortfolioQuestion:
		return uc.answerFromPortfolio
	default:
		return uc.refuse
	}
}

func (uc *implUseCase) greet(ctx context.Context, sessionID, message string) (string, error) {
	return uc.greeting, nil
}

func (uc *implUseCase) contactInfo(ctx context.Context, sessionID, message string) (string, error) {
	return uc.contact, nil
}

func (uc *implUseCase) refuse(ctx context.Context, sessionID, message string) (string, error) {
	return chat.RefusalMessage, nil
}

func renderGreeting(p Profile) string {
	if p.Name == "" {
		return "Hi there! I'm a portfolio assistant. Ask me about skills, experience or projects."
	}
	return fmt.Sprintf("Hi there! I'm %s's portfolio assistant. Ask me about %s's skills, experience or projects.", p.Name, p.Name)
}

func renderContact(p Profile) string {
	var lines []string
	if p.Email != "" {
		lines = append(lines, "Email: "+p.Email)
	}
	if p.Phone != "" {
		lines = append(lines, "Phone: "+p.Phone)
	}
	if p.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+p.LinkedIn)
	}
	if p.GitHub != "" {
		lines = append(lines, "GitHub: "+p.GitHub)
	}
	if len(lines) == 0 {
		return "Contact details are not available right now."
	}

	who := "me"
	if p.Name != "" {
		who = p.Name
	}
	return fmt.Sprintf("You can reach %s here:\n%s", who, strings.Join(lines, "\n"))
}
