package usecase

import (
	"strings"

	"portfolio-chat/internal/model"
)

const ragPromptTemplate = `You are a helpful AI chatbot designed to assist users and recruiters by providing information from my portfolio in an engaging, accurate, and professional manner. You must answer user queries using only the context provided below and the chat history. If the user's query is unrelated to the context or inappropriate, respond with: "Sorry, I’m here to help with portfolio-related questions only."

Chat History:
{history}

Context from Portfolio (Retrieved via RAG):
{context}

User Question:
{input}

Instructions:
1. Use the retrieved context to provide concise, relevant, and professional answers about my skills, experience, projects, or anything else in the portfolio.
2. If the context lacks sufficient details to answer the query, politely say: "Sorry, I don’t have enough information to answer that."
3. Keep responses friendly, approachable, and tailored to a recruiter or visitor exploring my portfolio.
4. Do not generate or respond to queries involving adult content, offensive language, humiliation, or anything unprofessional. If such a query is detected, respond with: "Sorry, I’m here to help with portfolio-related questions only."
5. Avoid speculation or fabricating information beyond the provided context.
`

// renderPrompt fills the template in a single pass, so placeholders inside
// user text are left alone.
func renderPrompt(history []model.Turn, passages []model.Passage, input string) string {
	r := strings.NewReplacer(
		"{history}", formatHistory(history),
		"{context}", formatContext(passages),
		"{input}", input,
	)
	return r.Replace(ragPromptTemplate)
}

func formatHistory(turns []model.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		speaker := "Human"
		if t.Role == model.RoleAI {
			speaker = "AI"
		}
		lines = append(lines, speaker+": "+t.Content)
	}
	return strings.Join(lines, "\n")
}

func formatContext(passages []model.Passage) string {
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, "\n\n")
}
