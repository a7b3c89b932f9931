package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Classifier prompt
const (
	PromptClassifierSystem = `You classify messages sent to a portfolio chatbot that answers recruiters and visitors.

Set exactly one of the following fields to true:
- Greeting: the message is a greeting or small talk opener (hi, hello, good morning).
- PortfolioQuestion: the message asks about the portfolio owner's skills, experience, projects, education or background.
- Unknown: the message is unrelated to the portfolio, inappropriate, or cannot be understood.
- Contact: the message asks how to reach, hire or contact the portfolio owner.

Respond only with a JSON object of the form:
{"Greeting": false, "PortfolioQuestion": false, "Unknown": false, "Contact": false}`

	PromptClassifierUser = "Message: %s"
)

// Classifier configuration
const (
	ClassifierTemperature = 0.0
	ClassifierMaxTokens   = 100
	ClassifierSchemaName  = "intent_flags"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse classifier JSON"
	ErrMsgEmptyResponse   = "empty classifier response"
)
