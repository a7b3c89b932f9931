package chat

import (
	"fmt"

	"portfolio-chat/internal/intent"
)

// Outcome tells how a message was resolved.
type Outcome string

const (
	OutcomeRefused  Outcome = "refused"
	OutcomeAnswered Outcome = "answered"
	OutcomeFailed   Outcome = "failed"
)

// Stage names the step of the generation path that failed.
type Stage string

const (
	StageStore    Stage = "store"
	StageClassify Stage = "classify"
	StageRetrieve Stage = "retrieve"
	StageGenerate Stage = "generate"
)

// Failure is the error returned by every step of the generation path.
// The use case turns it into ApologyMessage.
type Failure struct {
	Stage Stage
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail wraps err as a Failure at stage.
func Fail(stage Stage, err error) *Failure {
	return &Failure{Stage: stage, Err: err}
}

// --- UseCase Inputs ---

type HandleInput struct {
	Message   string
	SessionID string // empty means start a new session
}

// --- UseCase Outputs ---

type HandleOutput struct {
	Message   string
	SessionID string
	Category  intent.Category
	Outcome   Outcome
}
