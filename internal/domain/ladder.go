package domain

import (
	"fmt"

	m "snare.dev/pkg/snare/internal/model"
)

// LadderEvent drives a generated test along the retry/escalation ladder.
type LadderEvent int

const (
	// EventCompileFailed reports that the test did not compile.
	EventCompileFailed LadderEvent = iota
	// EventOriginalFailed reports that the test failed against unmodified code.
	EventOriginalFailed
	// EventFinished reports a final verdict.
	EventFinished
)

// DefaultMaxCompileRetries bounds compile-fix retries before escalation.
const DefaultMaxCompileRetries = 3

// Ladder is the per-test state machine
// Generated -> CompileRetry(n) -> Escalated -> Recovered -> Terminal.
// Every transition is bounded so a test always reaches Terminal.
type Ladder struct {
	MaxCompileRetries int
}

// NewLadder returns a Ladder with the default bounds.
func NewLadder() Ladder {
	return Ladder{MaxCompileRetries: DefaultMaxCompileRetries}
}

// Next returns test advanced by event. When no transition is left the test
// is moved to Terminal and ErrLadderExhausted is returned.
func (l Ladder) Next(test m.GeneratedTest, event LadderEvent) (m.GeneratedTest, error) {
	stage := test.Stage
	if stage == "" {
		stage = m.StageGenerated
	}

	if stage == m.StageTerminal {
		return test, fmt.Errorf("%w: test already terminal", ErrLadderExhausted)
	}

	if event == EventFinished {
		test.Stage = m.StageTerminal
		return test, nil
	}

	next, ok := l.transition(stage, test.Attempts, event)
	if !ok {
		test.Stage = m.StageTerminal
		return test, fmt.Errorf("%w: no transition from %s", ErrLadderExhausted, stage)
	}

	test.Stage = next
	test.Attempts++

	return test, nil
}

func (l Ladder) transition(stage m.TestStage, attempts int, event LadderEvent) (m.TestStage, bool) {
	switch event {
	case EventCompileFailed:
		switch stage {
		case m.StageGenerated:
			if l.MaxCompileRetries <= 0 {
				return m.StageEscalated, true
			}

			return m.StageCompileRetry, true
		case m.StageCompileRetry:
			if attempts < l.MaxCompileRetries {
				return m.StageCompileRetry, true
			}

			return m.StageEscalated, true
		}
	case EventOriginalFailed:
		switch stage {
		case m.StageGenerated, m.StageCompileRetry, m.StageEscalated:
			return m.StageRecovered, true
		}
	}

	return "", false
}
