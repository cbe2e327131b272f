package runner

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/text-adventure/pkg/state"
)

// Special input values that trigger runner actions instead of commands
const (
	ResetGamePrompt = "RESET_GAME"
)

// TestSuite defines a complete scripted play-through.
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string           `json:"name"`
	World string           `json:"world,omitempty"` // World file, relative to the runner's WorldDir
	Seed  *state.SaveState `json:"seed,omitempty"`  // Applied to the fresh game before the first step
	Steps []TestStep       `json:"steps,omitempty"`
	Cases []string         `json:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep is one line of player input and its expected outcome.
// Use input: "RESET_GAME" to start over from the seed; saves survive a reset.
type TestStep struct {
	Name         string       `json:"name,omitempty"`
	Input        string       `json:"input"`
	Expectations Expectations `json:"expect"`
}

// Expectations defines what to check after a step executes
type Expectations struct {
	OK        *bool               `json:"ok,omitempty"`
	Quit      *bool               `json:"quit,omitempty"`
	Location  *string             `json:"location,omitempty"`   // Player location
	Inventory []string            `json:"inventory,omitempty"`  // Full inventory contents (order independent); [] means empty
	RoomItems map[string][]string `json:"room_items,omitempty"` // Room name → full item set (order independent)
	RoomDescs map[string]string   `json:"room_descriptions,omitempty"`

	// Response Analysis
	ResponseEquals      *string  `json:"response_equals,omitempty"`
	ResponseContains    []string `json:"response_contains,omitempty"`
	ResponseNotContains []string `json:"response_not_contains,omitempty"`
	ResponseRegex       string   `json:"response_regex,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName     string
	StepName     string
	Success      bool
	Error        error
	Duration     time.Duration
	ResponseText string
	IsReset      bool // True if this was a RESET_GAME step
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job       TestJob
	Results   []TestResult
	Error     error
	Duration  time.Duration
	SessionID uuid.UUID // ID of the last game session used by the suite
}
