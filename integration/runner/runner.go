package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jwebster45206/text-adventure/pkg/scenario"
	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/storage"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner plays scripted test suites against the in-process engine.
type Runner struct {
	WorldDir          string
	Logger            func(format string, args ...any)
	ErrorHandlingMode ErrorHandlingMode
	WorldOverride     string // If set, overrides the world for all test cases
	GameLogger        *slog.Logger
}

// NewRunner creates a runner that resolves world files under worldDir.
func NewRunner(worldDir string) *Runner {
	return &Runner{
		WorldDir:          worldDir,
		Logger:            func(string, ...any) {},
		ErrorHandlingMode: ErrorHandlingContinue,
		GameLogger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// newGame loads a fresh world and applies the suite's seed.
func (r *Runner) newGame(suite *TestSuite, store state.SaveStore) (*state.Game, error) {
	worldFile := suite.World
	if r.WorldOverride != "" {
		worldFile = r.WorldOverride
	}
	if worldFile == "" {
		return nil, fmt.Errorf("suite %s names no world", suite.Name)
	}

	w, err := scenario.NewLoader(r.GameLogger).LoadFile(filepath.Join(r.WorldDir, worldFile))
	if err != nil {
		return nil, err
	}
	g, err := state.NewGame(w, store, r.GameLogger)
	if err != nil {
		return nil, err
	}
	if suite.Seed != nil {
		if warnings := state.Apply(suite.Seed.Clone(), g.World, g.Player); len(warnings) > 0 {
			return nil, fmt.Errorf("seed does not match world: %s", strings.Join(warnings, "; "))
		}
	}
	return g, nil
}

// RunSuite executes a complete test suite
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	// One store per suite so a save outlives RESET_GAME
	store := storage.NewMockStorage()
	g, err := r.newGame(&suite, store)
	if err != nil {
		result.Error = fmt.Errorf("failed to start game: %w", err)
		result.Duration = time.Since(start)
		return result, result.Error
	}
	result.SessionID = g.ID

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)

		stepResult := TestResult{TestName: suite.Name, StepName: step.Name}
		stepStart := time.Now()
		if step.Input == ResetGamePrompt {
			stepResult.IsReset = true
			stepResult.ResponseText = "[GAME RESET]"
			if g, err = r.newGame(&suite, store); err != nil {
				stepResult.Error = fmt.Errorf("failed to reset game: %w", err)
				result.Results = append(result.Results, stepResult)
				result.Error = stepResult.Error
				break
			}
			result.SessionID = g.ID
			stepResult.Error = checkExpectations(step.Expectations, g, nil)
		} else {
			res := g.Execute(ctx, step.Input)
			stepResult.ResponseText = res.Message
			stepResult.Error = checkExpectations(step.Expectations, g, res)
		}
		stepResult.Success = stepResult.Error == nil
		stepResult.Duration = time.Since(stepStart)
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

// checkExpectations validates the step expectations against the game after
// the step ran. res is nil for reset steps.
func checkExpectations(exp Expectations, g *state.Game, res *state.CommandResult) error {
	if res != nil {
		if exp.OK != nil && res.OK != *exp.OK {
			return fmt.Errorf("expected ok=%t, got %t (response: %q)", *exp.OK, res.OK, res.Message)
		}
		if exp.Quit != nil && res.Quit != *exp.Quit {
			return fmt.Errorf("expected quit=%t, got %t", *exp.Quit, res.Quit)
		}
		if err := checkResponse(exp, res.Message); err != nil {
			return err
		}
	}

	if exp.Location != nil {
		if got := g.Player.CurrentRoomName(); got != *exp.Location {
			return fmt.Errorf("expected location %s, got %s", *exp.Location, got)
		}
	}

	// Full inventory check (order independent)
	if exp.Inventory != nil {
		if err := sameNames("inventory", exp.Inventory, g.Player.InventoryNames()); err != nil {
			return err
		}
	}

	for roomName, want := range exp.RoomItems {
		room, ok := g.World.Room(roomName)
		if !ok {
			return fmt.Errorf("expected room %s to exist", roomName)
		}
		if err := sameNames("items in "+roomName, want, room.ItemNames()); err != nil {
			return err
		}
	}

	for roomName, want := range exp.RoomDescs {
		room, ok := g.World.Room(roomName)
		if !ok {
			return fmt.Errorf("expected room %s to exist", roomName)
		}
		if room.Description != want {
			return fmt.Errorf("expected %s description %q, got %q", roomName, want, room.Description)
		}
	}

	return nil
}

func checkResponse(exp Expectations, responseText string) error {
	if exp.ResponseEquals != nil && responseText != *exp.ResponseEquals {
		return fmt.Errorf("expected response %q, got %q", *exp.ResponseEquals, responseText)
	}

	lowerResponse := strings.ToLower(responseText)
	for _, expectedText := range exp.ResponseContains {
		if !strings.Contains(lowerResponse, strings.ToLower(expectedText)) {
			return fmt.Errorf("expected response to contain '%s', got %q", expectedText, responseText)
		}
	}
	for _, unexpectedText := range exp.ResponseNotContains {
		if strings.Contains(lowerResponse, strings.ToLower(unexpectedText)) {
			return fmt.Errorf("expected response to NOT contain '%s', but it did", unexpectedText)
		}
	}

	if exp.ResponseRegex != "" {
		matched, err := regexp.MatchString(exp.ResponseRegex, responseText)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("response didn't match regex pattern: %s", exp.ResponseRegex)
		}
	}
	return nil
}

// sameNames compares two name lists as sets, case-insensitively.
func sameNames(what string, want, got []string) error {
	expected := make(map[string]bool, len(want))
	for _, name := range want {
		expected[strings.ToLower(name)] = true
	}
	actual := make(map[string]bool, len(got))
	for _, name := range got {
		actual[strings.ToLower(name)] = true
	}

	for name := range expected {
		if !actual[name] {
			return fmt.Errorf("expected %s to contain '%s', but it's missing. Actual: %v", what, name, got)
		}
	}
	for name := range actual {
		if !expected[name] {
			return fmt.Errorf("%s contains unexpected '%s'. Expected: %v, Actual: %v", what, name, want, got)
		}
	}
	return nil
}
