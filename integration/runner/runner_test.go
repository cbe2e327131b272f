package runner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorld = `{
  "playerStart": "Hall",
  "items": [{"name": "key", "description": "A key."}],
  "rooms": [
    {"name": "Hall", "description": "A hall.", "exits": {"north": "Vault"}, "items": ["key"]},
    {"name": "Vault", "description": "A vault.", "exits": {"south": "Hall"}}
  ]
}`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(testWorld), 0o644))
	r := NewRunner(dir)
	r.Logger = t.Logf
	return r
}

func ptr[T any](v T) *T { return &v }

func TestRunSuite_Passes(t *testing.T) {
	r := newTestRunner(t)
	suite := TestSuite{
		Name:  "take and move",
		World: "tiny.json",
		Steps: []TestStep{
			{Name: "take", Input: "take key", Expectations: Expectations{
				OK:        ptr(true),
				Inventory: []string{"key"},
				RoomItems: map[string][]string{"Hall": {}},
			}},
			{Name: "move", Input: "go north", Expectations: Expectations{
				Location:         ptr("Vault"),
				ResponseContains: []string{"you move north"},
			}},
			{Name: "quit", Input: "quit", Expectations: Expectations{
				Quit:           ptr(true),
				ResponseEquals: ptr("Goodbye."),
			}},
		},
	}

	result, err := r.RunSuite(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	for _, step := range result.Results {
		assert.True(t, step.Success, step.StepName)
	}
}

func TestRunSuite_ResetKeepsSaves(t *testing.T) {
	r := newTestRunner(t)
	suite := TestSuite{
		Name:  "reset",
		World: "tiny.json",
		Steps: []TestStep{
			{Input: "go north"},
			{Input: "save"},
			{Input: ResetGamePrompt, Expectations: Expectations{Location: ptr("Hall")}},
			{Input: "load", Expectations: Expectations{Location: ptr("Vault")}},
		},
	}

	result, err := r.RunSuite(context.Background(), suite)
	require.NoError(t, err)
	assert.True(t, result.Results[2].IsReset)
}

func TestRunSuite_Seed(t *testing.T) {
	r := newTestRunner(t)
	suite := TestSuite{
		Name:  "seeded",
		World: "tiny.json",
		Steps: []TestStep{{Input: "inventory", Expectations: Expectations{ResponseEquals: ptr("You are carrying: key")}}},
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"playerLocation": "Vault",
		"playerInventory": ["key"],
		"roomItemStates": {"Hall": [], "Vault": []}
	}`), &suite.Seed))

	_, err := r.RunSuite(context.Background(), suite)
	assert.NoError(t, err)
}

func TestRunSuite_BadSeed(t *testing.T) {
	r := newTestRunner(t)
	suite := TestSuite{Name: "bad seed", World: "tiny.json"}
	require.NoError(t, json.Unmarshal([]byte(`{"playerLocation": "Attic", "playerInventory": [], "roomItemStates": {}}`), &suite.Seed))

	_, err := r.RunSuite(context.Background(), suite)
	assert.ErrorContains(t, err, "seed does not match world")
}

func TestRunSuite_ErrorModes(t *testing.T) {
	suite := TestSuite{
		Name:  "failing",
		World: "tiny.json",
		Steps: []TestStep{
			{Name: "wrong", Input: "go south", Expectations: Expectations{OK: ptr(true)}},
			{Name: "fine", Input: "look"},
		},
	}

	r := newTestRunner(t)
	result, err := r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.Len(t, result.Results, 2)

	r.ErrorHandlingMode = ErrorHandlingExit
	result, err = r.RunSuite(context.Background(), suite)
	require.Error(t, err)
	assert.Len(t, result.Results, 1)
}

func TestRunSuite_WorldOverride(t *testing.T) {
	r := newTestRunner(t)
	r.WorldOverride = "tiny.json"

	_, err := r.RunSuite(context.Background(), TestSuite{Name: "no world"})
	assert.NoError(t, err)

	r.WorldOverride = "missing.json"
	_, err = r.RunSuite(context.Background(), TestSuite{Name: "missing"})
	assert.Error(t, err)
}

func TestCheckResponse(t *testing.T) {
	assert.NoError(t, checkResponse(Expectations{ResponseRegex: `^You take the \w+\.$`}, "You take the key."))
	assert.Error(t, checkResponse(Expectations{ResponseNotContains: []string{"KEY"}}, "You take the key."))
	assert.Error(t, checkResponse(Expectations{ResponseRegex: `(`}, "anything"))
}

func TestSameNames(t *testing.T) {
	assert.NoError(t, sameNames("inventory", []string{"Key", "lamp"}, []string{"lamp", "key"}))
	assert.Error(t, sameNames("inventory", []string{"key"}, []string{}))
	assert.Error(t, sameNames("inventory", []string{}, []string{"key"}))
}

func TestLoadTestSuiteWithExpansion(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("a.json", `{"name": "a", "world": "tiny.json", "steps": [{"input": "look"}]}`)
	write("b.json", `{"name": "b", "world": "tiny.json"}`)
	write("inner.json", `{"name": "inner", "cases": ["b.json"]}`)
	write("all.json", `{"name": "all", "cases": ["a.json", "inner.json"]}`)

	jobs, err := LoadTestSuiteWithExpansion(filepath.Join(dir, "all.json"), dir)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].Name)
	assert.Equal(t, "b", jobs[1].Name)

	write("broken.json", `{"name": "broken", "cases": ["nope.json"]}`)
	_, err = LoadTestSuiteWithExpansion(filepath.Join(dir, "broken.json"), dir)
	assert.Error(t, err)
}
