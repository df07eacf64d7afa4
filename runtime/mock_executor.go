package runtime

import (
	"context"
	"fmt"
	"path/filepath"
)

// Call records a single invocation made through a MockExecutor.
type Call struct {
	Name string
	Args []string
	Opts RunOptions
}

// MockExecutor is a scriptable Executor for tests. Results and errors
// are keyed by the command's base name, so scripted behavior holds
// whether the caller passes a bare name or a resolved path.
type MockExecutor struct {
	Calls            []Call
	InteractiveCalls []Call

	// Results maps base name -> scripted result for Run.
	Results map[string]Result
	// Errors maps base name -> scripted error for Run.
	Errors map[string]error
	// ExitCodes maps base name -> scripted exit code for Interactive.
	ExitCodes map[string]int
	// Running maps process name -> scripted ProcessRunning answer.
	Running map[string]bool
}

// NewMockExecutor creates an empty mock; every command succeeds with a
// zero Result until scripted otherwise.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Results:   make(map[string]Result),
		Errors:    make(map[string]error),
		ExitCodes: make(map[string]int),
		Running:   make(map[string]bool),
	}
}

func (m *MockExecutor) Run(ctx context.Context, name string, args []string, opts RunOptions) (Result, error) {
	m.Calls = append(m.Calls, Call{Name: name, Args: args, Opts: opts})
	key := filepath.Base(name)
	if err, ok := m.Errors[key]; ok {
		return m.Results[key], err
	}
	return m.Results[key], nil
}

func (m *MockExecutor) Interactive(ctx context.Context, name string, args []string) (int, error) {
	m.InteractiveCalls = append(m.InteractiveCalls, Call{Name: name, Args: args})
	key := filepath.Base(name)
	if err, ok := m.Errors[key]; ok {
		return -1, err
	}
	return m.ExitCodes[key], nil
}

func (m *MockExecutor) ProcessRunning(ctx context.Context, name string) (bool, error) {
	return m.Running[name], nil
}

// CallsTo returns the recorded Run calls whose base name matches.
func (m *MockExecutor) CallsTo(name string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if filepath.Base(c.Name) == name {
			out = append(out, c)
		}
	}
	return out
}

// ScriptFailure makes the named command fail with the given exit code.
func (m *MockExecutor) ScriptFailure(name string, code int, stderr string) {
	m.Results[name] = Result{Stderr: stderr, ExitCode: code}
	m.Errors[name] = &ExitError{Cmd: name, ExitCode: code, Stderr: stderr}
}

var _ Executor = (*MockExecutor)(nil)

// String helps test failure output.
func (c Call) String() string {
	return fmt.Sprintf("%s %v", c.Name, c.Args)
}
