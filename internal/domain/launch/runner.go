// Package launch runs a cataloged tool's main script as a child process.
package launch

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
	"github.com/team-brain/toolregistry/internal/domain/discovery"
)

// Catalog is the slice of the registry the runner needs: name resolution and
// usage tracking.
type Catalog interface {
	Get(name string) (*catalog.Tool, bool)
	TrackUsage(toolName, action, agent string, success bool, notes string) error
}

// Result is the outcome of one launch attempt. Stdout and Stderr are filled
// only in capture mode; in inherit mode the child writes straight to the
// parent's streams.
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// Runner launches tool scripts through the Python interpreter.
type Runner struct {
	catalog     Catalog
	interpreter string
	agent       string
	logger      *zap.Logger
}

// NewRunner creates a Runner. An empty interpreter resolves python3 from
// PATH, falling back to python. agent labels the usage events this runner
// records.
func NewRunner(cat Catalog, interpreter, agent string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interpreter == "" {
		interpreter = resolveInterpreter()
	}
	return &Runner{
		catalog:     cat,
		interpreter: interpreter,
		agent:       agent,
		logger:      logger.Named("launch"),
	}
}

func resolveInterpreter() string {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	// Let exec surface the miss at run time.
	return "python3"
}

// Run launches the named tool with the given arguments, working directory set
// to the tool's root. capture selects captured stdout/stderr over inherited
// I/O. An unknown tool name yields exit code 1 and a "not found" message
// rather than an error.
func (r *Runner) Run(name string, args []string, capture bool) Result {
	tool, ok := r.catalog.Get(name)
	if !ok {
		return Result{Code: 1, Stderr: fmt.Sprintf("Tool not found: %s", name)}
	}

	script, ok := discovery.FindScript(tool.Path)
	if !ok {
		return Result{Code: 1, Stderr: fmt.Sprintf("No script found for tool: %s", name)}
	}

	cmdArgs := append([]string{script}, args...)
	cmd := exec.Command(r.interpreter, cmdArgs...)
	cmd.Dir = tool.Path

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
	}

	r.logger.Debug("launching tool",
		zap.String("tool", tool.Name),
		zap.String("script", script),
		zap.Strings("args", args))

	err := cmd.Run()
	code := 0
	notes := ""
	if err != nil {
		code = 1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else {
			notes = err.Error()
		}
	}

	if trackErr := r.catalog.TrackUsage(tool.Name, "launch", r.agent, code == 0, notes); trackErr != nil {
		r.logger.Warn("usage tracking failed", zap.Error(trackErr))
	}

	result := Result{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}
	if notes != "" && result.Stderr == "" {
		result.Stderr = notes
	}
	return result
}
