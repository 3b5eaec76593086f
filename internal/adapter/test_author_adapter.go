package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/time/rate"

	m "snare.dev/pkg/snare/internal/model"
)

// AuthorMode selects what the test-authoring collaborator is asked to do.
type AuthorMode string

const (
	// AuthorGenerate asks for a fresh catching test for a mutant.
	AuthorGenerate AuthorMode = "generate"
	// AuthorRecover asks for a corrected test given a failing transcript.
	AuthorRecover AuthorMode = "recover"
)

// ErrNoAuthor is returned when no authoring command is configured.
var ErrNoAuthor = errors.New("no test author configured")

// AuthorRequest is sent to the authoring collaborator.
type AuthorRequest struct {
	Mode         AuthorMode  `json:"mode"`
	MutantID     string      `json:"mutant_id"`
	Description  string      `json:"description,omitempty"`
	TargetFile   string      `json:"target_file"`
	OriginalCode string      `json:"original_code"`
	MutatedCode  string      `json:"mutated_code"`
	FileContent  string      `json:"file_content"`
	FailingTest  string      `json:"failing_test,omitempty"`
	Transcript   string      `json:"transcript,omitempty"`
	Stage        m.TestStage `json:"stage,omitempty"`
}

// AuthorResponse is what the authoring collaborator answers with.
type AuthorResponse struct {
	Code     string `json:"code"`
	Compiled bool   `json:"compiled"`
}

// TestAuthorAdapter is the seam to the out-of-process test-authoring collaborator.
type TestAuthorAdapter interface {
	Author(ctx context.Context, req AuthorRequest) (m.GeneratedTest, error)
}

// CommandTestAuthorAdapter talks to an external command: the JSON request is
// written to its stdin and a JSON AuthorResponse is read from its stdout.
// Calls are rate limited since authoring commands usually front a paid API.
type CommandTestAuthorAdapter struct {
	command []string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewCommandTestAuthorAdapter constructs an adapter for command. perSecond <= 0
// disables rate limiting.
func NewCommandTestAuthorAdapter(command []string, timeout time.Duration, perSecond float64) *CommandTestAuthorAdapter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &CommandTestAuthorAdapter{
		command: command,
		timeout: timeout,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Author runs the authoring command for req.
func (a *CommandTestAuthorAdapter) Author(ctx context.Context, req AuthorRequest) (m.GeneratedTest, error) {
	if len(a.command) == 0 {
		return m.GeneratedTest{}, ErrNoAuthor
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return m.GeneratedTest{}, fmt.Errorf("author rate limit: %w", err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return m.GeneratedTest{}, fmt.Errorf("encode author request: %w", err)
	}

	// #nosec G204 - command comes from operator configuration
	cmd := exec.CommandContext(ctx, a.command[0], a.command[1:]...)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("Test author failed", "mode", req.Mode, "mutant", req.MutantID, "stderr", strings.TrimSpace(stderr.String()), "error", err)
		return m.GeneratedTest{}, fmt.Errorf("author command: %w", err)
	}

	var resp AuthorResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return m.GeneratedTest{}, fmt.Errorf("decode author response: %w", err)
	}

	if strings.TrimSpace(resp.Code) == "" {
		return m.GeneratedTest{}, fmt.Errorf("author returned empty test for mutant %s", req.MutantID)
	}

	return m.GeneratedTest{
		Code:               resp.Code,
		CompilationSuccess: resp.Compiled,
		Stage:              m.StageGenerated,
	}, nil
}
