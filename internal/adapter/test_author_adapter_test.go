//go:build !windows

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "snare.dev/pkg/snare/internal/model"
)

func TestCommandTestAuthorAdapter_Author(t *testing.T) {
	reqPath := filepath.Join(t.TempDir(), "request.json")
	script := fmt.Sprintf(`cat > %q; printf '{"code":"package catchtest\\n","compiled":true}'`, reqPath)

	adapter := NewCommandTestAuthorAdapter(shell(script), 10*time.Second, 0)

	test, err := adapter.Author(context.Background(), AuthorRequest{
		Mode:         AuthorRecover,
		MutantID:     "m1",
		TargetFile:   "calc.go",
		OriginalCode: "a + b",
		MutatedCode:  "a - b",
		Transcript:   "undefined: calc.sub",
	})
	require.NoError(t, err)

	assert.Equal(t, "package catchtest\n", test.Code)
	assert.True(t, test.CompilationSuccess)
	assert.Equal(t, m.StageGenerated, test.Stage)

	data, err := os.ReadFile(reqPath)
	require.NoError(t, err)

	var sent AuthorRequest
	require.NoError(t, json.Unmarshal(data, &sent))
	assert.Equal(t, AuthorRecover, sent.Mode)
	assert.Equal(t, "undefined: calc.sub", sent.Transcript)
}

func TestCommandTestAuthorAdapter_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewCommandTestAuthorAdapter(nil, 0, 0).Author(ctx, AuthorRequest{MutantID: "m1"})
	require.ErrorIs(t, err, ErrNoAuthor)

	_, err = NewCommandTestAuthorAdapter(shell("exit 2"), 0, 0).Author(ctx, AuthorRequest{MutantID: "m1"})
	require.Error(t, err)

	_, err = NewCommandTestAuthorAdapter(shell(`cat > /dev/null; echo '{"code":"  "}'`), 0, 0).Author(ctx, AuthorRequest{MutantID: "m1"})
	require.Error(t, err)

	_, err = NewCommandTestAuthorAdapter(shell(`cat > /dev/null; echo not-json`), 0, 0).Author(ctx, AuthorRequest{MutantID: "m1"})
	require.Error(t, err)
}
