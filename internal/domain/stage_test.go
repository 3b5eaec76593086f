package domain_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"snare.dev/pkg/snare/internal/domain"
)

func TestRunStage_ParallelMatchesSequential(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	work := func(_ context.Context, n int) int {
		time.Sleep(time.Duration(25-n) * time.Millisecond / 5)
		return n * n
	}

	sequential := domain.RunStage(context.Background(), items, work, 1)
	parallel := domain.RunStage(context.Background(), items, work, 6)

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, 576, parallel[24])
}

func TestRunStage_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	items := make([]struct{}, 30)

	domain.RunStage(context.Background(), items, func(_ context.Context, _ struct{}) bool {
		current := inFlight.Add(1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}

		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)

		return true
	}, 3)

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestRunStage_Empty(t *testing.T) {
	results := domain.RunStage(context.Background(), []string{}, func(_ context.Context, s string) int {
		return len(s)
	}, 4)

	assert.Empty(t, results)
}
