package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "estimate",
		RunID:    "run-1",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"zeta": 1, "alpha": "x"},
	})

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "msg=service_use_case")
	assert.Contains(t, line, "use_case=estimate")
	assert.Contains(t, line, "run_id=run-1")
	assert.Contains(t, line, "duration_ms=3")
	assert.Less(t, strings.Index(line, "alpha=x"), strings.Index(line, "zeta=1"), "fields are sorted")
}

func TestLogUseCaseObserver_Failure(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "load_setup",
		Err:  errors.New("boom"),
	})

	line := buf.String()
	assert.Contains(t, line, "level=ERROR")
	assert.Contains(t, line, "success=false")
	assert.Contains(t, line, "error=boom")
	assert.NotContains(t, line, "run_id")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
