package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/pushdown/pkg/domain"
)

func TestTextHandler_OutputRejectedWithReason(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerReason(true))

	res := domain.Result{Err: fmt.Errorf("%w: leftover", domain.ErrNotAccepted)}
	if err := handler.Output(context.Background(), "sandwich", res); err != nil {
		t.Fatalf("Output failed: %v", err)
	}

	expected := "rejected\n  input not accepted: leftover\n"
	if outBuf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, outBuf.String())
	}
}

func TestTextHandler_VerdictStyle(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerVerdict(func(accepted bool) string {
		return "<" + PlainVerdict(accepted) + ">"
	}))

	if err := handler.Output(context.Background(), "", domain.Result{Accepted: true}); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if outBuf.String() != "<accepted>\n" {
		t.Errorf("Unexpected output %q", outBuf.String())
	}
}

func TestTextHandler_InputRefusesControlChars(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("bo\x07wl rice\n  bowl rice  \n"), outBuf, WithTextHandlerPrompt(""))

	val, err := handler.Input(context.Background())
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if val != "bowl rice" {
		t.Errorf("Expected 'bowl rice', got %q", val)
	}
	if !strings.Contains(outBuf.String(), "control character") {
		t.Errorf("Expected control character message, got %q", outBuf.String())
	}
}

func TestTextHandler_InputRetriesOversizedLine(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("bowl rice chicken\nbowl\n"), outBuf)

	val, err := handler.Input(context.Background())
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if val != "bowl" {
		t.Errorf("Expected 'bowl', got %q", val)
	}
	if !strings.Contains(outBuf.String(), "Please try again") {
		t.Errorf("Expected retry message, got %q", outBuf.String())
	}
}

func TestTextHandler_PumpStopsWhenContextIsDone(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	handler := NewTextHandler(pr, io.Discard, WithTextHandlerPrompt(""))

	ctx, cancel := context.WithCancel(context.Background())
	go pw.Write([]byte("bowl\n"))
	val, err := handler.Input(ctx)
	if err != nil || val != "bowl" {
		t.Fatalf("Expected 'bowl', got %q (%v)", val, err)
	}

	cancel()
	if _, err := handler.Input(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	// The pump reads this line after cancellation and must exit instead of blocking on it.
	written := make(chan struct{})
	go func() {
		pw.Write([]byte("rice\n"))
		close(written)
	}()
	<-written

	select {
	case _, ok := <-handler.inputChan:
		if ok {
			t.Error("Expected the input channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("pump goroutine did not exit")
	}
}
