package chunk

import (
	"strings"
	"testing"
)

func TestSplitEmptyInput(t *testing.T) {
	if got := Split("", 100); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
}

func TestSplitWhitespaceOnly(t *testing.T) {
	if got := Split("   \n\n\t\n", 100); len(got) != 0 {
		t.Errorf("whitespace-only input produced %d chunks", len(got))
	}
}

func TestSplitSingleChunk(t *testing.T) {
	text := "line one\nline two\nline three"
	got := Split(text, 1000)
	if len(got) != 1 {
		t.Fatalf("chunks = %d, want 1", len(got))
	}
	if got[0] != text {
		t.Errorf("chunk = %q, want the whole input", got[0])
	}
}

func TestSplitPreservesLineSequence(t *testing.T) {
	var lines []string
	for i := 0; i < 200; i++ {
		lines = append(lines, strings.Repeat("x", 40))
	}
	text := strings.Join(lines, "\n")

	chunks := Split(text, 500)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if strings.Join(chunks, "\n") != text {
		t.Error("concatenated chunks do not reproduce the input line sequence")
	}
	for i, c := range chunks {
		if len(c) > 500 {
			t.Errorf("chunk %d length %d exceeds budget", i, len(c))
		}
	}
}

func TestSplitNeverBreaksLines(t *testing.T) {
	text := "short\n" + strings.Repeat("y", 300) + "\nshort again"
	chunks := Split(text, 100)

	for _, c := range chunks {
		for _, line := range strings.Split(c, "\n") {
			if line != "short" && line != "short again" && line != strings.Repeat("y", 300) {
				t.Fatalf("chunk contains a partial line: %q", line)
			}
		}
	}
}

func TestSplitOversizeLineKeptWhole(t *testing.T) {
	long := strings.Repeat("z", 500)
	chunks := Split(long, 100)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0] != long {
		t.Error("oversize line was split")
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := strings.Repeat("some document line\n", 5000)
	a := Split(text, DefaultBudget)
	b := Split(text, DefaultBudget)
	if len(a) != len(b) {
		t.Fatalf("chunk counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("chunk %d differs between runs", i)
		}
	}
}

func TestSplitThirtyKIntoThreeChunks(t *testing.T) {
	// 30000 chars of 100-char lines against the default 12000 budget.
	line := strings.Repeat("a", 99)
	text := strings.Join(repeatSlice(line, 300), "\n")

	chunks := Split(text, DefaultBudget)
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
}

func TestSplitZeroBudgetUsesDefault(t *testing.T) {
	text := strings.Repeat("line\n", 10)
	chunks := Split(text, 0)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1 under the default budget", len(chunks))
	}
}

func repeatSlice(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
