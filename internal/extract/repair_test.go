package extract

import (
	"encoding/json"
	"testing"
)

func TestRepairJSONValidInputUnchanged(t *testing.T) {
	in := `{"questions":[{"text":"q","type":"single","options":["a","b"],"correctIndices":[0],"explanation":"e"}]}`
	if got := RepairJSON(in); got != in {
		t.Errorf("valid input modified:\n got %q\nwant %q", got, in)
	}
}

func TestRepairJSONStripsFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain fence", "```\n{\"questions\":[]}\n```"},
		{"json tag", "```json\n{\"questions\":[]}\n```"},
		{"leading prose stripped by fence", "```json\n{\"questions\":[]}\n```\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RepairJSON(tc.in)
			if !json.Valid([]byte(got)) {
				t.Fatalf("output not valid JSON: %q", got)
			}
			var out chunkOutput
			if err := json.Unmarshal([]byte(got), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
		})
	}
}

func TestRepairJSONTruncatedArray(t *testing.T) {
	// Response cut off mid-way through the second element.
	in := `{"questions":[{"text":"first","type":"single","options":["a","b"],"correctIndices":[0],"explanation":"e"},{"text":"par`
	got := RepairJSON(in)
	if !json.Valid([]byte(got)) {
		t.Fatalf("repaired output still invalid: %q", got)
	}
	var out chunkOutput
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("unmarshal repaired: %v", err)
	}
	if len(out.Questions) != 1 {
		t.Fatalf("questions = %d, want 1 (the complete element)", len(out.Questions))
	}
	if out.Questions[0].Text != "first" {
		t.Errorf("kept question text = %q, want %q", out.Questions[0].Text, "first")
	}
}

func TestRepairJSONNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not json at all",
		"```",
		"```json",
		"{",
		"[",
		`{"questions":`,
		`{"questions":[`,
		"```json\n{\"questions\":[{\"text\":\"x\"",
	}
	for _, in := range inputs {
		// Any string result is acceptable; the contract is no panic.
		_ = RepairJSON(in)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {}  ", "{}"},
	}
	for _, tc := range cases {
		if got := StripFences(tc.in); got != tc.want {
			t.Errorf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
