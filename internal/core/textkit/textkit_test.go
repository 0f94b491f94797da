package textkit

import (
	"reflect"
	"testing"
)

func TestExtractTopics_Basics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "empty text",
			text: "",
			max:  5,
			want: nil,
		},
		{
			name: "all stop words",
			text: "the and or but in on at to for with",
			max:  5,
			want: nil,
		},
		{
			name: "short tokens dropped",
			text: "cat dog sun run the fox",
			max:  5,
			want: nil, // every token is 3 runes or fewer
		},
		{
			name: "frequency ranking",
			text: "coffee coffee coffee morning morning walk walking",
			max:  5,
			want: []string{"coffee", "morning", "walk", "walking"},
		},
		{
			name: "tie broken by first occurrence",
			text: "garden kitchen garden kitchen",
			max:  5,
			want: []string{"garden", "kitchen"},
		},
		{
			name: "max caps the list",
			text: "alpha alpha beta beta gamma delta",
			max:  2,
			want: []string{"alpha", "beta"},
		},
		{
			name: "case folded and punctuation split",
			text: "Coffee, COFFEE! coffee?",
			max:  5,
			want: []string{"coffee"},
		},
		{
			name: "zero max",
			text: "whatever words here",
			max:  0,
			want: nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractTopics(tc.text, tc.max)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractTopics(%q, %d) = %v want %v", tc.text, tc.max, got, tc.want)
			}
		})
	}
}

func TestExtractTopics_Idempotent(t *testing.T) {
	t.Parallel()

	text := "long walks through autumn parks thinking about projects and projects again"
	first := ExtractTopics(text, 5)
	for i := 0; i < 10; i++ {
		if got := ExtractTopics(text, 5); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v vs %v", i, got, first)
		}
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced   out\twords\nhere ", 4},
	}
	for _, tc := range cases {
		if got := WordCount(tc.text); got != tc.want {
			t.Fatalf("WordCount(%q) = %d want %d", tc.text, got, tc.want)
		}
	}
}

func TestTokenize_KeepsUnderscoresInsideTokens(t *testing.T) {
	t.Parallel()

	got := Tokenize("Checked the work_log, then work_log again")
	want := []string{"checked", "the", "work_log", "then", "work_log", "again"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v want %v", got, want)
	}

	topics := ExtractTopics("work_log work_log meeting", 5)
	if len(topics) == 0 || topics[0] != "work_log" {
		t.Fatalf("ExtractTopics = %v, want work_log ranked first as one topic", topics)
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	if !IsStopWord("The") {
		t.Fatal("expected folded stop word match")
	}
	if IsStopWord("coffee") {
		t.Fatal("coffee is not a stop word")
	}
}
