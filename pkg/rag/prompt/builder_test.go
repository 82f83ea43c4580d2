package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"robotics-rag-be/pkg/vectorstore"

	"github.com/google/uuid"
)

func TestBuildContext(t *testing.T) {
	tests := []struct {
		name string
		hits []vectorstore.Hit
		want string
	}{
		{
			name: "single hit",
			hits: []vectorstore.Hit{
				{
					Id: uuid.New(),
					Payload: vectorstore.Payload{
						Title:   "ROS 2 Nodes",
						Section: "Chapter 1",
						Content: "Nodes are the basic unit of computation.",
					},
				},
			},
			want: "Section: Chapter 1\nTitle: ROS 2 Nodes\nContent: Nodes are the basic unit of computation....",
		},
		{
			name: "multiple hits joined by blank line",
			hits: []vectorstore.Hit{
				{Payload: vectorstore.Payload{Title: "A", Section: "S1", Content: "one"}},
				{Payload: vectorstore.Payload{Title: "B", Section: "S2", Content: "two"}},
			},
			want: "Section: S1\nTitle: A\nContent: one...\n\nSection: S2\nTitle: B\nContent: two...",
		},
		{
			name: "no hits",
			hits: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGroundedBuilder("q", tt.hits).BuildContext()
			if got != tt.want {
				t.Errorf("BuildContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildContextTruncatesLongContent(t *testing.T) {
	longContent := strings.Repeat("x", 800)
	hits := []vectorstore.Hit{
		{Payload: vectorstore.Payload{Title: "T", Section: "S", Content: longContent}},
	}

	got := NewGroundedBuilder("q", hits).BuildContext()

	wantContent := "Content: " + strings.Repeat("x", 500) + "..."
	if !strings.HasSuffix(got, wantContent) {
		t.Errorf("context should carry exactly 500 characters of content, got length %d", len(got))
	}
}

func TestBuildContextTruncatesOnRuneBoundary(t *testing.T) {
	// 499 single-byte chars followed by multi-byte runes. A byte-based cut at
	// 500 would land inside the first é.
	content := strings.Repeat("a", 499) + strings.Repeat("é", 10)
	hits := []vectorstore.Hit{
		{Payload: vectorstore.Payload{Title: "T", Section: "S", Content: content}},
	}

	got := NewGroundedBuilder("q", hits).BuildContext()

	if !utf8.ValidString(got) {
		t.Fatalf("context contains invalid UTF-8 after truncation")
	}
	wantContent := "Content: " + strings.Repeat("a", 499) + "é..."
	if !strings.HasSuffix(got, wantContent) {
		t.Errorf("context should carry 500 characters ending in a whole rune, got %q", got[len(got)-20:])
	}
}

func TestBuildEmbedsQuestionAndInstruction(t *testing.T) {
	hits := []vectorstore.Hit{
		{Payload: vectorstore.Payload{Title: "T", Section: "S", Content: "body"}},
	}

	got := NewGroundedBuilder("what is a digital twin?", hits).Build()

	if !strings.Contains(got, "Question: what is a digital twin?") {
		t.Errorf("prompt is missing the question, got %q", got)
	}
	if !strings.Contains(got, "doesn't contain enough information") {
		t.Errorf("prompt is missing the insufficiency instruction")
	}
	if !strings.Contains(got, "Section: S\nTitle: T\nContent: body...") {
		t.Errorf("prompt is missing the context block")
	}
	if !strings.HasSuffix(got, "Answer:") {
		t.Errorf("prompt should end with the answer cue")
	}
}
