package skills

import (
	"strings"
	"testing"
)

func TestMatcher_Extract_DeterministicOrder(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	text := "Built services in Go and Python, deployed on AWS with Docker and Kubernetes."

	first := m.Extract(text)
	second := m.Extract(text)

	if len(first) == 0 {
		t.Fatalf("expected skills, got none")
	}
	if len(first) != len(second) {
		t.Fatalf("non-idempotent length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-idempotent order at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestMatcher_Extract_CapAndUnique(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	text := strings.Join(DefaultVocabulary().TechSkills, " ") + " Python python PYTHON"

	got := m.Extract(text)
	if len(got) > DefaultMaxSkills {
		t.Fatalf("skill list exceeds max: %d", len(got))
	}

	seen := map[string]struct{}{}
	for _, s := range got {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			t.Fatalf("duplicate skill %q", s)
		}
		seen[key] = struct{}{}
	}
}

func TestMatcher_Extract_EmptyText(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	if got := m.Extract("   \n  "); len(got) != 0 {
		t.Fatalf("expected empty skill set, got %v", got)
	}
}

func TestMatcher_Extract_VocabularyOrderFirst(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	// "aws" precedes "docker" in the vocabulary even though the text
	// mentions Docker first.
	got := m.Extract("Docker and AWS experience")

	awsIdx, dockerIdx := -1, -1
	for i, s := range got {
		switch s {
		case "aws":
			awsIdx = i
		case "docker":
			dockerIdx = i
		}
	}
	if awsIdx == -1 || dockerIdx == -1 {
		t.Fatalf("expected both aws and docker, got %v", got)
	}
	if dockerIdx < awsIdx {
		t.Fatalf("expected vocabulary order (docker after aws), got %v", got)
	}
}

func TestMatcher_ExtractPatterns_KeepsCasing(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	got := m.ExtractPatterns("Requirements: Python, PostgreSQL, React Native")

	want := map[string]bool{"Python": false, "PostgreSQL": false, "React Native": false}
	for _, s := range got {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for k, ok := range want {
		if !ok {
			t.Fatalf("missing %q in %v", k, got)
		}
	}
}

func TestMatcher_KeyPhrasesAndValues(t *testing.T) {
	m := NewMatcher(DefaultVocabulary())
	text := "We value collaboration and remote work; strong problem solving required."

	phrases := m.KeyPhrases(text)
	if len(phrases) == 0 || phrases[0] != "problem solving" {
		t.Fatalf("unexpected phrases %v", phrases)
	}

	values := m.CompanyValues(text)
	foundRemote := false
	for _, v := range values {
		if v == "remote" {
			foundRemote = true
		}
	}
	if !foundRemote {
		t.Fatalf("expected remote in values %v", values)
	}
}
