package match

import (
	"reflect"
	"testing"
)

func mustMatcher(t *testing.T, vocab []string) *SkillMatcher {
	t.Helper()
	m, err := NewSkillMatcher(vocab)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestMatch_WholeWordBoundary(t *testing.T) {
	m := mustMatcher(t, []string{"Java"})

	if got := m.Match("I know JavaScript"); len(got) != 0 {
		t.Errorf("expected no match inside JavaScript, got %v", got)
	}
	if got := m.Match("I know Java"); !reflect.DeepEqual(got, []string{"Java"}) {
		t.Errorf("expected [Java], got %v", got)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	m := mustMatcher(t, []string{"Python"})

	if got := m.Match("experienced PYTHON developer"); !reflect.DeepEqual(got, []string{"Python"}) {
		t.Errorf("expected [Python], got %v", got)
	}
}

func TestMatch_SpecialCharactersLiteral(t *testing.T) {
	m := mustMatcher(t, []string{"C++", "C#", "Node.js"})

	got := m.Match("5 years of C++ experience and some Node.js")
	want := []string{"C++", "Node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// "C++" must not match a bare "C".
	if got := m.Match("just C here"); len(got) != 0 {
		t.Errorf("expected no match for bare C, got %v", got)
	}
	// "Node.js" must not treat the dot as a wildcard.
	if got := m.Match("nodexjs fan"); len(got) != 0 {
		t.Errorf("expected no match for nodexjs, got %v", got)
	}
}

func TestMatch_PreservesVocabularyOrder(t *testing.T) {
	m := mustMatcher(t, []string{"Python", "AWS", "Go"})

	got := m.Match("Go and AWS before Python in this sentence? No: AWS, Go, Python.")
	want := []string{"Python", "AWS", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected vocabulary order %v, got %v", want, got)
	}
}

func TestMatch_EachTermAtMostOnce(t *testing.T) {
	m := mustMatcher(t, []string{"Go"})

	got := m.Match("Go Go Go")
	if !reflect.DeepEqual(got, []string{"Go"}) {
		t.Errorf("expected single [Go], got %v", got)
	}
}

func TestMatch_NoMatches(t *testing.T) {
	m := mustMatcher(t, []string{"Rust", "Kotlin"})

	if got := m.Match("plain prose without tech terms"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMatch_EndToEndScenario(t *testing.T) {
	m := mustMatcher(t, []string{"Python", "AWS"})

	got := m.Match("Experienced Python developer with AWS certification")
	want := []string{"Python", "AWS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
