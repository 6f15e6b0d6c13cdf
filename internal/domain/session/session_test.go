package session_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/certquiz/backend/internal/domain/bank"
	"github.com/certquiz/backend/internal/domain/session"
)

func makeQuestions(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Text:    fmt.Sprintf("question %d", i),
			A:       fmt.Sprintf("alt a %d", i),
			B:       fmt.Sprintf("alt b %d", i),
			C:       fmt.Sprintf("alt c %d", i),
			D:       fmt.Sprintf("alt d %d", i),
			Correct: "c",
		}
	}
	return qs
}

// answerCurrent submits either the correct letter or a guaranteed wrong
// one for the question currently presented.
func answerCurrent(t *testing.T, e *session.Engine, qs []bank.Question, correctly bool) {
	t.Helper()

	view, err := e.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var current bank.Question
	for _, q := range qs {
		if q.Text == view.Prompt {
			current = q
			break
		}
	}

	letter := current.Correct
	if !correctly {
		for _, l := range bank.Letters {
			if l != current.Correct {
				letter = l
				break
			}
		}
	}

	verdict, err := e.SubmitAnswer(letter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Correct != correctly {
		t.Fatalf("expected correct=%v, got %v", correctly, verdict.Correct)
	}
}

func TestStart_EmptyQuestions(t *testing.T) {
	e := session.New()

	err := e.Start(nil)
	if !errors.Is(err, bank.ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}

	if e.State().Phase != session.PhaseIdle {
		t.Errorf("expected engine to stay idle, got %v", e.State().Phase)
	}
}

func TestStart_ShufflesQuestionOrder(t *testing.T) {
	qs := makeQuestions(20)

	first := session.New()
	if err := first.Start(qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstOrder := promptOrder(t, first, len(qs))

	// With 20 questions a repeat order across 10 runs is practically
	// impossible.
	foundDifferent := false
	for i := 0; i < 10; i++ {
		e := session.New()
		if err := e.Start(qs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameStrings(firstOrder, promptOrder(t, e, len(qs))) {
			foundDifferent = true
			break
		}
	}
	if !foundDifferent {
		t.Error("expected question order to vary across sessions")
	}
}

// promptOrder walks a fresh session to the end, recording prompt order.
func promptOrder(t *testing.T, e *session.Engine, n int) []string {
	t.Helper()
	order := make([]string, 0, n)
	for i := 0; i < n; i++ {
		view, err := e.Current()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		order = append(order, view.Prompt)
		if _, err := e.SubmitAnswer("a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := e.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return order
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSessionScoring(t *testing.T) {
	qs := makeQuestions(5)
	e := session.New()
	if err := e.Start(qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 correct, then 2 wrong.
	for i := 0; i < 5; i++ {
		answerCurrent(t, e, qs, i < 3)
		if _, err := e.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	state := e.State()
	if state.Phase != session.PhaseFinished {
		t.Fatalf("expected finished phase, got %v", state.Phase)
	}
	if state.CorrectCount != 3 || state.IncorrectCount != 2 {
		t.Errorf("expected tally 3/2, got %d/%d", state.CorrectCount, state.IncorrectCount)
	}

	mistakes := e.Mistakes()
	if len(mistakes) != 2 {
		t.Fatalf("expected 2 mistakes, got %d", len(mistakes))
	}
	for _, m := range mistakes {
		if m.Question == "" || m.UserAnswer == "" || m.CorrectAnswer == "" {
			t.Errorf("mistake record incomplete: %+v", m)
		}
		// The log carries alternative texts, never bare letters.
		if bank.ValidLetter(m.UserAnswer) || bank.ValidLetter(m.CorrectAnswer) {
			t.Errorf("mistake should record texts, got %+v", m)
		}
	}
}

func TestSubmitAnswer_NoneSelected(t *testing.T) {
	e := session.New()
	if err := e.Start(makeQuestions(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, _ := e.Current()

	verdict, err := e.SubmitAnswer("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Answered {
		t.Error("expected unanswered verdict for empty selection")
	}

	state := e.State()
	if state.Phase != session.PhasePresenting {
		t.Errorf("expected engine to keep presenting, got %v", state.Phase)
	}
	if state.CorrectCount != 0 || state.IncorrectCount != 0 {
		t.Errorf("expected untouched tally, got %d/%d", state.CorrectCount, state.IncorrectCount)
	}

	after, _ := e.Current()
	if before.Prompt != after.Prompt {
		t.Error("expected the same question to be re-presented")
	}
}

func TestSubmitAnswer_UnknownLetter(t *testing.T) {
	e := session.New()
	if err := e.Start(makeQuestions(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := e.SubmitAnswer("x"); !errors.Is(err, session.ErrUnknownAlternative) {
		t.Fatalf("expected ErrUnknownAlternative, got %v", err)
	}
}

func TestAdvance_RequiresJudgedAnswer(t *testing.T) {
	e := session.New()
	if err := e.Start(makeQuestions(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := e.Advance(); !errors.Is(err, session.ErrNoPendingAdvance) {
		t.Fatalf("expected ErrNoPendingAdvance, got %v", err)
	}
}

func TestFinished_IsTerminal(t *testing.T) {
	e := session.New()
	if err := e.Start(makeQuestions(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.SubmitAnswer("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	phase, err := e.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phase != session.PhaseFinished {
		t.Fatalf("expected finished phase, got %v", phase)
	}

	if _, err := e.SubmitAnswer("a"); !errors.Is(err, session.ErrNoActiveQuestion) {
		t.Errorf("expected ErrNoActiveQuestion after finish, got %v", err)
	}
	if _, err := e.Current(); !errors.Is(err, session.ErrNoActiveQuestion) {
		t.Errorf("expected ErrNoActiveQuestion after finish, got %v", err)
	}
	if _, err := e.Advance(); !errors.Is(err, session.ErrNoPendingAdvance) {
		t.Errorf("expected ErrNoPendingAdvance after finish, got %v", err)
	}
}

func TestStart_DiscardsInFlightRun(t *testing.T) {
	qs := makeQuestions(3)
	e := session.New()
	if err := e.Start(qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	answerCurrent(t, e, qs, false)

	if err := e.Start(qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := e.State()
	if state.Phase != session.PhasePresenting || state.CurrentIndex != 0 {
		t.Errorf("expected a fresh run, got %+v", state)
	}
	if state.CorrectCount != 0 || state.IncorrectCount != 0 {
		t.Errorf("expected reset tally, got %d/%d", state.CorrectCount, state.IncorrectCount)
	}
	if len(e.Mistakes()) != 0 {
		t.Errorf("expected empty mistake log, got %d entries", len(e.Mistakes()))
	}
}

func TestCurrent_AlternativesCarryAllLetters(t *testing.T) {
	e := session.New()
	if err := e.Start(makeQuestions(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := e.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Alternatives) != 4 {
		t.Fatalf("expected 4 alternatives, got %d", len(view.Alternatives))
	}

	seen := map[string]bool{}
	for _, alt := range view.Alternatives {
		seen[alt.Letter] = true
		if alt.Text == "" {
			t.Errorf("alternative %q has no text", alt.Letter)
		}
	}
	for _, letter := range bank.Letters {
		if !seen[letter] {
			t.Errorf("letter %q missing from display order", letter)
		}
	}
}

func TestShuffle_QuestionPositionsRoughlyUniform(t *testing.T) {
	const trials = 6000
	qs := makeQuestions(3)

	// counts[question][position]
	counts := make(map[string][]int)
	for _, q := range qs {
		counts[q.Text] = make([]int, len(qs))
	}

	for i := 0; i < trials; i++ {
		e := session.New()
		if err := e.Start(qs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for pos, prompt := range promptOrder(t, e, len(qs)) {
			counts[prompt][pos]++
		}
	}

	expected := trials / len(qs)
	low, high := expected/2, expected*3/2
	for text, positions := range counts {
		for pos, n := range positions {
			if n < low || n > high {
				t.Errorf("question %q landed on position %d %d times, expected around %d",
					text, pos, n, expected)
			}
		}
	}
}

func TestShuffle_FirstAlternativeRoughlyUniform(t *testing.T) {
	const trials = 4000
	qs := makeQuestions(1)

	firsts := map[string]int{}
	for i := 0; i < trials; i++ {
		e := session.New()
		if err := e.Start(qs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		view, err := e.Current()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		firsts[view.Alternatives[0].Letter]++
	}

	expected := trials / len(bank.Letters)
	low, high := expected/2, expected*3/2
	for _, letter := range bank.Letters {
		if n := firsts[letter]; n < low || n > high {
			t.Errorf("letter %q shown first %d times, expected around %d", letter, n, expected)
		}
	}
}
