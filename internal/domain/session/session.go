package session

import (
	"errors"
	"math/rand"

	"github.com/certquiz/backend/internal/domain/bank"
)

// Phase is the state of a quiz run.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePresenting Phase = "presenting"
	PhaseFeedback   Phase = "feedback"
	PhaseFinished   Phase = "finished"
)

var (
	ErrNoActiveQuestion   = errors.New("no question is being presented")
	ErrNoPendingAdvance   = errors.New("no judged answer to advance from")
	ErrUnknownAlternative = errors.New(`answer must be "a", "b", "c" or "d"`)
)

// Alternative is one answer choice as shown to the user. Letter is the
// original key used for answering; the slice order is the display order.
type Alternative struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionView is the current question as it should be rendered.
type QuestionView struct {
	Position     int           `json:"position"` // 1-based
	Total        int           `json:"total"`
	Prompt       string        `json:"prompt"`
	Alternatives []Alternative `json:"alternatives"`
}

// State is the running tally exposed after every transition.
type State struct {
	Phase          Phase `json:"phase"`
	CurrentIndex   int   `json:"currentIndex"`
	Total          int   `json:"total"`
	CorrectCount   int   `json:"correctCount"`
	IncorrectCount int   `json:"incorrectCount"`
}

// Mistake records a wrong answer for the final summary. It carries the
// alternative texts, not the letters, since display order is shuffled.
type Mistake struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Verdict is the outcome of an answer submission. Answered is false when
// nothing was selected; the engine then stays on the same question.
type Verdict struct {
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
}

// Engine drives one quiz run over a private, shuffled copy of a resolved
// question list. It keeps no reference to the bank, so store mutations
// never alter an in-flight order. All side effects are in-memory; the
// caller reads engine state after each transition and does the rendering
// and the feedback-display delay itself.
type Engine struct {
	phase     Phase
	questions []bank.Question
	display   []Alternative
	index     int
	correct   int
	incorrect int
	mistakes  []Mistake
}

// New returns an idle engine. A run begins with Start.
func New() *Engine {
	return &Engine{phase: PhaseIdle}
}

// Start begins a run over a copy of questions shuffled with a uniform
// permutation. Calling Start on a live engine discards the in-flight run.
func (e *Engine) Start(questions []bank.Question) error {
	if len(questions) == 0 {
		return bank.ErrEmptyGroup
	}

	shuffled := make([]bank.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	e.questions = shuffled
	e.index = 0
	e.correct = 0
	e.incorrect = 0
	e.mistakes = nil
	e.phase = PhasePresenting
	e.shuffleAlternatives()
	return nil
}

// shuffleAlternatives draws a fresh display order for the current
// question, independent of the question order.
func (e *Engine) shuffleAlternatives() {
	q := e.questions[e.index]
	alts := make([]Alternative, 0, len(bank.Letters))
	for _, letter := range bank.Letters {
		alts = append(alts, Alternative{Letter: letter, Text: q.AlternativeText(letter)})
	}
	rand.Shuffle(len(alts), func(i, j int) {
		alts[i], alts[j] = alts[j], alts[i]
	})
	e.display = alts
}

// Current returns the question being presented or judged.
func (e *Engine) Current() (QuestionView, error) {
	if e.phase != PhasePresenting && e.phase != PhaseFeedback {
		return QuestionView{}, ErrNoActiveQuestion
	}
	alts := make([]Alternative, len(e.display))
	copy(alts, e.display)
	return QuestionView{
		Position:     e.index + 1,
		Total:        len(e.questions),
		Prompt:       e.questions[e.index].Text,
		Alternatives: alts,
	}, nil
}

// SubmitAnswer judges the selected letter against the current question.
// An empty letter is not an error: the verdict comes back unanswered and
// the engine keeps presenting the same question so the caller can
// re-prompt. A judged answer moves the engine to PhaseFeedback.
func (e *Engine) SubmitAnswer(letter string) (Verdict, error) {
	if e.phase != PhasePresenting {
		return Verdict{}, ErrNoActiveQuestion
	}
	if letter == "" {
		return Verdict{Answered: false}, nil
	}
	if !bank.ValidLetter(letter) {
		return Verdict{}, ErrUnknownAlternative
	}

	q := e.questions[e.index]
	verdict := Verdict{
		Answered:      true,
		Correct:       letter == q.Correct,
		CorrectAnswer: q.CorrectText(),
	}

	if verdict.Correct {
		e.correct++
	} else {
		e.incorrect++
		e.mistakes = append(e.mistakes, Mistake{
			Question:      q.Text,
			UserAnswer:    q.AlternativeText(letter),
			CorrectAnswer: q.CorrectText(),
		})
	}

	e.phase = PhaseFeedback
	return verdict, nil
}

// Advance moves past a judged answer, after the caller has displayed the
// feedback for its fixed delay. It returns the new phase: PhasePresenting
// with a freshly shuffled alternative order when questions remain,
// PhaseFinished otherwise.
func (e *Engine) Advance() (Phase, error) {
	if e.phase != PhaseFeedback {
		return e.phase, ErrNoPendingAdvance
	}

	e.index++
	if e.index < len(e.questions) {
		e.phase = PhasePresenting
		e.shuffleAlternatives()
	} else {
		e.phase = PhaseFinished
		e.display = nil
	}
	return e.phase, nil
}

// State returns the current phase and tally.
func (e *Engine) State() State {
	return State{
		Phase:          e.phase,
		CurrentIndex:   e.index,
		Total:          len(e.questions),
		CorrectCount:   e.correct,
		IncorrectCount: e.incorrect,
	}
}

// Mistakes returns a copy of the mistake log in the order the wrong
// answers were given.
func (e *Engine) Mistakes() []Mistake {
	out := make([]Mistake, len(e.mistakes))
	copy(out, e.mistakes)
	return out
}
