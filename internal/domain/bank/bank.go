package bank

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// DefaultGroup is the reserved identifier for a certification's ungrouped
// question list. User-defined group keys are normalized to uppercase, so
// they can never collide with it.
const DefaultGroup = "default"

// Letters are the four alternative keys of a multiple-choice question.
var Letters = []string{"a", "b", "c", "d"}

var (
	ErrDuplicateGroup = errors.New("group already exists")
	ErrGroupNotFound  = errors.New("group not found")
	ErrEmptyGroup     = errors.New("group has no questions")
	ErrEmptyGroupName = errors.New("group name is empty")
)

// Question is a single multiple-choice question. The JSON field names are
// the storage and interchange contract and must not change.
type Question struct {
	Text    string `json:"question"`
	A       string `json:"a"`
	B       string `json:"b"`
	C       string `json:"c"`
	D       string `json:"d"`
	Correct string `json:"correct"`
}

// Validate reports whether the question is well-formed: all five texts
// present and the correct marker pointing at one of the four alternatives.
func (q Question) Validate() error {
	if q.Text == "" || q.A == "" || q.B == "" || q.C == "" || q.D == "" || q.Correct == "" {
		return errors.New("each question needs question, a, b, c, d and correct")
	}
	if !ValidLetter(q.Correct) {
		return errors.New(`correct must be "a", "b", "c" or "d"`)
	}
	return nil
}

// AlternativeText returns the text of the alternative behind a letter, or
// the empty string for an unknown letter.
func (q Question) AlternativeText(letter string) string {
	switch letter {
	case "a":
		return q.A
	case "b":
		return q.B
	case "c":
		return q.C
	case "d":
		return q.D
	}
	return ""
}

// CorrectText returns the text of the correct alternative.
func (q Question) CorrectText() string {
	return q.AlternativeText(q.Correct)
}

// ValidLetter reports whether letter names one of the four alternatives.
func ValidLetter(letter string) bool {
	switch letter {
	case "a", "b", "c", "d":
		return true
	}
	return false
}

// Bank is the full question collection for one certification: the default
// list plus the named groups. One Bank is persisted per certification id.
type Bank struct {
	DefaultQuestions []Question            `json:"defaultQuestions"`
	Groups           map[string][]Question `json:"groups"`
}

// EnsureShape coerces absent fields so the persisted document always
// carries both defaultQuestions and groups.
func (b *Bank) EnsureShape() {
	if b.DefaultQuestions == nil {
		b.DefaultQuestions = []Question{}
	}
	if b.Groups == nil {
		b.Groups = map[string][]Question{}
	}
}

var groupPrefix = regexp.MustCompile(`(?i)^grupo\s+`)

// NormalizeGroupKey turns a user-supplied group name into a group key:
// surrounding whitespace and an optional leading "Grupo " token are
// stripped, and the rest is uppercased.
func NormalizeGroupKey(name string) string {
	name = strings.TrimSpace(name)
	name = groupPrefix.ReplaceAllString(name, "")
	return strings.ToUpper(name)
}

// CreateGroup normalizes name into a key and inserts an empty group under
// it. Keys are unique; a second group whose name normalizes to the same
// key is rejected with ErrDuplicateGroup.
func (b *Bank) CreateGroup(name string) (string, error) {
	key := NormalizeGroupKey(name)
	if key == "" {
		return "", ErrEmptyGroupName
	}
	if _, exists := b.Groups[key]; exists {
		return "", ErrDuplicateGroup
	}
	if b.Groups == nil {
		b.Groups = map[string][]Question{}
	}
	b.Groups[key] = []Question{}
	return key, nil
}

// AddQuestion appends q to the default list or to an existing group.
// Append order is the display-order baseline before shuffling.
func (b *Bank) AddQuestion(groupKey string, q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if groupKey == DefaultGroup {
		b.DefaultQuestions = append(b.DefaultQuestions, q)
		return nil
	}
	if _, exists := b.Groups[groupKey]; !exists {
		return ErrGroupNotFound
	}
	b.Groups[groupKey] = append(b.Groups[groupKey], q)
	return nil
}

// Resolve returns the questions behind a group key. An absent group yields
// an empty list, never an error: "nothing to run" is signaled upward by
// length, not by failure.
func (b *Bank) Resolve(groupKey string) []Question {
	if groupKey == DefaultGroup {
		return b.DefaultQuestions
	}
	if qs, ok := b.Groups[groupKey]; ok {
		return qs
	}
	return nil
}

// GroupKeys returns the named group keys in sorted order.
func (b *Bank) GroupKeys() []string {
	keys := make([]string, 0, len(b.Groups))
	for key := range b.Groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
