// Package transfer moves question sets in and out of a bank: it validates
// and normalizes imported payloads into mergeable form, and serializes a
// group back into a portable document with metadata.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/certquiz/backend/internal/domain/bank"
)

// MalformedPayloadError describes a rejected import payload. Position is
// the 1-based index of the offending question, or 0 when the payload as a
// whole is unusable. Nothing is merged on rejection.
type MalformedPayloadError struct {
	Position int
	Reason   string
}

func (e *MalformedPayloadError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("question %d: %s", e.Position, e.Reason)
	}
	return e.Reason
}

// Import is a validated payload, ready to merge. GroupKey is already
// normalized.
type Import struct {
	GroupKey  string
	Questions []bank.Question
}

type importPayload struct {
	GroupName string          `json:"groupName"`
	Questions json.RawMessage `json:"questions"`
}

// ParseImport decodes and fully validates an import document before
// anything touches a bank. The document is {groupName, questions:[...]}
// with each question carrying question, a, b, c, d and correct.
func ParseImport(data []byte) (*Import, error) {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &MalformedPayloadError{Reason: "payload is not valid JSON"}
	}

	if payload.GroupName == "" {
		return nil, &MalformedPayloadError{Reason: `payload must name a target group in "groupName"`}
	}
	if len(payload.Questions) == 0 {
		return nil, &MalformedPayloadError{Reason: `payload must carry an array of questions in "questions"`}
	}

	var questions []bank.Question
	if err := json.Unmarshal(payload.Questions, &questions); err != nil || questions == nil {
		return nil, &MalformedPayloadError{Reason: `"questions" must be an array of questions`}
	}

	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, &MalformedPayloadError{Position: i + 1, Reason: err.Error()}
		}
	}

	key := bank.NormalizeGroupKey(payload.GroupName)
	if key == "" {
		return nil, &MalformedPayloadError{Reason: `payload must name a target group in "groupName"`}
	}

	return &Import{GroupKey: key, Questions: questions}, nil
}

// Merge appends the validated questions to their target group, creating
// the group when absent and reusing it when present. The append is
// deliberate: re-importing the same payload duplicates entries.
func Merge(b *bank.Bank, imp *Import) {
	if b.Groups == nil {
		b.Groups = map[string][]bank.Question{}
	}
	b.Groups[imp.GroupKey] = append(b.Groups[imp.GroupKey], imp.Questions...)
}

// ExportPayload is the portable document a group serializes to.
type ExportPayload struct {
	Certification string          `json:"certification"`
	GroupName     string          `json:"groupName"`
	ExportDate    string          `json:"exportDate"`
	Questions     []bank.Question `json:"questions"`
}

// ExportGroup serializes a group with metadata. The group name round-trips
// through ParseImport's normalization on re-import.
func ExportGroup(b *bank.Bank, groupKey, certLabel string, now time.Time) (*ExportPayload, error) {
	questions := b.Resolve(groupKey)
	if len(questions) == 0 {
		return nil, bank.ErrEmptyGroup
	}

	groupName := "Grupo Padrão"
	if groupKey != bank.DefaultGroup {
		groupName = "Grupo " + groupKey
	}

	return &ExportPayload{
		Certification: certLabel,
		GroupName:     groupName,
		ExportDate:    now.UTC().Format(time.RFC3339),
		Questions:     append([]bank.Question(nil), questions...),
	}, nil
}
