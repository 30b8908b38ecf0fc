package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

const (
	DefaultEmoji = "Unknown"
	DefaultNote  = "No specific note."
)

var ErrEntryNotObject = errors.New("mood entry must be a JSON object")

// MoodField is an optional entry value rendered to text. Strings are kept
// verbatim, other JSON values keep their compact JSON text and null counts
// as absent.
type MoodField struct {
	Value string
	Set   bool
}

func (f *MoodField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = MoodField{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = MoodField{Value: s, Set: true}
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*f = MoodField{Value: buf.String(), Set: true}
	return nil
}

func (f MoodField) Or(fallback string) string {
	if !f.Set {
		return fallback
	}
	return f.Value
}

type MoodEntry struct {
	Emoji MoodField `json:"emoji"`
	Note  MoodField `json:"note"`
}

func (e *MoodEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return ErrEntryNotObject
	}

	type plainEntry MoodEntry
	var p plainEntry
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = MoodEntry(p)
	return nil
}

func (e MoodEntry) DisplayEmoji() string {
	return e.Emoji.Or(DefaultEmoji)
}

func (e MoodEntry) DisplayNote() string {
	return e.Note.Or(DefaultNote)
}
