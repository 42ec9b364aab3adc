package types

import "time"

// Note is the server-owned record. ID and the timestamps are assigned by the
// backend; clients never fabricate or mutate them locally.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CloneNote(note *Note) *Note {
	if note == nil {
		return nil
	}
	clone := *note
	return &clone
}

func CloneNotes(notes []*Note) []*Note {
	if notes == nil {
		return nil
	}
	out := make([]*Note, 0, len(notes))
	for _, note := range notes {
		out = append(out, CloneNote(note))
	}
	return out
}
