package dto

import "time"

// CreateNoteRequest cuerpo de POST /notes.
type CreateNoteRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=100,text_es"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,objectid"`
	Description string  `json:"description" validate:"required,min=5,max=1000"`
}

// UpdateNoteRequest cuerpo de PUT /notes/:id; campos ausentes no cambian.
type UpdateNoteRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=100,text_es"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,objectid"`
	Description *string `json:"description" validate:"omitempty,min=5,max=1000"`
}

// NoteResponse proyección pública de una nota.
type NoteResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    *RefResponse `json:"category"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
}
