package model

import "time"

// Template is a named markup body stored by template authors.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}
