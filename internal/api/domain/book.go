package domain

import "time"

// Book is a catalogue entry. Author and title may never be blank.
type Book struct {
	ID         int64     `json:"id"`
	Author     string    `json:"author" validate:"notblank"`
	Title      string    `json:"title" validate:"notblank"`
	LaunchDate time.Time `json:"launchDate"`
	Price      float64   `json:"price" validate:"gte=0"`
}
