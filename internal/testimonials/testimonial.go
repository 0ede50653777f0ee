// Package testimonials keeps the bounded, newest-first list of reviews that
// visitors leave on the portfolio.
package testimonials

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Capacity is the number of testimonials retained; older ones are evicted.
const Capacity = 3

// DateLayout formats the creation date shown with each testimonial.
const DateLayout = "Jan 2, 2006"

// Testimonial is an immutable review. Field names match the persisted form.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Review string `json:"review"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

// Candidate is a submitted, not yet validated testimonial.
type Candidate struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Review string `json:"review" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

func (c Candidate) normalized() Candidate {
	return Candidate{
		Name:   strings.TrimSpace(c.Name),
		Role:   strings.TrimSpace(c.Role),
		Review: strings.TrimSpace(c.Review),
		Rating: c.Rating,
	}
}

// Stars returns the filled/empty star flags for rendering a 1-5 rating.
func (t Testimonial) Stars() [5]bool {
	var stars [5]bool
	for i := range stars {
		stars[i] = i < t.Rating
	}
	return stars
}

func (t Testimonial) valid() bool {
	return strings.TrimSpace(t.ID) != "" &&
		strings.TrimSpace(t.Name) != "" &&
		strings.TrimSpace(t.Role) != "" &&
		strings.TrimSpace(t.Review) != "" &&
		t.Rating >= 1 && t.Rating <= 5
}

// Encode serialises a collection in its persisted JSON form.
func Encode(items []Testimonial) (string, error) {
	if items == nil {
		items = []Testimonial{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode testimonials: %w", err)
	}
	return string(data), nil
}

// Decode parses the persisted form. Entries that could not have been produced
// by a valid submission are dropped and the result is capped at Capacity.
func Decode(raw string) ([]Testimonial, error) {
	var decoded []Testimonial
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	items := make([]Testimonial, 0, len(decoded))
	for _, item := range decoded {
		if item.valid() {
			items = append(items, item)
		}
	}
	if len(items) > Capacity {
		items = items[:Capacity]
	}
	return items, nil
}
