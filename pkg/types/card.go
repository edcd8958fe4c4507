// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain and configuration types shared across the
// deckconvert pipeline stages.
package types

// Card is one accepted flashcard: a question and its answer after separator
// restoration.
type Card struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// RejectReason classifies why a record was rejected by the parser.
type RejectReason string

const (
	// RejectNoTab marks a line with no tab separator between question and answer.
	RejectNoTab RejectReason = "no_tab"

	// RejectEmptyAnswer marks a record whose post-tab portion is empty.
	RejectEmptyAnswer RejectReason = "empty_answer"
)

// Rejection is one rejected record. For RejectNoTab the Question field holds
// the whole line, since no question/answer split exists.
type Rejection struct {
	Line     int          `json:"line" yaml:"line"`
	Question string       `json:"question" yaml:"question"`
	Reason   RejectReason `json:"reason" yaml:"reason"`
}
