// Package model contains domain models passed between layers.
package model

import "strings"

// ContestRecord is one row of the contest workbook: a single user's result
// in a single contest.
type ContestRecord struct {
	UserID string  // platform handle
	RollNo int     // college roll number
	Code   string  // contest code, e.g. "START132"
	Name   string  // contest display name
	Rating float64 // rating after the contest
	Rank   int     // rank in the contest
	Color  string  // division colour, e.g. "#3366CC"
	Reason string  // penalty reason; non-empty when the result was flagged
}

// Flagged reports whether the contest carries a plagiarism/penalty reason.
func (r ContestRecord) Flagged() bool {
	return strings.TrimSpace(r.Reason) != ""
}

// Credentials is the per-user reduction consumed by the trust scorer.
type Credentials struct {
	N  int     `json:"n"`  // contests participated
	P  int     `json:"p"`  // flagged contests
	OA float64 `json:"oa"` // overall average rating increment
	PA float64 `json:"pa"` // average increment over the recent window
	C  float64 `json:"c"`  // current rating
	A  float64 `json:"a"`  // average rating
}
