// Package mistakes implements the mistake review tracker: questions
// answered wrong enter the tracker and graduate out after being answered
// correctly enough times in a row.
package mistakes

import (
	"sort"
	"time"

	"github.com/psinha/quizforge/internal/quiz"
)

// MasteryThreshold is the number of consecutive correct answers that
// graduates a question out of the tracker.
const MasteryThreshold = 3

// Record is one tracked question and its review progress.
type Record struct {
	Question           quiz.Question
	ConsecutiveCorrect int
	LastReviewedAt     time.Time
	BankName           string
}

// Tracker holds the in-memory record set. A question is either absent or
// tracked; state moves on every reviewed answer:
//
//	absent  + wrong   -> tracked with streak 0
//	tracked + wrong   -> streak reset to 0
//	tracked + correct -> streak +1; at MasteryThreshold the record is removed
//	absent  + correct -> no change
type Tracker struct {
	records map[string]*Record
	dirty   bool
}

// NewTracker builds a Tracker from previously persisted records.
func NewTracker(records []Record) *Tracker {
	t := &Tracker{records: make(map[string]*Record, len(records))}
	for i := range records {
		r := records[i]
		t.records[r.Question.ID] = &r
	}
	return t
}

// Record applies one reviewed answer to the tracker.
func (t *Tracker) Record(q quiz.Question, correct bool, bankName string) {
	now := time.Now()
	r, tracked := t.records[q.ID]

	if !correct {
		if tracked {
			r.ConsecutiveCorrect = 0
			r.LastReviewedAt = now
			t.dirty = true
			return
		}
		t.records[q.ID] = &Record{
			Question:       q,
			LastReviewedAt: now,
			BankName:       bankName,
		}
		t.dirty = true
		return
	}

	if !tracked {
		return
	}
	r.ConsecutiveCorrect++
	r.LastReviewedAt = now
	if r.ConsecutiveCorrect >= MasteryThreshold {
		delete(t.records, q.ID)
	}
	t.dirty = true
}

// ApplySession feeds every answered question of a closed session into the
// tracker. Unanswered questions are not reviewed and leave the tracker
// untouched.
func (t *Tracker) ApplySession(s *quiz.Session, bankName string) {
	for i := range s.Questions {
		q := s.Questions[i]
		if !s.Answered(q.ID) {
			continue
		}
		t.Record(q, s.IsCorrect(q.ID), bankName)
	}
}

// Tracked reports whether the question is currently in the tracker.
func (t *Tracker) Tracked(questionID string) bool {
	_, ok := t.records[questionID]
	return ok
}

// Streak returns the consecutive-correct count for a tracked question,
// or -1 when the question is not tracked.
func (t *Tracker) Streak(questionID string) int {
	r, ok := t.records[questionID]
	if !ok {
		return -1
	}
	return r.ConsecutiveCorrect
}

// Len returns the number of tracked questions.
func (t *Tracker) Len() int {
	return len(t.records)
}

// Dirty reports whether the tracker changed since it was built.
func (t *Tracker) Dirty() bool {
	return t.dirty
}

// Records returns the current record set, most recently reviewed first.
func (t *Tracker) Records() []Record {
	out := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastReviewedAt.After(out[j].LastReviewedAt)
	})
	return out
}

// Questions returns the tracked questions, most recently reviewed first,
// ready to seed a review session.
func (t *Tracker) Questions() []quiz.Question {
	recs := t.Records()
	qs := make([]quiz.Question, len(recs))
	for i, r := range recs {
		qs[i] = r.Question
	}
	return qs
}
