// Package student provides the account domain model and the typed
// repositories for every per-student record kind.
package student

import (
	"time"
)

type Board string

const (
	BoardCBSE  Board = "CBSE"
	BoardICSE  Board = "ICSE"
	BoardState Board = "State Board"
)

type Stream string

const (
	StreamScience  Stream = "Science"
	StreamCommerce Stream = "Commerce"
	StreamArts     Stream = "Arts"
)

// Boards lists the supported education boards.
var Boards = []Board{BoardCBSE, BoardICSE, BoardState}

// Standards lists the supported grade levels.
var Standards = []string{"6", "7", "8", "9", "10", "11", "12"}

// Streams lists the academic streams available in class 11 and 12.
var Streams = []Stream{StreamScience, StreamCommerce, StreamArts}

// SubjectsFor returns the subjects a student can enroll in for a given
// standard and stream. Below class 11 everyone gets the general set.
func SubjectsFor(standard string, stream Stream) []string {
	if standard != "11" && standard != "12" {
		return []string{"Mathematics", "Science", "Social Science", "English", "Hindi"}
	}
	switch stream {
	case StreamCommerce:
		return []string{"Accountancy", "Business Studies", "Economics", "Mathematics", "English"}
	case StreamArts:
		return []string{"History", "Geography", "Political Science", "Economics", "English"}
	default:
		return []string{"Physics", "Chemistry", "Mathematics", "Biology", "English"}
	}
}

// Profile is the credential-free view of an account. This is the only
// account shape that leaves the student package: sessions, the exam
// engine, and the collaborator all receive a Profile, never an Account.
type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Email        string   `yaml:"email" json:"email"`
	ParentMobile string   `yaml:"parent_mobile" json:"parent_mobile"`
	Board        Board    `yaml:"board" json:"board"`
	Standard     string   `yaml:"standard" json:"standard"`
	Stream       Stream   `yaml:"stream,omitempty" json:"stream,omitempty"`
	Subjects     []string `yaml:"subjects" json:"subjects"`
	Registered   bool     `yaml:"registered" json:"registered"`
}

// Account is the persisted record, credential included. It never crosses
// the package boundary except into the store.
type Account struct {
	Profile      `yaml:",inline"`
	PasswordHash string `yaml:"password_hash"`
}

// FullSyllabus is the sentinel chapter label for a full mock test result.
const FullSyllabus = "Full Syllabus"

// TestResult is an immutable record of a completed mock exam. Results are
// appended to the owning account's sequence and only removed when the
// account itself is deleted.
type TestResult struct {
	ID             string    `yaml:"id"`
	Subject        string    `yaml:"subject"`
	Chapter        string    `yaml:"chapter"`
	Score          int       `yaml:"score"`
	TotalMarks     int       `yaml:"total_marks"`
	Feedback       string    `yaml:"feedback"`
	CorrectAnswers string    `yaml:"correct_answers"`
	Date           time.Time `yaml:"date"`
}

type SlotType string

const (
	SlotStudy    SlotType = "study"
	SlotBreak    SlotType = "break"
	SlotMockTest SlotType = "mock-test"
)

// Slot is one block in a day's study plan.
type Slot struct {
	Time     string   `yaml:"time" json:"time"`
	Activity string   `yaml:"activity" json:"activity"`
	Type     SlotType `yaml:"type" json:"type"`
}

// TimeTableEntry is the plan for one recurring weekday. Day is a weekday
// name, not a date; each account holds at most one entry per weekday.
type TimeTableEntry struct {
	Day   string `yaml:"day" json:"day"`
	Slots []Slot `yaml:"slots" json:"slots"`
}

// Note is a saved study note generated by the collaborator.
type Note struct {
	ID        string    `yaml:"id"`
	Subject   string    `yaml:"subject"`
	Chapter   string    `yaml:"chapter"`
	Content   string    `yaml:"content"`
	CreatedAt time.Time `yaml:"created_at"`
}
