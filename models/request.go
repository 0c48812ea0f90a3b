package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Request statuses. Pending is the initial state; the transition endpoint
// accepts any member of the set, pending included, so admins can reset a
// request after responding.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusFulfilled = "fulfilled"
)

// ValidStatus reports whether s is one of the four request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFulfilled:
		return true
	}
	return false
}

// EmailRX is the fixed pattern used to validate requester emails.
var EmailRX = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Request is the document behind the /api/requests sub-API.
type Request struct {
	ID             bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string        `json:"title" bson:"title"`
	Author         string        `json:"author" bson:"author"`
	ISBN           string        `json:"isbn,omitempty" bson:"isbn,omitempty"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	Genre          string        `json:"genre,omitempty" bson:"genre,omitempty"`
	PublishYear    int           `json:"publishYear,omitempty" bson:"publishYear,omitempty"`
	RequesterEmail string        `json:"requesterEmail" bson:"requesterEmail"`
	RequesterName  string        `json:"requesterName,omitempty" bson:"requesterName,omitempty"`
	Status         string        `json:"status" bson:"status"`
	AdminNotes     string        `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	Upvotes        int64         `json:"upvotes" bson:"upvotes"`
	RespondedBy    string        `json:"respondedBy,omitempty" bson:"respondedBy,omitempty"`
	RespondedAt    *time.Time    `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at"`
}

// BookRequest is the document behind the older /api/book-requests sub-API.
// It records the same lifecycle under divergent field names (bookName,
// requestedBy). Both sub-APIs are kept deliberately; see DESIGN.md.
type BookRequest struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	BookName    string        `json:"bookName" bson:"bookName"`
	Author      string        `json:"author" bson:"author"`
	ISBN        string        `json:"isbn,omitempty" bson:"isbn,omitempty"`
	RequestedBy string        `json:"requestedBy" bson:"requestedBy"`
	Status      string        `json:"status" bson:"status"`
	AdminNotes  string        `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	Upvotes     int64         `json:"upvotes" bson:"upvotes"`
	RespondedBy string        `json:"respondedBy,omitempty" bson:"respondedBy,omitempty"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
