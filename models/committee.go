package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Committee is one rotating-savings group. CommitteeID is the external
// lookup key shared with members; it is generated by the caller and the
// server never rewrites it.
type Committee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommitteeName string             `bson:"committeeName" json:"committeeName"`
	CommitteeID   string             `bson:"committeeID" json:"committeeID"`
	Chairperson   string             `bson:"chairperson" json:"chairperson"`
	Members       []string           `bson:"members" json:"members"`
	Purpose       string             `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	StartDate     string             `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate       string             `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Rotation      string             `bson:"rotation" json:"rotation"` // fixed, random
	Privacy       string             `bson:"privacy" json:"privacy"`   // private, public
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// LedgerEntry is one member's contribution standing within a committee.
// MemberID is the member's position in the committee list at the time the
// entry was seeded.
type LedgerEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommitteeID string             `bson:"committeeID" json:"committeeID"`
	MemberID    int                `bson:"memberID" json:"memberID"`
	Name        string             `bson:"name" json:"name"`
	Paid        float64            `bson:"paid" json:"paid"`
	Due         float64            `bson:"due" json:"due"`
	Status      string             `bson:"status" json:"status"` // Due, Paid
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
