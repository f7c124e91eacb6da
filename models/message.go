package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileAttachment describes a file carried by a chat message. URL points at
// the uploaded copy in Cloudinary.
type FileAttachment struct {
	Name string `bson:"name,omitempty" json:"name,omitempty"`
	Size int64  `bson:"size,omitempty" json:"size,omitempty"`
	Type string `bson:"type,omitempty" json:"type,omitempty"`
	URL  string `bson:"url,omitempty" json:"url,omitempty"`
}

// ReplyRef is a denormalized snapshot of the message being replied to.
// Deleting the original never touches the snapshot.
type ReplyRef struct {
	Sender string `bson:"sender" json:"sender"`
	Text   string `bson:"text" json:"text"`
}

type ChatMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommitteeID string             `bson:"committeeID" json:"committeeID"`
	Sender      string             `bson:"sender" json:"sender"`
	Text        string             `bson:"text,omitempty" json:"text,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Status      string             `bson:"status" json:"status"` // sent, delivered, read
	Type        string             `bson:"type" json:"type"`     // text, file
	File        *FileAttachment    `bson:"file,omitempty" json:"file,omitempty"`
	ReplyTo     *ReplyRef          `bson:"replyTo,omitempty" json:"replyTo,omitempty"`
}
