package message

import "time"

// Message is a contact-form inquiry and its admin-side state.
type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Inquiry   string    `bson:"inquiry" json:"inquiry"`
	Body      string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
	Reply     string    `bson:"reply,omitempty" json:"reply,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
