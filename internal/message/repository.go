package message

import (
	"context"
	"errors"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for message data operations
// Consumers define this interface, not the MongoDB implementation
type MessageRepository interface {
	Insert(ctx context.Context, msg *Message) error
	List(ctx context.Context) ([]*Message, error)
	Get(ctx context.Context, id string) (*Message, error)
	MarkRead(ctx context.Context, id string) error
	SetReply(ctx context.Context, id, reply string) error
	Delete(ctx context.Context, id string) error
}
