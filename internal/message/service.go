package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/chei-t/spice.com/internal/notify"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidMessage = errors.New("name, email, inquiry and message are required")

type Service struct {
	repo   MessageRepository
	mailer notify.Sender
}

func NewService(repo MessageRepository, mailer notify.Sender) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Create stores a contact-form message.
func (s *Service) Create(ctx context.Context, msg *Message) (*Message, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Inquiry = strings.TrimSpace(msg.Inquiry)
	msg.Body = strings.TrimSpace(msg.Body)

	if msg.Name == "" || msg.Email == "" || msg.Inquiry == "" || msg.Body == "" {
		return nil, ErrInvalidMessage
	}

	msg.ID = primitive.NewObjectID().Hex()
	msg.IsRead = false
	msg.Reply = ""

	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]*Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*Message{}
	}
	return messages, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// Reply stores the reply on the message and mails it to the sender.
// The mail delivery is best-effort.
func (s *Service) Reply(ctx context.Context, id, reply string) error {
	if strings.TrimSpace(reply) == "" {
		return ErrInvalidMessage
	}

	msg, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetReply(ctx, id, reply); err != nil {
		return err
	}

	go func() {
		subject := fmt.Sprintf("Re: %s", msg.Inquiry)
		if err := s.mailer.Send(context.Background(), msg.Email, subject, reply); err != nil {
			log.Printf("reply mail failed: %v", err)
		}
	}()

	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
