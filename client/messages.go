package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"server/models"
)

// MessageService caches the admin's inbox. Sending a message is public and
// does not touch the cache (the inbox view belongs to the admin, not to the
// visitor who submitted the form).
type MessageService struct {
	client   *Client
	mu       sync.RWMutex
	messages []models.Message
}

func NewMessageService(c *Client) *MessageService {
	return &MessageService{client: c, messages: []models.Message{}}
}

type MessageParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

func (s *MessageService) Refresh(ctx context.Context) error {
	messages := []models.Message{}
	if err := s.client.do(ctx, http.MethodGet, "/api/messages", nil, &messages); err != nil {
		return err
	}
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// Messages returns a copy of the cached inbox, newest first.
func (s *MessageService) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *MessageService) Send(ctx context.Context, params MessageParams) (models.Message, error) {
	message := models.Message{}
	err := s.client.do(ctx, http.MethodPost, "/api/messages", params, &message)
	return message, err
}

func (s *MessageService) Delete(ctx context.Context, id uint64) error {
	if err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/messages/%d", id), nil, nil); err != nil {
		return err
	}
	s.mu.Lock()
	kept := make([]models.Message, 0, len(s.messages))
	for _, message := range s.messages {
		if message.ID != id {
			kept = append(kept, message)
		}
	}
	s.messages = kept
	s.mu.Unlock()
	return nil
}
