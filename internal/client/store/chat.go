package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maintdesk/maintdesk/internal/client/api"
	"github.com/maintdesk/maintdesk/internal/client/models"
	"github.com/maintdesk/maintdesk/internal/logging"
)

// ChatStore caches the assistant conversation, oldest first.
type ChatStore struct {
	Collection[models.ChatMessage]
	client api.Client
	log    logging.Logger
}

func NewChatStore(client api.Client, log logging.Logger) *ChatStore {
	return &ChatStore{client: client, log: log.With("store", "chat")}
}

func (s *ChatStore) Fetch(ctx context.Context) error {
	err := fetchInto(ctx, &s.Collection, s.client.ChatMessages)
	if err != nil {
		s.log.Warn(ctx, "fetch failed", "err", err)
	}
	return err
}

// Send is the one deliberately optimistic operation in the client: the
// user's message is appended locally before the round trip so the prompt is
// visible while the assistant thinks, and rolled back if the send fails.
// The local placeholder keeps a synthetic id until the next Fetch replaces
// it with the server's row. Returns the assistant's reply.
func (s *ChatStore) Send(ctx context.Context, content string) (*models.ChatMessage, error) {
	local := models.ChatMessage{
		ID:        "local-" + uuid.NewString(),
		Role:      models.ChatRoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.push(local)

	reply, err := s.client.SendChatMessage(ctx, content)
	if err != nil {
		s.removeByID(local.ID)
		return nil, err
	}
	s.push(*reply)
	return reply, nil
}

// Clear wipes the conversation server-side, then locally.
func (s *ChatStore) Clear(ctx context.Context) error {
	if err := s.client.ClearChatMessages(ctx); err != nil {
		return err
	}
	s.reset()
	return nil
}

// DeleteMessage removes one message after server confirmation.
func (s *ChatStore) DeleteMessage(ctx context.Context, id string) error {
	if err := s.client.DeleteChatMessage(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}
