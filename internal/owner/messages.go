package owner

import (
	"context"
	"fmt"
	"net/http"
)

// SendMessageRequest posts one message into a conversation, optionally tied
// to a listing.
type SendMessageRequest struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	PropertyID  string `json:"property_id,omitempty"`
}

// Conversations returns the flat dump of every message the user sent or
// received. Grouping into per-counterpart threads happens client side.
func (c *Client) Conversations(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	url := fmt.Sprintf("%s/conversations/%s", c.messageURL, userID)
	if err := c.doJSON(ctx, http.MethodGet, url, "", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage delivers a message to a guest.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.messageURL+"/send", "", req, nil)
}
