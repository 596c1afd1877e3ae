package views

import (
	"sort"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// Conversation aggregates all messages exchanged with one counterpart: the
// recipient when the current user sent the message, the sender otherwise.
type Conversation struct {
	CounterpartID   string          `json:"counterpart_id"`
	CounterpartName string          `json:"counterpart_name"`
	CounterpartRole string          `json:"counterpart_role,omitempty"`
	PropertyID      string          `json:"property_id,omitempty"`
	PropertyTitle   string          `json:"property_title,omitempty"`
	Messages        []owner.Message `json:"messages"`
}

// GroupConversations rebuilds the conversation list from a flat message
// dump. One group per distinct counterpart id, every message in exactly one
// group, message order within a group following input order. Conversations
// come out in first-encounter order. The counterpart name/role and listing
// context are taken from the first message seen for that counterpart.
func GroupConversations(currentUserID string, messages []owner.Message) []Conversation {
	index := make(map[string]int)
	var conversations []Conversation

	for _, msg := range messages {
		counterpartID := msg.SenderID
		counterpartName := msg.SenderName
		counterpartRole := msg.SenderType
		if msg.SenderID == currentUserID {
			counterpartID = msg.RecipientID
			counterpartName = msg.RecipientName
			counterpartRole = msg.RecipientType
		}

		i, ok := index[counterpartID]
		if !ok {
			i = len(conversations)
			index[counterpartID] = i
			conversations = append(conversations, Conversation{
				CounterpartID:   counterpartID,
				CounterpartName: counterpartName,
				CounterpartRole: counterpartRole,
				PropertyID:      msg.PropertyID,
				PropertyTitle:   msg.PropertyTitle,
			})
		}
		conversations[i].Messages = append(conversations[i].Messages, msg)
	}
	return conversations
}

// SortMessagesByTime orders a conversation's messages oldest first for
// display. Stable, so same-timestamp messages keep their input order.
func SortMessagesByTime(messages []owner.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
