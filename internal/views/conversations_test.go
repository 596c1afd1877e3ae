package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

func TestGroupConversations(t *testing.T) {
	messages := []owner.Message{
		{MessageID: "m1", SenderID: "A", RecipientID: "B", RecipientName: "Bea"},
		{MessageID: "m2", SenderID: "B", SenderName: "Bea", RecipientID: "A"},
		{MessageID: "m3", SenderID: "A", RecipientID: "C", RecipientName: "Carl"},
	}

	conversations := GroupConversations("A", messages)

	assert.Len(t, conversations, 2)
	assert.Equal(t, "B", conversations[0].CounterpartID)
	assert.Len(t, conversations[0].Messages, 2)
	assert.Equal(t, "C", conversations[1].CounterpartID)
	assert.Len(t, conversations[1].Messages, 1)
}

// The counterpart's name is resolved from whichever side of the message is
// not the current user.
func TestGroupConversationsCounterpartName(t *testing.T) {
	messages := []owner.Message{
		{MessageID: "m1", SenderID: "B", SenderName: "Bea", SenderType: "guest", RecipientID: "A", RecipientName: "Owner"},
	}

	conversations := GroupConversations("A", messages)

	assert.Len(t, conversations, 1)
	assert.Equal(t, "Bea", conversations[0].CounterpartName)
	assert.Equal(t, "guest", conversations[0].CounterpartRole)
}

func TestGroupConversationsFirstEncounterOrder(t *testing.T) {
	messages := []owner.Message{
		{MessageID: "m1", SenderID: "C", RecipientID: "A"},
		{MessageID: "m2", SenderID: "B", RecipientID: "A"},
		{MessageID: "m3", SenderID: "C", RecipientID: "A"},
	}

	conversations := GroupConversations("A", messages)

	assert.Equal(t, "C", conversations[0].CounterpartID)
	assert.Equal(t, "B", conversations[1].CounterpartID)
}

func TestGroupConversationsEmpty(t *testing.T) {
	assert.Empty(t, GroupConversations("A", nil))
}

func TestSortMessagesByTime(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := []owner.Message{
		{MessageID: "m2", CreatedAt: base.Add(time.Hour)},
		{MessageID: "m1", CreatedAt: base},
		{MessageID: "m3", CreatedAt: base.Add(time.Hour)},
	}

	SortMessagesByTime(messages)

	assert.Equal(t, "m1", messages[0].MessageID)
	// Equal timestamps keep input order.
	assert.Equal(t, "m2", messages[1].MessageID)
	assert.Equal(t, "m3", messages[2].MessageID)
}
