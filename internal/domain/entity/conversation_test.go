package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationID_IsOrderIndependent(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, ConversationID(a, b), ConversationID(b, a))
	assert.NotEqual(t, ConversationID(a, b), ConversationID(a, uuid.New()))
}

func TestSortPair(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	low, high := SortPair(b, a)
	assert.Equal(t, a, low)
	assert.Equal(t, b, high)
}

func TestConversation_IsUnreadFor(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	newConv := func() *Conversation {
		return &Conversation{
			Participants: [2]uuid.UUID{alice, bob},
			LastMessage:  LastMessage{Text: "hi", SenderID: alice, CreatedAt: created.Add(time.Minute)},
			LastRead:     map[uuid.UUID]time.Time{alice: created.Add(time.Minute), bob: created},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Conversation)
		viewer uuid.UUID
		want   bool
	}{
		{name: "recipient has not read", viewer: bob, want: true},
		{name: "sender never sees own message unread", viewer: alice, want: false},
		{name: "recipient read after message", mutate: func(c *Conversation) { c.LastRead[bob] = created.Add(2 * time.Minute) }, viewer: bob, want: false},
		{name: "read exactly at message time", mutate: func(c *Conversation) { c.LastRead[bob] = created.Add(time.Minute) }, viewer: bob, want: false},
		{name: "missing cursor counts as unread", mutate: func(c *Conversation) { delete(c.LastRead, bob) }, viewer: bob, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConv()
			if tt.mutate != nil {
				tt.mutate(c)
			}
			assert.Equal(t, tt.want, c.IsUnreadFor(tt.viewer))
		})
	}
}

func TestConversation_SummaryFor(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	c := &Conversation{
		ID:           ConversationID(alice, bob),
		Participants: [2]uuid.UUID{alice, bob},
		ParticipantDetails: map[uuid.UUID]ParticipantDetail{
			alice: {DisplayName: "Alice"},
			bob:   {DisplayName: "Bob"},
		},
		LastMessage: LastMessage{Text: "hello", SenderID: bob, CreatedAt: time.Now()},
		LastRead:    map[uuid.UUID]time.Time{},
	}

	summary := c.SummaryFor(alice)

	assert.Equal(t, bob, summary.OtherUserID)
	assert.Equal(t, "Bob", summary.OtherUser.DisplayName)
	assert.True(t, summary.Unread)
}

func TestSubmissionStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, SubmissionPending.CanTransitionTo(SubmissionApproved))
	assert.True(t, SubmissionPending.CanTransitionTo(SubmissionRejected))
	assert.False(t, SubmissionPending.CanTransitionTo(SubmissionPending))
	assert.False(t, SubmissionApproved.CanTransitionTo(SubmissionRejected))
	assert.False(t, SubmissionRejected.CanTransitionTo(SubmissionApproved))
}
