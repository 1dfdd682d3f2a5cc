package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"agrinet/internal/domain/constants"
	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateConversation_ConcurrentCallersShareOneConversation(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()

	for round := range 20 {
		a := app.newUser(t, "pair-a-"+string(rune('a'+round)), entity.RoleFarmer)
		b := app.newUser(t, "pair-b-"+string(rune('a'+round)), entity.RoleExpert)

		var (
			wg    sync.WaitGroup
			start = make(chan struct{})
			ids   [2]uuid.UUID
			errs  [2]error
		)
		for i, pair := range [][2]uuid.UUID{{a.ID, b.ID}, {b.ID, a.ID}} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				conversation, err := app.conversations.GetOrCreateConversation(ctx, pair[0], pair[1])
				errs[i] = err
				if err == nil {
					ids[i] = conversation.ID
				}
			}()
		}
		close(start)
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
		assert.Equal(t, ids[0], ids[1])

		listed, err := app.conversations.ListConversationsFor(ctx, a.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	}
}

func TestGetOrCreateConversation_NewConversationIsReadForBoth(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	a := app.newUser(t, "pita", entity.RoleFarmer)
	b := app.newUser(t, "qadir", entity.RoleExpert)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ConversationStartedText, conversation.LastMessage.Text)
	assert.Equal(t, entity.ConversationID(b.ID, a.ID), conversation.ID)
	assert.False(t, conversation.IsUnreadFor(a.ID))
	assert.False(t, conversation.IsUnreadFor(b.ID))
	assert.Equal(t, "qadir", conversation.ParticipantDetails[b.ID].DisplayName)

	_, err = app.conversations.GetOrCreateConversation(ctx, a.ID, a.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfConversation)

	_, err = app.conversations.GetOrCreateConversation(ctx, a.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestListMessages_ReturnsSendOrder(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	a := app.newUser(t, "rosa", entity.RoleFarmer)
	b := app.newUser(t, "sami", entity.RoleExpert)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	for _, step := range []struct {
		sender uuid.UUID
		text   string
	}{{a.ID, "first"}, {b.ID, "second"}, {a.ID, "third"}} {
		_, err := app.conversations.SendMessage(ctx, &usecase.SendMessageInput{
			ConversationID: conversation.ID,
			SenderID:       step.sender,
			Text:           step.text,
		})
		require.NoError(t, err)
	}

	messages, err := app.conversations.ListMessages(ctx, conversation.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, messages[i].Text)
		assert.Equal(t, int64(i+1), messages[i].Seq)
	}

	_, err = app.conversations.ListMessages(ctx, conversation.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)
}

func TestUnreadState_DerivedFromCursorsAndSender(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	a := app.newUser(t, "tomas", entity.RoleFarmer)
	b := app.newUser(t, "uma", entity.RoleFarmer)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: a.ID, Text: "hello"})
	require.NoError(t, err)

	forB, err := app.conversations.ListConversationsFor(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.True(t, forB[0].Unread)
	assert.Equal(t, a.ID, forB[0].OtherUserID)

	forA, err := app.conversations.ListConversationsFor(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, forA[0].Unread)

	count, err := app.conversations.UnreadConversationCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, app.conversations.MarkRead(ctx, conversation.ID, b.ID))

	count, err = app.conversations.UnreadConversationCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, app.conversations.MarkRead(ctx, conversation.ID, uuid.New()), domainerrors.ErrNotParticipant)
}

func TestSendMessage_ReplyFlipsUnreadToOtherSide(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	farmer := app.newUser(t, "vera", entity.RoleFarmer)
	expert := app.newUser(t, "wale", entity.RoleExpert)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, expert.ID, farmer.ID)
	require.NoError(t, err)
	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: expert.ID, Text: "Spray copper fungicide"})
	require.NoError(t, err)

	forFarmer, err := app.conversations.ListConversationsFor(ctx, farmer.ID)
	require.NoError(t, err)
	require.True(t, forFarmer[0].Unread)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: farmer.ID, Text: "Thanks!"})
	require.NoError(t, err)

	forFarmer, err = app.conversations.ListConversationsFor(ctx, farmer.ID)
	require.NoError(t, err)
	forExpert, err := app.conversations.ListConversationsFor(ctx, expert.ID)
	require.NoError(t, err)

	assert.False(t, forFarmer[0].Unread)
	assert.True(t, forExpert[0].Unread)
	assert.Equal(t, "Thanks!", forExpert[0].LastMessage.Text)
}

func TestSendMessage_NotifiesRecipientWithPreview(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	farmer := app.newUser(t, "xola", entity.RoleFarmer)
	expert := app.newUser(t, "yusuf", entity.RoleExpert)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, farmer.ID, expert.ID)
	require.NoError(t, err)

	long := strings.Repeat("é", 150)
	result, err := app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: farmer.ID, Text: "  " + long + "  "})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, long, result.Message.Text)

	inbox, err := app.notifications.List(ctx, &usecase.ListNotificationsInput{RecipientID: expert.ID, RecipientRole: entity.RecipientExpert})
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, entity.NotificationNewMessage, inbox[0].Type)
	assert.Equal(t, "New message from xola", inbox[0].Title)
	assert.Equal(t, strings.Repeat("é", 100)+"...", inbox[0].Body)
	assert.Equal(t, &entity.RelatedRef{Kind: entity.RelatedConversation, ID: conversation.ID}, inbox[0].Related)
	assert.Equal(t, 1, app.publisher.count())
}

func TestSendMessage_RejectsInvalidInput(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	a := app.newUser(t, "zuri", entity.RoleFarmer)
	b := app.newUser(t, "abebe", entity.RoleFarmer)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: a.ID, Text: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: a.ID, Text: strings.Repeat("x", 2001)})
	assert.ErrorIs(t, err, domainerrors.ErrMessageTooLong)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: uuid.New(), Text: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: uuid.New(), SenderID: a.ID, Text: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)

	messages, err := app.store.repos().MessageRepo().FindByConversation(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSendMessage_FailedWriteLeavesConversationUntouched(t *testing.T) {
	app := newTestApp(t, 500)
	ctx := context.Background()
	a := app.newUser(t, "bola", entity.RoleFarmer)
	b := app.newUser(t, "chidi", entity.RoleFarmer)

	conversation, err := app.conversations.GetOrCreateConversation(ctx, a.ID, b.ID)
	require.NoError(t, err)

	// A stray message already holds seq 1, so the insert conflicts and the transaction rolls back.
	require.NoError(t, app.store.repos().MessageRepo().Create(ctx, &entity.Message{
		ID: uuid.New(), ConversationID: conversation.ID, Seq: 1, SenderID: a.ID, Text: "stray",
	}))

	_, err = app.conversations.SendMessage(ctx, &usecase.SendMessageInput{ConversationID: conversation.ID, SenderID: a.ID, Text: "hi"})
	require.Error(t, err)

	stored, err := app.store.repos().ConversationRepo().FindByID(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ConversationStartedText, stored.LastMessage.Text)
	assert.Zero(t, stored.LastSeq)
}
