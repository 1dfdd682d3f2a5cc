package impl

import (
	"bytes"
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"agrinet/internal/domain/entity"
	domainerrors "agrinet/internal/domain/errors"
	"agrinet/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is a serialisable in-memory store. Execute holds the store lock for the whole
// callback and restores a snapshot when the callback fails, which gives the same
// all-or-nothing visibility a database transaction gives.
type memStore struct {
	mu            sync.Mutex
	profiles      map[uuid.UUID]entity.UserProfile
	follows       map[[2]uuid.UUID]time.Time
	conversations map[uuid.UUID]*entity.Conversation
	messages      []entity.Message
	notifications map[uuid.UUID]entity.Notification
	submissions   map[uuid.UUID]entity.DiagnosisSubmission
}

func newMemStore() *memStore {
	return &memStore{
		profiles:      map[uuid.UUID]entity.UserProfile{},
		follows:       map[[2]uuid.UUID]time.Time{},
		conversations: map[uuid.UUID]*entity.Conversation{},
		notifications: map[uuid.UUID]entity.Notification{},
		submissions:   map[uuid.UUID]entity.DiagnosisSubmission{},
	}
}

type memSnapshot struct {
	profiles      map[uuid.UUID]entity.UserProfile
	follows       map[[2]uuid.UUID]time.Time
	conversations map[uuid.UUID]*entity.Conversation
	messages      []entity.Message
	notifications map[uuid.UUID]entity.Notification
	submissions   map[uuid.UUID]entity.DiagnosisSubmission
}

func (s *memStore) snapshot() memSnapshot {
	conversations := make(map[uuid.UUID]*entity.Conversation, len(s.conversations))
	for id, c := range s.conversations {
		conversations[id] = cloneConversation(c)
	}

	return memSnapshot{
		profiles:      maps.Clone(s.profiles),
		follows:       maps.Clone(s.follows),
		conversations: conversations,
		messages:      slices.Clone(s.messages),
		notifications: maps.Clone(s.notifications),
		submissions:   maps.Clone(s.submissions),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.profiles = snap.profiles
	s.follows = snap.follows
	s.conversations = snap.conversations
	s.messages = snap.messages
	s.notifications = snap.notifications
	s.submissions = snap.submissions
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(memFactory{view: memView{store: s, inTx: true}}); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

// memView runs repository calls against the store, taking the lock unless it is inside Execute.
type memView struct {
	store *memStore
	inTx  bool
}

func (v memView) do(fn func(s *memStore)) {
	if !v.inTx {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	fn(v.store)
}

type memFactory struct {
	view memView
}

func (f memFactory) ProfileRepo() repository.ProfileRepository {
	return memProfiles{f.view}
}

func (f memFactory) FollowRepo() repository.FollowRepository {
	return memFollows{f.view}
}

func (f memFactory) ConversationRepo() repository.ConversationRepository {
	return memConversations{f.view}
}

func (f memFactory) MessageRepo() repository.MessageRepository {
	return memMessages{f.view}
}

func (f memFactory) NotificationRepo() repository.NotificationRepository {
	return memNotifications{f.view}
}

func (f memFactory) SubmissionRepo() repository.SubmissionRepository {
	return memSubmissions{f.view}
}

// repos returns repositories that operate outside any transaction.
func (s *memStore) repos() memFactory {
	return memFactory{view: memView{store: s}}
}

// --- profiles ---

type memProfiles struct{ memView }

func (r memProfiles) Create(_ context.Context, profile *entity.UserProfile) (err error) {
	r.do(func(s *memStore) {
		for _, p := range s.profiles {
			if p.UID == profile.UID || p.Username == profile.Username {
				err = repository.ErrDuplicateProfile

				return
			}
		}
		s.profiles[profile.ID] = *profile
	})

	return err
}

func (r memProfiles) FindByID(_ context.Context, id uuid.UUID) (profile *entity.UserProfile, err error) {
	r.do(func(s *memStore) {
		p, ok := s.profiles[id]
		if !ok {
			err = repository.ErrProfileNotFound

			return
		}
		profile = &p
	})

	return profile, err
}

func (r memProfiles) FindByUID(_ context.Context, uid string) (profile *entity.UserProfile, err error) {
	r.do(func(s *memStore) {
		for _, p := range s.profiles {
			if p.UID == uid {
				profile = &p

				return
			}
		}
		err = repository.ErrProfileNotFound
	})

	return profile, err
}

func (r memProfiles) FindByIDs(_ context.Context, ids []uuid.UUID) (profiles []*entity.UserProfile, err error) {
	r.do(func(s *memStore) {
		for _, id := range ids {
			if p, ok := s.profiles[id]; ok {
				profiles = append(profiles, &p)
			}
		}
	})

	return profiles, nil
}

func (r memProfiles) FindByRole(_ context.Context, role entity.Role) (profiles []*entity.UserProfile, err error) {
	r.do(func(s *memStore) {
		for _, p := range s.profiles {
			if p.Role == role {
				profiles = append(profiles, &p)
			}
		}
	})
	slices.SortFunc(profiles, func(a, b *entity.UserProfile) int { return cmp.Compare(a.DisplayName, b.DisplayName) })

	return profiles, nil
}

func (r memProfiles) LockByIDs(_ context.Context, ids []uuid.UUID) (err error) {
	r.do(func(s *memStore) {
		for _, id := range ids {
			if _, ok := s.profiles[id]; !ok {
				err = repository.ErrProfileNotFound

				return
			}
		}
	})

	return err
}

func (r memProfiles) AdjustFollowCounts(_ context.Context, followerID, followeeID uuid.UUID, delta int) error {
	r.do(func(s *memStore) {
		follower := s.profiles[followerID]
		follower.FollowingCount = max(follower.FollowingCount+delta, 0)
		s.profiles[followerID] = follower

		followee := s.profiles[followeeID]
		followee.FollowerCount = max(followee.FollowerCount+delta, 0)
		s.profiles[followeeID] = followee
	})

	return nil
}

// --- follows ---

type memFollows struct{ memView }

func (r memFollows) Create(_ context.Context, followerID, followeeID uuid.UUID) (created bool, err error) {
	r.do(func(s *memStore) {
		if _, ok := s.profiles[followerID]; !ok {
			err = repository.ErrProfileNotFound

			return
		}
		if _, ok := s.profiles[followeeID]; !ok {
			err = repository.ErrProfileNotFound

			return
		}
		key := [2]uuid.UUID{followerID, followeeID}
		if _, ok := s.follows[key]; ok {
			return
		}
		s.follows[key] = time.Now()
		created = true
	})

	return created, err
}

func (r memFollows) Delete(_ context.Context, followerID, followeeID uuid.UUID) (deleted bool, err error) {
	r.do(func(s *memStore) {
		key := [2]uuid.UUID{followerID, followeeID}
		if _, ok := s.follows[key]; ok {
			delete(s.follows, key)
			deleted = true
		}
	})

	return deleted, nil
}

func (r memFollows) Exists(_ context.Context, followerID, followeeID uuid.UUID) (exists bool, err error) {
	r.do(func(s *memStore) {
		_, exists = s.follows[[2]uuid.UUID{followerID, followeeID}]
	})

	return exists, nil
}

func (r memFollows) FindFollowerIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.adjacent(func(edge [2]uuid.UUID) (uuid.UUID, bool) { return edge[0], edge[1] == userID }), nil
}

func (r memFollows) FindFollowingIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.adjacent(func(edge [2]uuid.UUID) (uuid.UUID, bool) { return edge[1], edge[0] == userID }), nil
}

func (r memFollows) adjacent(pick func(edge [2]uuid.UUID) (uuid.UUID, bool)) []uuid.UUID {
	type entry struct {
		id uuid.UUID
		at time.Time
	}
	var entries []entry
	r.do(func(s *memStore) {
		for edge, at := range s.follows {
			if id, ok := pick(edge); ok {
				entries = append(entries, entry{id: id, at: at})
			}
		}
	})
	slices.SortFunc(entries, func(a, b entry) int { return b.at.Compare(a.at) })

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.id)
	}

	return ids
}

// --- conversations ---

type memConversations struct{ memView }

func cloneConversation(c *entity.Conversation) *entity.Conversation {
	clone := *c
	clone.ParticipantDetails = maps.Clone(c.ParticipantDetails)
	clone.LastRead = maps.Clone(c.LastRead)

	return &clone
}

func (r memConversations) CreateIfNotExists(_ context.Context, conversation *entity.Conversation) (created bool, err error) {
	r.do(func(s *memStore) {
		if _, ok := s.conversations[conversation.ID]; ok {
			return
		}
		s.conversations[conversation.ID] = cloneConversation(conversation)
		created = true
	})

	return created, nil
}

func (r memConversations) FindByID(_ context.Context, id uuid.UUID) (conversation *entity.Conversation, err error) {
	r.do(func(s *memStore) {
		c, ok := s.conversations[id]
		if !ok {
			err = repository.ErrConversationNotFound

			return
		}
		conversation = cloneConversation(c)
	})

	return conversation, err
}

func (r memConversations) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	return r.FindByID(ctx, id)
}

func (r memConversations) FindByParticipant(_ context.Context, userID uuid.UUID) (conversations []*entity.Conversation, err error) {
	r.do(func(s *memStore) {
		for _, c := range s.conversations {
			if c.HasParticipant(userID) {
				conversations = append(conversations, cloneConversation(c))
			}
		}
	})
	slices.SortFunc(conversations, func(a, b *entity.Conversation) int {
		return b.LastMessage.CreatedAt.Compare(a.LastMessage.CreatedAt)
	})

	return conversations, nil
}

func (r memConversations) UpdateLastMessage(_ context.Context, id uuid.UUID, last entity.LastMessage, seq int64) (err error) {
	r.do(func(s *memStore) {
		c, ok := s.conversations[id]
		if !ok {
			err = repository.ErrConversationNotFound

			return
		}
		c.LastMessage = last
		c.LastSeq = seq
		c.UpdatedAt = last.CreatedAt
	})

	return err
}

func (r memConversations) UpdateLastRead(_ context.Context, id, userID uuid.UUID, at time.Time) (err error) {
	r.do(func(s *memStore) {
		c, ok := s.conversations[id]
		if !ok {
			err = repository.ErrConversationNotFound

			return
		}
		if at.After(c.LastRead[userID]) {
			c.LastRead[userID] = at
		}
	})

	return err
}

// --- messages ---

type memMessages struct{ memView }

func (r memMessages) Create(_ context.Context, message *entity.Message) (err error) {
	r.do(func(s *memStore) {
		if _, ok := s.conversations[message.ConversationID]; !ok {
			err = repository.ErrConversationNotFound

			return
		}
		for _, m := range s.messages {
			if m.ConversationID == message.ConversationID && m.Seq == message.Seq {
				err = domainerrors.ErrConflict.WrapMessage("duplicate message sequence")

				return
			}
		}
		s.messages = append(s.messages, *message)
	})

	return err
}

func (r memMessages) FindByConversation(_ context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	messages := r.filter(func(m entity.Message) bool { return m.ConversationID == conversationID })
	slices.SortFunc(messages, func(a, b *entity.Message) int { return cmp.Compare(a.Seq, b.Seq) })

	return messages, nil
}

func (r memMessages) FindBySubmission(_ context.Context, submissionID uuid.UUID) ([]*entity.Message, error) {
	messages := r.filter(func(m entity.Message) bool { return m.SubmissionID != nil && *m.SubmissionID == submissionID })
	slices.SortFunc(messages, func(a, b *entity.Message) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.Seq, b.Seq))
	})

	return messages, nil
}

func (r memMessages) filter(keep func(m entity.Message) bool) []*entity.Message {
	var messages []*entity.Message
	r.do(func(s *memStore) {
		for _, m := range s.messages {
			if keep(m) {
				messages = append(messages, &m)
			}
		}
	})

	return messages
}

// --- notifications ---

type memNotifications struct{ memView }

func (r memNotifications) Create(_ context.Context, notification *entity.Notification) error {
	r.do(func(s *memStore) { s.notifications[notification.ID] = *notification })

	return nil
}

func (r memNotifications) FindByID(_ context.Context, id uuid.UUID) (notification *entity.Notification, err error) {
	r.do(func(s *memStore) {
		n, ok := s.notifications[id]
		if !ok {
			err = repository.ErrNotificationNotFound

			return
		}
		notification = &n
	})

	return notification, err
}

// inbox returns one recipient's records newest first. Callers must hold the store.
func (s *memStore) inbox(recipientID uuid.UUID, role entity.RecipientRole) []entity.Notification {
	var records []entity.Notification
	for _, n := range s.notifications {
		if n.RecipientID == recipientID && n.RecipientRole == role {
			records = append(records, n)
		}
	}
	slices.SortFunc(records, func(a, b entity.Notification) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), bytes.Compare(b.ID[:], a.ID[:]))
	})

	return records
}

func (r memNotifications) FindByRecipient(_ context.Context, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var result []*entity.Notification
	r.do(func(s *memStore) {
		skipped := 0
		for _, n := range s.inbox(filter.RecipientID, filter.RecipientRole) {
			if filter.UnreadOnly && n.Read {
				continue
			}
			if skipped < filter.Offset {
				skipped++

				continue
			}
			if filter.Limit > 0 && len(result) == filter.Limit {
				break
			}
			result = append(result, &n)
		}
	})

	return result, nil
}

func (r memNotifications) CountUnread(_ context.Context, recipientID uuid.UUID, role entity.RecipientRole) (count int64, err error) {
	r.do(func(s *memStore) {
		for _, n := range s.inbox(recipientID, role) {
			if !n.Read {
				count++
			}
		}
	})

	return count, nil
}

func (r memNotifications) MarkRead(_ context.Context, id uuid.UUID) error {
	r.do(func(s *memStore) {
		if n, ok := s.notifications[id]; ok {
			n.Read = true
			s.notifications[id] = n
		}
	})

	return nil
}

func (r memNotifications) MarkAllRead(_ context.Context, recipientID uuid.UUID, role entity.RecipientRole) (updated int64, err error) {
	r.do(func(s *memStore) {
		for _, n := range s.inbox(recipientID, role) {
			if !n.Read {
				n.Read = true
				s.notifications[n.ID] = n
				updated++
			}
		}
	})

	return updated, nil
}

func (r memNotifications) Delete(_ context.Context, id uuid.UUID) error {
	r.do(func(s *memStore) { delete(s.notifications, id) })

	return nil
}

func (r memNotifications) PruneOldest(_ context.Context, recipientID uuid.UUID, role entity.RecipientRole, keep int) (pruned int64, err error) {
	r.do(func(s *memStore) {
		records := s.inbox(recipientID, role)
		// Unread records outrank read ones; within each group newer records win.
		slices.SortStableFunc(records, func(a, b entity.Notification) int {
			switch {
			case a.Read == b.Read:
				return 0
			case !a.Read:
				return -1
			default:
				return 1
			}
		})
		for _, n := range records[min(keep, len(records)):] {
			delete(s.notifications, n.ID)
			pruned++
		}
	})

	return pruned, nil
}

// --- submissions ---

type memSubmissions struct{ memView }

func (r memSubmissions) Create(_ context.Context, submission *entity.DiagnosisSubmission) (err error) {
	r.do(func(s *memStore) {
		if _, ok := s.profiles[submission.FarmerID]; !ok {
			err = repository.ErrProfileNotFound

			return
		}
		s.submissions[submission.ID] = *submission
	})

	return err
}

func (r memSubmissions) FindByID(_ context.Context, id uuid.UUID) (submission *entity.DiagnosisSubmission, err error) {
	r.do(func(s *memStore) {
		sub, ok := s.submissions[id]
		if !ok {
			err = repository.ErrSubmissionNotFound

			return
		}
		submission = &sub
	})

	return submission, err
}

func (r memSubmissions) FindAll(_ context.Context, status *entity.SubmissionStatus, limit, offset int) ([]*entity.DiagnosisSubmission, error) {
	all := r.filter(func(sub entity.DiagnosisSubmission) bool { return status == nil || sub.Status == *status })
	if offset >= len(all) {
		return nil, nil
	}

	return all[offset:min(offset+limit, len(all))], nil
}

func (r memSubmissions) FindByFarmer(_ context.Context, farmerID uuid.UUID) ([]*entity.DiagnosisSubmission, error) {
	return r.filter(func(sub entity.DiagnosisSubmission) bool { return sub.FarmerID == farmerID }), nil
}

func (r memSubmissions) filter(keep func(sub entity.DiagnosisSubmission) bool) []*entity.DiagnosisSubmission {
	var result []*entity.DiagnosisSubmission
	r.do(func(s *memStore) {
		for _, sub := range s.submissions {
			if keep(sub) {
				result = append(result, &sub)
			}
		}
	})
	slices.SortFunc(result, func(a, b *entity.DiagnosisSubmission) int { return b.SubmittedAt.Compare(a.SubmittedAt) })

	return result
}

func (r memSubmissions) ApplyReview(_ context.Context, id uuid.UUID, from entity.SubmissionStatus, review repository.SubmissionReview) (err error) {
	r.do(func(s *memStore) {
		sub, ok := s.submissions[id]
		switch {
		case !ok:
			err = repository.ErrSubmissionNotFound
		case sub.Status != from:
			err = repository.ErrSubmissionStatusConflict
		default:
			reviewer, reviewedAt := review.ReviewedBy, review.ReviewedAt
			sub.Status = review.Status
			sub.ExpertFeedback = review.Feedback
			sub.ReviewedBy = &reviewer
			sub.ReviewedAt = &reviewedAt
			s.submissions[id] = sub
		}
	})

	return err
}
