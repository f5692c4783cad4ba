package profile

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/corerestore/internal/platform/logging"
)

const profilesCollection = "profiles"

// firestoreProfile is the Firestore document. The profile itself travels as
// one opaque JSON record under StateKey.
type firestoreProfile struct {
	State     string    `firestore:"profile_state"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

func (s *FirestoreStore) doc(userID string) *firestore.DocumentRef {
	return s.client.Collection(profilesCollection).Doc(userID)
}

// Create stores an empty profile, failing if one exists.
func (s *FirestoreStore) Create(ctx context.Context, userID string) (*UserProfile, error) {
	docRef := s.doc(userID)
	now := s.now().UTC()
	p := NewStore(UserProfile{}).Snapshot()

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		state, err := encodeState(p)
		if err != nil {
			return err
		}
		return tx.Set(docRef, firestoreProfile{State: state, CreatedAt: now, UpdatedAt: now})
	})
	audit(ctx, "create", userID, err)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get loads a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*UserProfile, error) {
	doc, err := s.doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := readDoc(doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies fn inside a transaction. Nothing is written when fn fires no
// setter.
func (s *FirestoreStore) Update(ctx context.Context, userID, action string, fn Mutation) (*UserProfile, error) {
	docRef := s.doc(userID)

	var result UserProfile
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		current, err := readDoc(doc)
		if err != nil {
			return err
		}
		next, changed, err := applyMutation(current, fn)
		if err != nil {
			return err
		}
		result = next
		if !changed {
			return nil
		}

		state, err := encodeState(next)
		if err != nil {
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: StateKey, Value: state},
			{Path: "updated_at", Value: s.now().UTC()},
		})
	})
	audit(ctx, action, userID, err)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func readDoc(doc *firestore.DocumentSnapshot) (UserProfile, error) {
	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return UserProfile{}, err
	}
	p, err := decodeState(fp.State)
	if err != nil {
		return UserProfile{}, err
	}
	return NewStore(p).Snapshot(), nil
}

func audit(ctx context.Context, action, userID string, err error) {
	ev := applog.AuditEvent{
		Action:       action,
		UserID:       userID,
		ResourceType: "profile",
		ResourceID:   userID,
		Result:       applog.AuditSuccess,
	}
	if err != nil {
		ev.Result = applog.AuditFailure
		ev.Details = map[string]any{"error": categorizeError(err)}
	}
	applog.LogAuditEvent(ctx, ev)
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
