package retroclient

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Session is the one piece of ambient client state: who is acting and
// which retrospective is open.
type Session struct {
	UserName string
	RetroID  string
}

type boardAPI interface {
	GetRetro(ctx context.Context, id string) (Retrospective, error)
	ListCards(ctx context.Context, retroID, userID string) ([]Card, error)
	ListActions(ctx context.Context, retroID string) ([]ActionItem, error)
	ListGroups(ctx context.Context, retroID string) ([]CardGroup, error)
	UpdateCard(ctx context.Context, id string, patch CardPatch) (Card, error)
}

// Store holds one retrospective's board as last fetched from the server.
// Fetched collections replace local state wholesale; there is no merge.
type Store struct {
	api     boardAPI
	session Session
	log     *slog.Logger

	mu      sync.RWMutex
	retro   Retrospective
	cards   []Card
	actions []ActionItem
	groups  []CardGroup
	removed bool

	// Fetch generations per collection. A response older than the newest
	// applied one is discarded.
	cardGen, actionGen, groupGen             uint64
	cardApplied, actionApplied, groupApplied uint64
}

// NewStore creates an empty store for session.RetroID.
func NewStore(api boardAPI, session Session, log *slog.Logger) *Store {
	return &Store{
		api:     api,
		session: session,
		log:     log.With("component", "store", "retro_id", session.RetroID),
	}
}

// Session returns the session the store was created with.
func (s *Store) Session() Session { return s.session }

// Load fetches the retrospective and every collection.
func (s *Store) Load(ctx context.Context) error {
	r, err := s.api.GetRetro(ctx, s.session.RetroID)
	if err != nil {
		return fmt.Errorf("load retrospective: %w", err)
	}
	s.mu.Lock()
	s.retro = r
	s.mu.Unlock()

	if err := s.refetchCards(ctx); err != nil {
		return err
	}
	if err := s.refetchActions(ctx); err != nil {
		return err
	}
	return s.refetchGroups(ctx)
}

// Reconcile re-fetches whatever ev touches. Events for other
// retrospectives and unknown types are ignored. Calling it twice for the
// same event only fetches twice.
func (s *Store) Reconcile(ctx context.Context, ev Event) error {
	if ev.RetroID != s.session.RetroID {
		return nil
	}

	switch ev.Type {
	case "card-added", "card-updated", "card-deleted",
		"vote-changed", "comment-added", "comment-deleted":
		return s.refetchCards(ctx)
	case "action-added", "action-updated", "action-deleted":
		return s.refetchActions(ctx)
	case "group-added", "group-updated", "group-deleted":
		// Membership lives on the cards.
		if err := s.refetchGroups(ctx); err != nil {
			return err
		}
		return s.refetchCards(ctx)
	case "retro-updated":
		r, err := s.api.GetRetro(ctx, s.session.RetroID)
		if err != nil {
			return fmt.Errorf("refetch retrospective: %w", err)
		}
		s.mu.Lock()
		s.retro = r
		s.mu.Unlock()
	case "retro-deleted":
		s.mu.Lock()
		s.removed = true
		s.mu.Unlock()
	default:
		s.log.DebugContext(ctx, "ignoring event", slog.String("type", ev.Type))
	}
	return nil
}

func (s *Store) refetchCards(ctx context.Context) error {
	gen := s.nextGen(&s.cardGen)
	cards, err := s.api.ListCards(ctx, s.session.RetroID, s.session.UserName)
	if err != nil {
		return fmt.Errorf("refetch cards: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.cardApplied {
		s.cards, s.cardApplied = cards, gen
	}
	return nil
}

func (s *Store) refetchActions(ctx context.Context) error {
	gen := s.nextGen(&s.actionGen)
	actions, err := s.api.ListActions(ctx, s.session.RetroID)
	if err != nil {
		return fmt.Errorf("refetch actions: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.actionApplied {
		s.actions, s.actionApplied = actions, gen
	}
	return nil
}

func (s *Store) refetchGroups(ctx context.Context) error {
	gen := s.nextGen(&s.groupGen)
	groups, err := s.api.ListGroups(ctx, s.session.RetroID)
	if err != nil {
		return fmt.Errorf("refetch groups: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.groupApplied {
		s.groups, s.groupApplied = groups, gen
	}
	return nil
}

func (s *Store) nextGen(counter *uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
	return *counter
}

// Retro returns the retrospective and whether it has been deleted.
func (s *Store) Retro() (Retrospective, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.retro, !s.removed
}

// Cards returns a copy of the card collection.
func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards)
}

// Card returns one card by id.
func (s *Store) Card(id string) (Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.cardIndex(id)
	if i < 0 {
		return Card{}, false
	}
	return s.cards[i], true
}

// CardsIn returns the cards of one category in fetch order.
func (s *Store) CardsIn(category string) []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Card
	for _, c := range s.cards {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) Actions() []ActionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.actions)
}

func (s *Store) Groups() []CardGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.groups)
}

func (s *Store) cardIndex(id string) int {
	return slices.IndexFunc(s.cards, func(c Card) bool { return c.ID == id })
}

// ---------------------------------------------------------------------------
// Optimistic category change
// ---------------------------------------------------------------------------

// Outcome tags a Result.
type Outcome int

const (
	Ok Outcome = iota
	Failed
)

func (o Outcome) String() string {
	if o == Ok {
		return "ok"
	}
	return "failed"
}

// Result is the tagged outcome of a mutation. Card is the server's copy on
// Ok; Err is set on Failed.
type Result struct {
	Outcome Outcome
	Card    Card
	Err     error
}

// categoryTransition moves one card between categories. The server drops
// group membership on a category change, so the transition does too.
type categoryTransition struct {
	cardID       string
	fromCategory string
	toCategory   string
	fromGroup    *string
	toGroup      *string
}

func (t categoryTransition) inverse() categoryTransition {
	return categoryTransition{
		cardID:       t.cardID,
		fromCategory: t.toCategory,
		toCategory:   t.fromCategory,
		fromGroup:    t.toGroup,
		toGroup:      t.fromGroup,
	}
}

func (s *Store) apply(t categoryTransition) {
	i := s.cardIndex(t.cardID)
	if i < 0 {
		return
	}
	s.cards[i].Category = t.toCategory
	s.cards[i].GroupID = t.toGroup
}

// ChangeCategory moves a card to category at once, then asks the server.
// On failure the exact inverse of the local change is applied.
func (s *Store) ChangeCategory(ctx context.Context, cardID, category string) Result {
	s.mu.Lock()
	i := s.cardIndex(cardID)
	if i < 0 {
		s.mu.Unlock()
		return Result{Outcome: Failed, Err: fmt.Errorf("card %s not in store", cardID)}
	}
	cur := s.cards[i]
	if cur.Category == category {
		s.mu.Unlock()
		return Result{Outcome: Ok, Card: cur}
	}
	t := categoryTransition{
		cardID:       cardID,
		fromCategory: cur.Category,
		toCategory:   category,
		fromGroup:    cur.GroupID,
	}
	s.apply(t)
	s.mu.Unlock()

	updated, err := s.api.UpdateCard(ctx, cardID, CardPatch{Category: &category})
	if err != nil {
		s.mu.Lock()
		s.apply(t.inverse())
		s.mu.Unlock()
		s.log.WarnContext(ctx, "category change reverted",
			slog.String("card_id", cardID),
			slog.String("error", err.Error()),
		)
		return Result{Outcome: Failed, Err: err}
	}

	s.mu.Lock()
	if j := s.cardIndex(cardID); j >= 0 {
		s.cards[j].Category = updated.Category
		s.cards[j].GroupID = updated.GroupID
		s.cards[j].Content = updated.Content
		updated = s.cards[j]
	}
	s.mu.Unlock()
	return Result{Outcome: Ok, Card: updated}
}
