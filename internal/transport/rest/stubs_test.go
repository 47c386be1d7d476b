package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/retroboard-backend/internal/auth"
	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/internal/service/action"
	"github.com/heartmarshall/retroboard-backend/internal/service/card"
	"github.com/heartmarshall/retroboard-backend/internal/service/group"
	"github.com/heartmarshall/retroboard-backend/internal/service/retro"
)

var errNotStubbed = errors.New("not stubbed")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type retroStub struct {
	listFn   func(retro.ListRetrosInput) ([]domain.Retrospective, error)
	createFn func(retro.CreateRetroInput) (domain.Retrospective, error)
	getFn    func(string) (domain.Retrospective, error)
	updateFn func(retro.UpdateRetroInput) (domain.Retrospective, error)
	deleteFn func(string) error
}

func (s *retroStub) ListRetros(_ context.Context, in retro.ListRetrosInput) ([]domain.Retrospective, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(in)
}

func (s *retroStub) CreateRetro(_ context.Context, in retro.CreateRetroInput) (domain.Retrospective, error) {
	if s.createFn == nil {
		return domain.Retrospective{}, errNotStubbed
	}
	return s.createFn(in)
}

func (s *retroStub) GetRetro(_ context.Context, id string) (domain.Retrospective, error) {
	if s.getFn == nil {
		return domain.Retrospective{}, errNotStubbed
	}
	return s.getFn(id)
}

func (s *retroStub) UpdateRetro(_ context.Context, in retro.UpdateRetroInput) (domain.Retrospective, error) {
	if s.updateFn == nil {
		return domain.Retrospective{}, errNotStubbed
	}
	return s.updateFn(in)
}

func (s *retroStub) DeleteRetro(_ context.Context, id string) error {
	if s.deleteFn == nil {
		return errNotStubbed
	}
	return s.deleteFn(id)
}

type cardStub struct {
	listFn          func(retroID, viewer string) ([]domain.CardView, error)
	createFn        func(card.CreateCardInput) (domain.Card, error)
	updateFn        func(card.UpdateCardInput) (domain.Card, error)
	deleteFn        func(string) error
	voteFn          func(card.ToggleVoteInput) (domain.VoteResult, error)
	commentFn       func(card.AddCommentInput) (domain.Comment, error)
	deleteCommentFn func(string) error
}

func (s *cardStub) ListCards(_ context.Context, retroID, viewer string) ([]domain.CardView, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(retroID, viewer)
}

func (s *cardStub) CreateCard(_ context.Context, in card.CreateCardInput) (domain.Card, error) {
	if s.createFn == nil {
		return domain.Card{}, errNotStubbed
	}
	return s.createFn(in)
}

func (s *cardStub) UpdateCard(_ context.Context, in card.UpdateCardInput) (domain.Card, error) {
	if s.updateFn == nil {
		return domain.Card{}, errNotStubbed
	}
	return s.updateFn(in)
}

func (s *cardStub) DeleteCard(_ context.Context, id string) error {
	if s.deleteFn == nil {
		return errNotStubbed
	}
	return s.deleteFn(id)
}

func (s *cardStub) ToggleVote(_ context.Context, in card.ToggleVoteInput) (domain.VoteResult, error) {
	if s.voteFn == nil {
		return domain.VoteResult{}, errNotStubbed
	}
	return s.voteFn(in)
}

func (s *cardStub) AddComment(_ context.Context, in card.AddCommentInput) (domain.Comment, error) {
	if s.commentFn == nil {
		return domain.Comment{}, errNotStubbed
	}
	return s.commentFn(in)
}

func (s *cardStub) DeleteComment(_ context.Context, id string) error {
	if s.deleteCommentFn == nil {
		return errNotStubbed
	}
	return s.deleteCommentFn(id)
}

type actionStub struct {
	listFn   func(string) ([]domain.ActionItem, error)
	createFn func(action.CreateActionInput) (domain.ActionItem, error)
	updateFn func(action.UpdateActionInput) (domain.ActionItem, error)
	toggleFn func(string) (domain.ActionItem, error)
	deleteFn func(string) error
}

func (s *actionStub) ListActions(_ context.Context, retroID string) ([]domain.ActionItem, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(retroID)
}

func (s *actionStub) CreateAction(_ context.Context, in action.CreateActionInput) (domain.ActionItem, error) {
	if s.createFn == nil {
		return domain.ActionItem{}, errNotStubbed
	}
	return s.createFn(in)
}

func (s *actionStub) UpdateAction(_ context.Context, in action.UpdateActionInput) (domain.ActionItem, error) {
	if s.updateFn == nil {
		return domain.ActionItem{}, errNotStubbed
	}
	return s.updateFn(in)
}

func (s *actionStub) ToggleAction(_ context.Context, id string) (domain.ActionItem, error) {
	if s.toggleFn == nil {
		return domain.ActionItem{}, errNotStubbed
	}
	return s.toggleFn(id)
}

func (s *actionStub) DeleteAction(_ context.Context, id string) error {
	if s.deleteFn == nil {
		return errNotStubbed
	}
	return s.deleteFn(id)
}

type groupStub struct {
	listFn   func(string) ([]domain.CardGroup, error)
	createFn func(group.CreateGroupInput) (domain.CardGroup, error)
	renameFn func(id, title string) (domain.CardGroup, error)
	deleteFn func(string) error
	addFn    func(group.MembershipInput) (domain.CardGroup, error)
	removeFn func(group.MembershipInput) (domain.CardGroup, error)
}

func (s *groupStub) ListGroups(_ context.Context, retroID string) ([]domain.CardGroup, error) {
	if s.listFn == nil {
		return nil, errNotStubbed
	}
	return s.listFn(retroID)
}

func (s *groupStub) CreateGroup(_ context.Context, in group.CreateGroupInput) (domain.CardGroup, error) {
	if s.createFn == nil {
		return domain.CardGroup{}, errNotStubbed
	}
	return s.createFn(in)
}

func (s *groupStub) RenameGroup(_ context.Context, id, title string) (domain.CardGroup, error) {
	if s.renameFn == nil {
		return domain.CardGroup{}, errNotStubbed
	}
	return s.renameFn(id, title)
}

func (s *groupStub) DeleteGroup(_ context.Context, id string) error {
	if s.deleteFn == nil {
		return errNotStubbed
	}
	return s.deleteFn(id)
}

func (s *groupStub) AddCard(_ context.Context, in group.MembershipInput) (domain.CardGroup, error) {
	if s.addFn == nil {
		return domain.CardGroup{}, errNotStubbed
	}
	return s.addFn(in)
}

func (s *groupStub) RemoveCard(_ context.Context, in group.MembershipInput) (domain.CardGroup, error) {
	if s.removeFn == nil {
		return domain.CardGroup{}, errNotStubbed
	}
	return s.removeFn(in)
}

type streamStub struct {
	rooms []string
}

func (s *streamStub) Stream(w http.ResponseWriter, _ *http.Request, room string) {
	s.rooms = append(s.rooms, room)
	w.WriteHeader(http.StatusOK)
}

type issuerFunc func(name string) (string, auth.Session, error)

func (f issuerFunc) Issue(name string) (string, auth.Session, error) { return f(name) }

type stubs struct {
	retros  *retroStub
	cards   *cardStub
	actions *actionStub
	groups  *groupStub
	stream  *streamStub
	issuer  sessionIssuer
}

func newStubs() *stubs {
	return &stubs{
		retros:  &retroStub{},
		cards:   &cardStub{},
		actions: &actionStub{},
		groups:  &groupStub{},
		stream:  &streamStub{},
		issuer: issuerFunc(func(string) (string, auth.Session, error) {
			return "", auth.Session{}, errNotStubbed
		}),
	}
}

func (s *stubs) router() http.Handler {
	log := discardLogger()
	return NewRouter(Handlers{
		Health:  NewHealthHandler(&dbPingerMock{}, roomCounterStub(0), "local", "test"),
		Session: NewSessionHandler(s.issuer, log),
		Retro:   NewRetroHandler(s.retros, log),
		Card:    NewCardHandler(s.cards, log),
		Action:  NewActionHandler(s.actions, log),
		Group:   NewGroupHandler(s.groups, log),
		Events:  NewEventsHandler(s.retros, s.stream, log),
	})
}
