package session

import (
	"context"
	"sync"
)

// AuthState is the authentication slice of the client state. The zero value
// is the signed-out default.
type AuthState struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

func (a AuthState) IsAuthenticated() bool {
	return a.AccessToken != "" && a.RefreshToken != ""
}

// State is the whole client state held by Store.
type State struct {
	Auth AuthState
}

func (s State) clone() State {
	if s.Auth.User != nil {
		u := *s.Auth.User
		s.Auth.User = &u
	}
	return s
}

// Action is anything that can be dispatched to a Store.
type Action interface {
	Type() string
}

// TokensRefreshed carries a freshly issued token pair. A nil User keeps the
// user already in state.
type TokensRefreshed struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

// RefreshFailed records an unsuccessful refresh; the session is signed out.
type RefreshFailed struct {
	Err error
}

type LoggedOut struct{}

func (TokensRefreshed) Type() string { return "auth/tokensRefreshed" }
func (RefreshFailed) Type() string   { return "auth/refreshFailed" }
func (LoggedOut) Type() string       { return "auth/loggedOut" }

// Reducer computes the next state. It must not mutate its input.
type Reducer func(State, Action) State

func rootReducer(s State, a Action) State {
	s.Auth = authReducer(s.Auth, a)
	return s
}

func authReducer(s AuthState, a Action) AuthState {
	switch act := a.(type) {
	case TokensRefreshed:
		s.AccessToken = act.AccessToken
		s.RefreshToken = act.RefreshToken
		if act.User != nil {
			u := *act.User
			s.User = &u
		}
		return s
	case RefreshFailed, LoggedOut:
		return AuthState{}
	}
	return s
}

type DispatchFunc func(ctx context.Context, a Action)

// Middleware wraps dispatch. It sees the store so it can read state after
// calling next.
type Middleware func(s *Store, next DispatchFunc) DispatchFunc

// Thunk is an asynchronous action: it may do I/O and dispatch any number of
// plain actions.
type Thunk func(ctx context.Context, s *Store) error

// Store is the client's central state container. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	state    State
	reducer  Reducer
	dispatch DispatchFunc

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// NewStore builds a store holding preloaded. Middlewares run in the order
// given, the first one outermost.
func NewStore(preloaded State, middlewares ...Middleware) *Store {
	s := &Store{
		state:   preloaded.clone(),
		reducer: rootReducer,
		subs:    make(map[int]func(State)),
	}

	d := DispatchFunc(s.reduce)
	for i := len(middlewares) - 1; i >= 0; i-- {
		d = middlewares[i](s, d)
	}
	s.dispatch = d
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) Dispatch(ctx context.Context, a Action) {
	s.dispatch(ctx, a)
}

func (s *Store) Run(ctx context.Context, t Thunk) error {
	return t(ctx, s)
}

// Subscribe registers fn to be called with the new state after every
// dispatched action. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) reduce(_ context.Context, a Action) {
	s.mu.Lock()
	s.state = s.reducer(s.state, a)
	next := s.state.clone()
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
