// Package session owns the signed-in lifecycle of the admin client: the
// store-selection bootstrap that decides where "/" lands, the
// create-store modal state, and the global reaction to an expired
// session.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/g-villarinho/flash-buy-admin/internal/apierr"
	"github.com/g-villarinho/flash-buy-admin/internal/catalog"
	"github.com/g-villarinho/flash-buy-admin/internal/querycache"
	"github.com/g-villarinho/flash-buy-admin/internal/screens"
)

// Nav is a navigation instruction for the caller to execute. The zero
// value means stay where you are.
type Nav struct {
	Path string
	// Replace swaps the current history entry instead of pushing one, so
	// back does not bounce through the resolver.
	Replace bool
}

func (n Nav) None() bool { return n.Path == "" }

// LoginNav points at the sign-in screen.
func LoginNav() Nav { return Nav{Path: "/login", Replace: true} }

const firstStoreFreshFor = 30 * time.Second

// Session tracks one signed-in visit.
type Session struct {
	api   *catalog.Client
	cache *querycache.Cache
	modal StoreModal
	log   zerolog.Logger
}

func New(api *catalog.Client, cache *querycache.Cache, log zerolog.Logger) *Session {
	return &Session{api: api, cache: cache, log: log.With().Str("component", "session").Logger()}
}

// Modal exposes the create-store dialog state.
func (s *Session) Modal() *StoreModal { return &s.modal }

// Bootstrap resolves where "/" should land. A user with a store goes to
// that store's dashboard; a user without one stays put with the
// create-store modal open; an expired session goes back to login. The
// lookup is never retried: an unreachable API on the very first screen
// should fail fast, not hang the splash state.
func (s *Session) Bootstrap(ctx context.Context) (Nav, error) {
	store, err := querycache.Fetch(ctx, s.cache, screens.FirstStoreKey(),
		querycache.Options{FreshFor: firstStoreFreshFor, NoRetry: true},
		s.api.FirstStore)
	switch {
	case err == nil:
		s.modal.Close(false)
		return Nav{Path: "/" + store.ID.String(), Replace: true}, nil
	case apierr.IsNotFound(err):
		if !s.modal.HasOpened() {
			s.modal.Open()
		}
		return Nav{}, nil
	case apierr.IsUnauthorized(err):
		return s.expire(), nil
	default:
		return Nav{}, fmt.Errorf("resolve first store: %w", err)
	}
}

// HandleAPIError is the global failure hook screens route their errors
// through. An expired session resets client state and redirects to
// login; everything else is left for the screen to present.
func (s *Session) HandleAPIError(err error) (Nav, bool) {
	if !apierr.IsUnauthorized(err) {
		return Nav{}, false
	}
	return s.expire(), true
}

// LeaveDashboard is called when navigation leaves the store-scoped area
// (deep links, sign-out). It re-arms the modal so the next visit to "/"
// resolves from scratch.
func (s *Session) LeaveDashboard() {
	s.modal.Close(true)
}

func (s *Session) expire() Nav {
	s.log.Info().Msg("session expired, redirecting to login")
	s.modal.Close(true)
	s.cache.Remove(screens.FirstStoreKey())
	s.cache.Remove(screens.StoresKey())
	return LoginNav()
}
