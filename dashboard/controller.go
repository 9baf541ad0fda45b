package dashboard

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/axis-learning/axis-server/session"
)

// State is the shell controller's lifecycle state.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

// Navigator is the controller's outbound port to the user agent: fragment
// rewrites and full-page redirects.
type Navigator interface {
	SetFragment(tab Tab)
	Redirect(target string)
}

// Terminator discards the local session token and navigates to the given
// target. Terminating an absent session is a no-op.
type Terminator func(callbackTarget string)

// Controller gates access to the dashboard and keeps the displayed tab and
// the URL fragment in agreement.
//
// Synchronization runs through two one-directional paths: user-initiated tab
// selection updates state first and then the fragment, while externally
// triggered fragment changes (back/forward, manual edits) update state from
// the URL. Methods are not safe for concurrent use; calls are expected to be
// serialized by the caller's event loop, so every transition observes the
// state left by the prior one.
type Controller struct {
	state       State
	tab         Tab
	sidebarOpen bool

	nav       Navigator
	terminate Terminator

	loginRoute string
	homeRoute  string
}

// NewController returns a controller in the Loading state, pending session
// resolution via Start.
func NewController(nav Navigator, terminate Terminator, loginRoute, homeRoute string) *Controller {
	return &Controller{
		state:      StateLoading,
		tab:        DefaultTab,
		nav:        nav,
		terminate:  terminate,
		loginRoute: loginRoute,
		homeRoute:  homeRoute,
	}
}

// Resolver resolves the current session, suspending until it completes.
type Resolver func(ctx context.Context) *session.Identity

// Start resolves the session and leaves Loading. If ctx is cancelled before
// resolution completes - the user navigated away - the result is discarded
// and no state is touched.
func (c *Controller) Start(ctx context.Context, resolve Resolver, fragment string) {
	identity := resolve(ctx)
	if ctx.Err() != nil {
		return
	}

	if identity == nil {
		c.state = StateUnauthenticated
		c.nav.Redirect(c.loginRoute)
		return
	}

	c.state = StateAuthenticated
	tab, known := ParseTab(fragment)
	c.tab = tab
	if !known {
		// Rewrite so the URL always names a valid tab once authenticated.
		c.nav.SetFragment(tab)
	}
}

// SelectTab handles an explicit tab selection from within the shell. State is
// authoritative here: it updates first, then the fragment is rewritten, then
// the mobile navigation overlay closes.
func (c *Controller) SelectTab(tab Tab) {
	if c.state != StateAuthenticated {
		return
	}
	if _, known := ParseTab(string(tab)); !known {
		log.Debug().Str("tab", string(tab)).Msg("ignoring selection of unknown tab")
		return
	}

	c.tab = tab
	c.nav.SetFragment(tab)
	c.sidebarOpen = false
}

// FragmentChanged handles an external fragment change (browser back/forward
// or a manual edit). The URL is authoritative: a known tab is adopted, an
// unknown one is ignored and the current tab kept.
func (c *Controller) FragmentChanged(fragment string) {
	if c.state != StateAuthenticated {
		return
	}

	tab, known := ParseTab(fragment)
	if !known {
		return
	}
	c.tab = tab
}

// SignOut terminates the session and returns the user to the home page.
func (c *Controller) SignOut() {
	c.state = StateUnauthenticated
	c.terminate(c.homeRoute)
}

// OpenSidebar opens the mobile navigation overlay.
func (c *Controller) OpenSidebar() {
	c.sidebarOpen = true
}

// CloseSidebar closes the mobile navigation overlay.
func (c *Controller) CloseSidebar() {
	c.sidebarOpen = false
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// ActiveTab returns the displayed tab. Only meaningful once authenticated.
func (c *Controller) ActiveTab() Tab {
	return c.tab
}

// SidebarOpen reports whether the mobile navigation overlay is open.
func (c *Controller) SidebarOpen() bool {
	return c.sidebarOpen
}
