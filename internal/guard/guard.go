package guard

import (
	"net/http"
	"net/url"
	"strings"

	"civic_backend/internal/config"

	"github.com/rs/zerolog"
)

// Cookie names are part of the contract; presence and absence of these
// cookies drive every guard decision.
const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
	CookieUserID       = "user_id"
	CookieOrgID        = "org_id"
)

// TokenVerifier - cheap access token validity check. Signature and expiry
// only; the guard never reaches the session store.
type TokenVerifier interface {
	VerifyAccessToken(token string) error
}

// Decision - the outcome of one guard evaluation. Either the request is
// allowed through unmodified or it is redirected; nothing else.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Guard - per-request auth state machine evaluated in front of the routers.
// Holds no mutable state; safe for concurrent requests.
type Guard struct {
	classifier *Classifier
	cfg        config.GuardConfig
	verifier   TokenVerifier
	log        zerolog.Logger
}

func New(cfg config.GuardConfig, verifier TokenVerifier, log zerolog.Logger) *Guard {
	return &Guard{
		classifier: NewClassifier(cfg),
		cfg:        cfg,
		verifier:   verifier,
		log:        log,
	}
}

// Decide - evaluates the transition rules in fixed order; the first match
// wins. Pure over its inputs so the same request state always yields the
// same decision.
func (g *Guard) Decide(path string, query url.Values, authed bool, hasOrg bool) Decision {
	category, matched := g.classifier.Classify(path)
	if !matched {
		g.log.Warn().Str("path", path).Msg("path matches no classification rule, allowing")
	}

	// 1. Protected and unauthenticated: to login, keeping the original
	// path as a return-to parameter.
	if category == CategoryProtected && !authed {
		return redirect(g.loginRedirect(path))
	}

	// 2. Authenticated without an organization context on a protected
	// path: to onboarding. Organization-creation paths classify as their
	// own category, so they never hit this rule.
	if category == CategoryProtected && !hasOrg {
		return redirect(g.cfg.OnboardingPath())
	}

	// 3. Unauthenticated-only paths bounce authenticated users to the
	// dashboard root.
	if category == CategoryUnauthOnly && authed {
		return redirect(g.cfg.DashboardPath())
	}

	// 4. Organization creation is over once the user has an organization.
	if category == CategoryOrgCreation && authed && hasOrg {
		return redirect(g.cfg.DashboardPath())
	}

	// 5. Landing on the dashboard root with a pending return-to: honor it
	// only when the target itself classifies protected. Anything else is
	// dropped, which doubles as an open redirect guard.
	if path == g.cfg.DashboardPath() && authed {
		if target := query.Get(g.cfg.RedirectParam()); target != "" && target != path {
			if targetCategory, _ := g.classifier.Classify(target); targetCategory == CategoryProtected {
				return redirect(target)
			}
		}
	}

	return allow()
}

// Middleware - mounts the guard in front of a handler chain. Excluded
// prefixes (API routes, static assets) pass straight through. Cookie state
// is read fail-closed: missing, partial or unverifiable credentials count
// as unauthenticated, never as an error.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if g.excluded(path) {
			next.ServeHTTP(w, r)
			return
		}

		decision := g.Decide(path, r.URL.Query(), g.authenticated(r), g.hasOrganization(r))
		if !decision.Allow {
			http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g *Guard) excluded(path string) bool {
	for _, prefix := range g.cfg.ExcludedPrefixes() {
		if path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/") {
			return true
		}
	}
	return false
}

// authenticated - both token cookies present and the access token verifying.
// A partial cookie pair is treated as unauthenticated.
func (g *Guard) authenticated(r *http.Request) bool {
	access, err := r.Cookie(CookieAccessToken)
	if err != nil || access.Value == "" {
		return false
	}

	refresh, err := r.Cookie(CookieRefreshToken)
	if err != nil || refresh.Value == "" {
		return false
	}

	return g.verifier.VerifyAccessToken(access.Value) == nil
}

func (g *Guard) hasOrganization(r *http.Request) bool {
	org, err := r.Cookie(CookieOrgID)
	return err == nil && org.Value != ""
}

func (g *Guard) loginRedirect(returnTo string) string {
	query := url.Values{}
	query.Set(g.cfg.RedirectParam(), returnTo)
	return g.cfg.LoginPath() + "?" + query.Encode()
}
