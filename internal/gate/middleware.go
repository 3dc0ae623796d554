package gate

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/domain"
)

// SessionSource resolves the caller's session from the auth backend. A nil
// session with a nil error means the caller is anonymous.
type SessionSource interface {
	GetSession(ctx context.Context, cookie string) (*domain.Session, error)
}

// sessionCtxKey carries the resolved session through the handler chain.
type ctxKey string

const sessionCtxKey ctxKey = "gate.session"

// SessionFromContext returns the session stored by Middleware, or nil for
// anonymous callers and unguarded routes.
func SessionFromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionCtxKey).(*domain.Session)
	return s
}

// Middleware gates protected routes. For each navigation it resolves the
// session with a bounded wait, evaluates Decide, and either continues the
// chain (stashing the session in the request context) or issues a 302.
//
// Lookup errors and timeouts are treated as "not authenticated": the gate
// fails closed, never open.
func Middleware(source SessionSource, lookupTimeout time.Duration, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !Protected(path) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
		defer cancel()

		session, err := source.GetSession(ctx, c.GetHeader("Cookie"))
		if err != nil {
			logger.Printf("gate: session lookup failed, treating as anonymous: %v", err)
			session = nil
		}

		role := domain.RoleAnonymous
		if session != nil {
			role = session.User.Role
		}

		decision := Decide(path, role, session != nil)
		if !decision.Allowed() {
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
			return
		}

		if session != nil {
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), sessionCtxKey, session))
		}
		c.Next()
	}
}
