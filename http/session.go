package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookie = "rvr_session"

// sessionMiddleware issues the session cookie and keeps its backing row
// alive. There is no auth on top of this yet; it is cookie scaffolding only.
// Store errors never fail the request.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		fresh := err != nil || sid == ""
		if fresh {
			sid = uuid.NewString()
		}

		if s.sessions != nil {
			if !fresh {
				// a cookie pointing at an expired or pruned row gets replaced
				if _, err := s.sessions.GetSession(c.Request.Context(), sid); err != nil {
					sid = uuid.NewString()
					fresh = true
				}
			}

			expiresAt := time.Now().Add(s.cfg.SessionTTL)
			if err := s.sessions.TouchSession(c.Request.Context(), sid, expiresAt); err != nil {
				s.logger.Warn("session touch failed", zap.String("sid", sid), zap.Error(err))
			}
		}

		if fresh {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sid, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
		}

		c.Set("session_id", sid)
		c.Next()
	}
}
