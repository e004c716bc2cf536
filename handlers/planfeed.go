package handlers

import (
	"log"
	"net/http"

	"mealprep-server/auth"
	"mealprep-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// PlanFeedHandler upgrades authenticated clients to a websocket that
// receives plan_created events for their own plans.
type PlanFeedHandler struct {
	mgr    *ws.Manager
	tokens *auth.TokenService
}

func NewPlanFeedHandler(mgr *ws.Manager, tokens *auth.TokenService) *PlanFeedHandler {
	return &PlanFeedHandler{mgr: mgr, tokens: tokens}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandlePlanFeedWS handles GET /ws/plans?token=<token>. The token may also
// come in the usual x-auth-token header; the query form exists because
// browser websocket clients cannot set headers.
func (h *PlanFeedHandler) HandlePlanFeedWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("x-auth-token")
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token, authorization denied"})
		return
	}

	userID, err := h.tokens.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token is not valid"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(userID, conn)
	log.Printf("plan feed connected: user %s", userID)

	defer func() {
		h.mgr.Unregister(userID, conn)
		log.Printf("plan feed disconnected: user %s", userID)
	}()

	// The feed is push-only; drain client frames until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("plan feed read error for user %s: %v", userID, err)
			}
			return
		}
	}
}

// GetConnectedUsers handles GET /api/feed/connected.
func (h *PlanFeedHandler) GetConnectedUsers(c *gin.Context) {
	users := h.mgr.ConnectedUsers()
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "count": len(users)})
}
