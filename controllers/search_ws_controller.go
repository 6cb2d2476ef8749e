package controllers

import (
	"net/http"
	"sync"

	"github.com/frankiejoetabarrino/punisher/logger"
	"github.com/frankiejoetabarrino/punisher/models"
	"github.com/frankiejoetabarrino/punisher/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// SearchStreamController drives the debounced food search over a
// websocket: keystrokes in, candidate lists out. Each connection owns
// one DebouncedSearcher, so the quiet-period and stale-result rules
// apply per session.
type SearchStreamController struct {
	foods *services.FoodService
}

func NewSearchStreamController(foods *services.FoodService) *SearchStreamController {
	return &SearchStreamController{foods: foods}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

type searchFrame struct {
	Query string `json:"query"`
}

type candidateFrame struct {
	Query      string            `json:"query"`
	Candidates []models.FoodItem `json:"candidates"`
	Error      string            `json:"error,omitempty"`
}

// GET /ws/food-search
func (sc *SearchStreamController) SearchWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	sink := func(u services.SearchUpdate) {
		frame := candidateFrame{Query: u.Query, Candidates: u.Candidates}
		if frame.Candidates == nil {
			frame.Candidates = []models.FoodItem{}
		}
		if u.Err != nil {
			frame.Candidates = []models.FoodItem{}
			frame.Error = "Errore nella ricerca alimenti."
			logger.Warn("food search failed", zap.String("query", u.Query), zap.Error(u.Err))
		}
		writeMu.Lock()
		_ = conn.WriteJSON(frame)
		writeMu.Unlock()
	}

	searcher := services.NewDebouncedSearcher(sc.foods, sink)
	defer searcher.Close()

	// read loop ends on client close/error
	for {
		var frame searchFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		searcher.SetQuery(frame.Query)
	}
}
