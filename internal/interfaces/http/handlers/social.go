package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/techflow/demandmock/internal/http"
)

// SocialMentions handles GET /api/v1/social/mentions. The timeframe query
// parameter is a free-form label echoed into every snapshot; it defaults to
// "24h" and is deliberately not validated.
func (h *Handlers) SocialMentions(w http.ResponseWriter, r *http.Request) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "24h"
	}

	h.writeJSON(w, http.StatusOK, httpContracts.SocialMentionsResponse{
		Status:     "success",
		Timestamp:  time.Now().UTC(),
		SocialData: h.sentiment.Generate(timeframe),
	})
}
