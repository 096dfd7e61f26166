package handler

import (
	"net/http"
)

// Dashboard handles GET /dashboard. The response body is a bare JSON
// array, newest video first.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoSvc.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	summaries := make([]VideoSummary, 0, len(videos))
	for _, v := range videos {
		summaries = append(summaries, VideoSummary{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
		})
	}

	h.writeJSON(w, http.StatusOK, summaries)
}

// Play handles GET /video/{id}/play.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	url, err := h.videoSvc.Play(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.VideosServed.Inc()
	}

	h.writeJSON(w, http.StatusOK, PlayResponse{EmbedURL: url})
}
