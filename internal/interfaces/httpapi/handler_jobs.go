package httpapi

import "net/http"

func (h *Handler) RunSyncToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncToday")
	defer span.End()

	synced, err := h.syncService.SyncTodayFixtures(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual today sync failed", "date", h.syncService.Today(), "error", err)
		writeError(ctx, w, err, "Failed to sync today fixtures")
		return
	}

	writeJSON(ctx, w, http.StatusOK, syncResultDTO{Success: true, Synced: synced})
}
