package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/maxandsherry/storefront/internal/domain"
	"github.com/maxandsherry/storefront/internal/envelope"
	"github.com/maxandsherry/storefront/internal/logging"
)

type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListAvailable(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list menu", err)
		return
	}

	logging.FromContext(r.Context(), h.logger).Info("menu listed", "count", len(items))
	envelope.WriteData(w, h.logger, http.StatusOK, "", items)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Item not found")
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		envelope.WriteError(w, h.logger, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get menu item", err)
		return
	}

	logger.Info("menu item retrieved", "item_id", item.ID)
	envelope.WriteData(w, h.logger, http.StatusOK, "", item)
}

func (h *Handler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")

	items, err := h.store.ListByCategory(r.Context(), category)
	if err != nil {
		h.internalError(w, r, "failed to list menu category", err)
		return
	}

	logging.FromContext(r.Context(), h.logger).Info("menu category listed", "category", category, "count", len(items))
	envelope.WriteData(w, h.logger, http.StatusOK, "", items)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logging.FromContext(r.Context(), h.logger).Error(msg, "error", err)
	envelope.WriteError(w, h.logger, http.StatusInternalServerError, "Internal server error")
}
