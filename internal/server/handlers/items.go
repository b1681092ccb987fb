package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/authdemo/pkg/api"
)

// demoItems — статический список item'ов демо-сервиса
var demoItems = []api.ListItem{
	{ItemName: "Foo"},
	{ItemName: "Bar"},
	{ItemName: "Baz"},
}

// ItemsHandler обрабатывает демонстрационные /items запросы
type ItemsHandler struct {
	logger *slog.Logger
}

// NewItemsHandler создает новый handler для /items
func NewItemsHandler(logger *slog.Logger) *ItemsHandler {
	return &ItemsHandler{
		logger: logger,
	}
}

// List обрабатывает GET /items/ (защищенный)
// Пейджинг по query параметрам skip и limit
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		sendError(h.logger, w, "skip must be an integer", http.StatusBadRequest)
		return
	}

	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		sendError(h.logger, w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	if skip < 0 || limit < 0 {
		sendError(h.logger, w, "skip and limit must not be negative", http.StatusBadRequest)
		return
	}

	if skip > len(demoItems) {
		skip = len(demoItems)
	}
	end := skip + limit
	if end > len(demoItems) {
		end = len(demoItems)
	}

	sendJSON(h.logger, w, demoItems[skip:end], http.StatusOK)
}

// Get обрабатывает GET /items/{item_id} (публичный)
// Эхо item'а с опциональными параметрами q и short
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("item_id")

	short := false
	if v := r.URL.Query().Get("short"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			sendError(h.logger, w, "short must be a boolean", http.StatusBadRequest)
			return
		}
		short = parsed
	}

	resp := api.ItemResponse{
		ItemID: itemID,
		Q:      r.URL.Query().Get("q"),
	}
	if !short {
		resp.Description = "This is an amazing item that has a long description"
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /items/ (защищенный)
// Возвращает item с добавленной подписью автора
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := GetIdentity(ctx)
	if !ok {
		sendUnauthorized(h.logger, w, "could not validate credentials")
		return
	}

	var item api.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.logger.WarnContext(ctx, "failed to decode item", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if item.Name == "" {
		sendError(h.logger, w, "name is required", http.StatusBadRequest)
		return
	}

	item.Description += "\n by " + identity.Username

	sendJSON(h.logger, w, item, http.StatusOK)
}

// queryInt читает целочисленный query параметр с значением по умолчанию
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
