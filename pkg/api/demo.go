package api

// MessageResponse представляет простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ModelResponse представляет ответ GET /models/{model_name}
type ModelResponse struct {
	ModelName string `json:"model_name"`
	Message   string `json:"message"`
}

// ListItem представляет элемент статического списка item'ов
type ListItem struct {
	ItemName string `json:"item_name"`
}

// ItemResponse представляет ответ GET /items/{item_id}
type ItemResponse struct {
	ItemID      string `json:"item_id"`
	Q           string `json:"q,omitempty"`
	Description string `json:"description,omitempty"`
}

// Item представляет item, создаваемый через POST /items/
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax,omitempty"`
}

// OwnedItem представляет элемент ответа GET /users/me/items
type OwnedItem struct {
	ItemID string `json:"item_id"`
	Owner  string `json:"owner"`
}

// PasswordHashResponse представляет ответ GET /passwordhash
type PasswordHashResponse struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}
