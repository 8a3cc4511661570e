package store

// CreateStoreRequest is the store creation payload. Owner is the id of the
// user the store is assigned to; the creator comes from the token.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
	URL     string `json:"url"`
	Owner   uint   `json:"owner"`
}
