package lsp

// Server to client advisory, sent when color detection truncated its result
// at the configured token limit. Namespaced under the server's own method
// prefix so clients that do not know it can ignore it.
type MaxTokensReachedNotification struct {
	Notification
	Params MaxTokensReachedParams `json:"params"`
}

type MaxTokensReachedParams struct {
	Limit int `json:"limit"`
}

func NewMaxTokensReachedNotification(limit int) MaxTokensReachedNotification {
	return MaxTokensReachedNotification{
		Notification: Notification{
			RPC:    RPC_VERSION,
			Method: "colord/maxTokensReached",
		},
		Params: MaxTokensReachedParams{
			Limit: limit,
		},
	}
}
