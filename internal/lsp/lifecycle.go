package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#shutdown
type ShutdownRequest struct {
	Request
}

type ShutdownResponse struct {
	Response
	Result any `json:"result"`
}
