package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_configuration
//
// Server to client request. The client answers with a plain response message
// whose result is one settings value per requested item.
type ConfigurationRequest struct {
	Request
	Params ConfigurationParams `json:"params"`
}

type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

type ConfigurationItem struct {
	ScopeURI *string `json:"scopeUri,omitempty"`
	Section  string  `json:"section,omitempty"`
}

func NewConfigurationRequest(id int, section string) ConfigurationRequest {
	return ConfigurationRequest{
		Request: Request{
			RPC:    RPC_VERSION,
			ID:     id,
			Method: "workspace/configuration",
		},
		Params: ConfigurationParams{
			Items: []ConfigurationItem{{Section: section}},
		},
	}
}
