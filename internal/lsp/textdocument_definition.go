package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_definition
type DefinitionRequest struct {
	Request
	Params DefinitionParams `json:"params"`
}

type DefinitionParams struct {
	TextDocumentPositionParams
}

// The result is a list because the same color variable may be defined in
// several cached documents.
type DefinitionResponse struct {
	Response
	Result []Location `json:"result"`
}

func NewDefinitionResponse(id int, locations []Location) DefinitionResponse {
	return DefinitionResponse{
		Response: Response{
			RPC: RPC_VERSION,
			ID:  &id,
		},
		Result: locations,
	}
}
