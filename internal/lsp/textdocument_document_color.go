package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_documentColor
type DocumentColorRequest struct {
	Request
	Params DocumentColorParams `json:"params"`
}

type DocumentColorParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type DocumentColorResponse struct {
	Response
	Result []ColorInformation `json:"result"`
}

type ColorInformation struct {
	Range Range `json:"range"`
	Color Color `json:"color"`
}

type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

func NewDocumentColorResponse(id int, colors []ColorInformation) DocumentColorResponse {
	return DocumentColorResponse{
		Response: Response{
			RPC: RPC_VERSION,
			ID:  &id,
		},
		Result: colors,
	}
}
