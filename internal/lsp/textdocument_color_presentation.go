package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#textDocument_colorPresentation
type ColorPresentationRequest struct {
	Request
	Params ColorPresentationParams `json:"params"`
}

type ColorPresentationParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Color        Color                  `json:"color"`
	Range        Range                  `json:"range"`
}

type ColorPresentationResponse struct {
	Response
	Result []ColorPresentation `json:"result"`
}

type ColorPresentation struct {
	Label string `json:"label"`
}

func NewColorPresentationResponse(id int, presentations []ColorPresentation) ColorPresentationResponse {
	return ColorPresentationResponse{
		Response: Response{
			RPC: RPC_VERSION,
			ID:  &id,
		},
		Result: presentations,
	}
}
