package server

import (
	"github.com/matkrin/colord/internal/lsp"
	"github.com/matkrin/colord/internal/token"
)

// handleDocumentColor answers a textDocument/documentColor request. For CSS
// family documents the result comes from reference resolution against the
// color cache; for color languages from literal detection. The second
// return value is non-nil when detection hit the configured token limit.
func handleDocumentColor(request *lsp.DocumentColorRequest, state *State) (*lsp.DocumentColorResponse, *lsp.MaxTokensReachedNotification) {
	uri := request.Params.TextDocument.URI
	document := state.Documents[uri]
	settings := state.Settings.Get()

	var tokens []token.Token
	var capped bool
	if class := settings.Classify(document.LanguageID); class == token.ClassReference {
		tokens = state.Colors.ResolveReferences(document.Text)
	} else {
		tokens, capped = token.Detect(document.Text, class, settings.MaxTokens)
	}

	colors := make([]lsp.ColorInformation, 0, len(tokens))
	for _, t := range tokens {
		colors = append(colors, lsp.ColorInformation{
			Range: toLSPRange(t.Range),
			Color: toLSPColor(t.Color),
		})
	}

	response := lsp.NewDocumentColorResponse(request.ID, colors)

	var advisory *lsp.MaxTokensReachedNotification
	if capped {
		notification := lsp.NewMaxTokensReachedNotification(settings.MaxTokens)
		advisory = &notification
	}
	return &response, advisory
}

// handleColorPresentation renders a picked color back into the document's
// textual form: an integer triplet for C++ family documents, a hex literal
// in the configured casing for other color languages. CSS family documents
// get no presentations, their colors live in the referenced definitions.
func handleColorPresentation(request *lsp.ColorPresentationRequest, state *State) *lsp.ColorPresentationResponse {
	uri := request.Params.TextDocument.URI
	document := state.Documents[uri]
	settings := state.Settings.Get()
	color := fromLSPColor(request.Params.Color)

	presentations := make([]lsp.ColorPresentation, 0, 1)
	switch settings.Classify(document.LanguageID) {
	case token.ClassCPP:
		presentations = append(presentations, lsp.ColorPresentation{Label: color.Triplet()})
	case token.ClassColor:
		presentations = append(presentations, lsp.ColorPresentation{Label: color.Hex(settings.Casing)})
	}

	response := lsp.NewColorPresentationResponse(request.ID, presentations)
	return &response
}

func toLSPRange(r token.Range) lsp.Range {
	return lsp.NewRange(r.Start.Line, r.Start.Character, r.End.Line, r.End.Character)
}

func toLSPColor(c token.Color) lsp.Color {
	return lsp.Color{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}

func fromLSPColor(c lsp.Color) token.Color {
	return token.Color{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}
