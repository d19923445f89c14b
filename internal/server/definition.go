package server

import (
	"github.com/matkrin/colord/internal/lsp"
	"github.com/matkrin/colord/internal/token"
)

// handleDefinition jumps from a var(--name) reference in a CSS family
// document to the cached definition sites of that name, one location per
// color defining document. Non CSS documents get an empty result.
func handleDefinition(request *lsp.DefinitionRequest, state *State) *lsp.DefinitionResponse {
	uri := request.Params.TextDocument.URI
	document := state.Documents[uri]
	settings := state.Settings.Get()

	locations := []lsp.Location{}
	if settings.IsCSSLanguage(document.LanguageID) {
		pos := token.Position{
			Line:      request.Params.Position.Line,
			Character: request.Params.Position.Character,
		}
		for _, def := range state.Colors.ResolveDefinition(document.Text, pos) {
			locations = append(locations, lsp.Location{
				URI:   def.URI,
				Range: toLSPRange(def.Range),
			})
		}
	}

	response := lsp.NewDefinitionResponse(request.ID, locations)
	return &response
}
