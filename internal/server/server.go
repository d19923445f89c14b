package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/matkrin/colord/internal/lsp"
)

// The advisory should eventually be debounced so a document sitting at the
// limit does not notify on every request.
// TODO: wire maxTokensNotifyInterval into dispatchMessage's advisory send.
const maxTokensNotifyInterval = 5 * time.Minute

type queuedMessage struct {
	method   string
	contents []byte
}

type Server struct {
	name         string
	version      string
	state        State
	writer       io.Writer
	messageQueue chan queuedMessage
	wg           sync.WaitGroup
	mu           sync.Mutex

	// Set from the client capabilities during initialize.
	supportsConfiguration bool
	// ID of the outstanding workspace/configuration request, nil when none.
	pendingConfigID *int
	nextRequestID   int
}

func NewServer(name, version string, state State, writer io.Writer) *Server {
	s := &Server{
		name:          name,
		version:       version,
		state:         state,
		writer:        writer,
		messageQueue:  make(chan queuedMessage),
		nextRequestID: 1,
	}

	s.wg.Add(1)
	go s.run()

	return s
}

func (s *Server) run() {
	defer s.wg.Done()
	for msg := range s.messageQueue {
		s.dispatchMessage(msg.method, msg.contents)
	}
}

func (s *Server) HandleMessage(method string, contents []byte) {
	// The scanner reuses its buffer, so the contents must be copied before
	// they cross the goroutine boundary.
	s.messageQueue <- queuedMessage{method: method, contents: bytes.Clone(contents)}
}

func (s *Server) Stop() {
	close(s.messageQueue)
	s.wg.Wait()
}

func (s *Server) dispatchMessage(method string, contents []byte) {
	slog.Info("Received message", "method", method)

	switch method {
	case "initialize":
		var request lsp.InitializeRequest
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}

		if request.Params.ClientInfo != nil {
			slog.Info("Connected to client",
				"name", request.Params.ClientInfo.Name,
				"version", request.Params.ClientInfo.Version,
			)
		}

		s.supportsConfiguration = request.Params.Capabilities.Workspace.Configuration

		capabilities := lsp.ServerCapabilities{
			TextDocumentSync:   1,
			DefinitionProvider: true,
			ColorProvider:      true,
		}
		info := lsp.ServerInfo{
			Name:    s.name,
			Version: s.version,
		}

		msg := lsp.NewInitializeResponse(request.ID, &capabilities, &info)
		s.writeResponse(msg)

	case "initialized":
		if s.supportsConfiguration {
			s.requestConfiguration()
		}

	case "":
		// A message without a method is a response to a server-issued
		// request; the only one outstanding is the configuration pull.
		var response lsp.ResponseMessage
		if err := json.Unmarshal(contents, &response); err != nil {
			slog.Error("Could not parse response message")
			return
		}
		s.handleResponse(&response)

	case "workspace/didChangeConfiguration":
		// Settings are cached after the first resolve for the life of the
		// process, later changes are not observed.
		slog.Warn("Ignoring configuration change, settings are fixed after startup")

	case "shutdown":
		var request lsp.ShutdownRequest
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}

		slog.Info("Received shutdown request")
		s.state.ShutdownRequested = true

		response := lsp.ShutdownResponse{
			Response: lsp.Response{
				RPC: lsp.RPC_VERSION,
				ID:  &request.ID,
			},
			Result: nil,
		}
		s.writeResponse(response)

	case "exit":
		slog.Info("Exiting")
		if s.state.ShutdownRequested {
			os.Exit(0)
		} else {
			slog.Warn("Exiting without preceding shutdown request")
			os.Exit(1)
		}

	case "textDocument/didOpen":
		var request lsp.DidOpenTextDocumentNotification
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}

		document := request.Params.TextDocument
		slog.Info("Opened document", "URI", document.URI, "languageId", document.LanguageID)
		s.state.OpenDocument(document.URI, document.LanguageID, document.Version, document.Text)
		s.updateColorCache(document.URI)

	case "textDocument/didChange":
		var request lsp.TextDocumentDidChangeNotification
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}

		uri := request.Params.TextDocument.URI
		slog.Info("Changed document", "URI", uri)

		for _, change := range request.Params.ContentChanges {
			s.state.UpdateDocument(uri, request.Params.TextDocument.Version, change.Text)
		}
		s.updateColorCache(uri)

	case "textDocument/didClose":
		var request lsp.DidCloseTextDocumentNotification
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}

		uri := request.Params.TextDocument.URI
		slog.Info("Closed document", "URI", uri)
		s.state.CloseDocument(uri)
		s.state.Colors.Remove(uri)

	case "textDocument/documentColor":
		var request lsp.DocumentColorRequest
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}
		response, advisory := handleDocumentColor(&request, &s.state)
		if response != nil {
			s.writeResponse(response)
		}
		if advisory != nil {
			s.writeResponse(advisory)
		}

	case "textDocument/colorPresentation":
		var request lsp.ColorPresentationRequest
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}
		response := handleColorPresentation(&request, &s.state)
		if response != nil {
			s.writeResponse(response)
		}

	case "textDocument/definition":
		var request lsp.DefinitionRequest
		if err := json.Unmarshal(contents, &request); err != nil {
			slog.Error("Could not parse request", "method", method)
		}
		response := handleDefinition(&request, &s.state)
		if response != nil {
			s.writeResponse(response)
		}
	}
}

// updateColorCache rebuilds the token cache entry for color defining
// documents. Reference language documents are never cached.
func (s *Server) updateColorCache(uri string) {
	document := s.state.Documents[uri]
	if !s.state.Settings.Get().IsColorLanguage(document.LanguageID) {
		return
	}
	s.state.Colors.Update(uri, document.Text)
}

func (s *Server) requestConfiguration() {
	id := s.nextRequestID
	s.nextRequestID++
	s.pendingConfigID = &id

	request := lsp.NewConfigurationRequest(id, "colord")
	slog.Info("Requesting configuration", "id", id)
	s.writeResponse(request)
}

func (s *Server) handleResponse(response *lsp.ResponseMessage) {
	if s.pendingConfigID == nil || response.ID == nil || *response.ID != *s.pendingConfigID {
		slog.Warn("Dropping unexpected response message")
		return
	}
	s.pendingConfigID = nil

	if response.Error != nil {
		slog.Error("Configuration request failed, using defaults",
			"code", response.Error.Code,
			"message", response.Error.Message,
		)
		return
	}

	// One settings value per requested configuration item.
	var results []json.RawMessage
	if err := json.Unmarshal(response.Result, &results); err != nil || len(results) == 0 {
		slog.Error("Could not parse configuration result, using defaults")
		return
	}

	var settings Settings
	if err := json.Unmarshal(results[0], &settings); err != nil {
		slog.Error("Could not parse settings, using defaults", "err", err)
		return
	}

	s.state.Settings.Resolve(settings)
	slog.Info("Settings resolved", "maxTokens", s.state.Settings.Get().MaxTokens)
}

func (s *Server) writeResponse(msg any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := lsp.EncodeMessage(msg)
	s.writer.Write([]byte(reply))
}
