package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#initialize
type InitializeRequest struct {
	Request
	Params InitializeRequestParams `json:"params"`
}

type InitializeRequestParams struct {
	ProcessID             *int               `json:"processId"`
	ClientInfo            *ClientInfo        `json:"clientInfo"`
	Locale                string             `json:"locale"`
	RootPath              *string            `json:"rootPath"`
	RootURI               *string            `json:"rootUri"`
	Trace                 *string            `json:"trace"`
	Capabilities          ClientCapabilities `json:"capabilities"`
	WorkspaceFolders      []WorkspaceFolder  `json:"workspaceFolders"`
	InitializationOptions *any               `json:"initializationOptions"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ClientCapabilities struct {
	Workspace WorkspaceClientCapabilities `json:"workspace"`
}

type WorkspaceClientCapabilities struct {
	// Whether the client supports `workspace/configuration` requests.
	Configuration bool `json:"configuration"`
}

type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

type InitializeResponse struct {
	Response
	Result InitializeResult `json:"result"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#initializeResult
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ServerCapabilities struct {
	TextDocumentSync   int  `json:"textDocumentSync"`
	DefinitionProvider bool `json:"definitionProvider"`
	ColorProvider      bool `json:"colorProvider"`
}

func NewInitializeResponse(id int, capabilities *ServerCapabilities, info *ServerInfo) InitializeResponse {
	return InitializeResponse{
		Response: Response{
			RPC: RPC_VERSION,
			ID:  &id,
		},
		Result: InitializeResult{
			Capabilities: *capabilities,
			ServerInfo:   *info,
		},
	}
}
