package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func didOpen(srv *Server, uri, languageID, text string) {
	contents := fmt.Sprintf(
		`{"params": {"textDocument": {"uri": %q, "languageId": %q, "version": 1, "text": %q}}}`,
		uri, languageID, text,
	)
	srv.HandleMessage("textDocument/didOpen", []byte(contents))
}

func TestHandleMessage(t *testing.T) {
	var testCases = []struct {
		method   string
		contents []byte
	}{
		{
			method:   "initialize",
			contents: []byte(`{"id": 1, "params": {"clientInfo": {"name": "TestClient", "version": "1.0"}, "capabilities": {"workspace": {"configuration": false}}}}`),
		},
		{
			method:   "shutdown",
			contents: []byte(`{"id": 1}`),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.method, func(t *testing.T) {
			var buf bytes.Buffer

			server := NewServer("colord", "test", NewState(), &buf)
			server.HandleMessage(tt.method, tt.contents)
			server.Stop()

			switch tt.method {
			case "initialize":
				expectedIn := []string{`"jsonrpc":"2.0"`, `"colorProvider":true`, `"definitionProvider":true`}
				response := buf.String()
				for _, exp := range expectedIn {
					if !strings.Contains(response, exp) {
						t.Errorf("'%s' failed. expected '%s' in '%s'", tt.method, exp, response)
					}
				}

			case "shutdown":
				expectedIn := []string{"Content-Length: 38", `"jsonrpc"`, `"result":null`}
				response := buf.String()
				for _, exp := range expectedIn {
					if !strings.Contains(response, exp) {
						t.Errorf("'%s' failed. expected '%s' in '%s'", tt.method, exp, response)
					}
				}
			}
		})
	}
}

func TestDocumentColor_ReferenceDocument(t *testing.T) {
	var buf bytes.Buffer
	server := NewServer("colord", "test", NewState(), &buf)

	didOpen(server, "file:///theme.json", "json", `{"primary": "#336699"}`)
	didOpen(server, "file:///style.css", "css", `.a { color: var(--primary); }`)

	server.HandleMessage("textDocument/documentColor", []byte(
		`{"id": 7, "params": {"textDocument": {"uri": "file:///style.css"}}}`,
	))
	server.Stop()

	response := buf.String()
	// 0x33/255, 0x66/255 and 0x99/255 are exactly 0.2, 0.4 and 0.6.
	expectedIn := []string{
		`"red":0.2`, `"green":0.4`, `"blue":0.6`, `"alpha":1`,
		// The reference's own range: var(--primary) starts at character 12.
		`"start":{"line":0,"character":12}`,
		`"end":{"line":0,"character":26}`,
	}
	for _, exp := range expectedIn {
		if !strings.Contains(response, exp) {
			t.Errorf("expected '%s' in '%s'", exp, response)
		}
	}
}

func TestDocumentColor_CapAdvisory(t *testing.T) {
	var buf bytes.Buffer
	state := NewState()
	state.Settings.Resolve(Settings{MaxTokens: 2})
	server := NewServer("colord", "test", state, &buf)

	didOpen(server, "file:///theme.json", "json", `{"a": "#ff0000", "b": "#00ff00", "c": "#0000ff"}`)
	server.HandleMessage("textDocument/documentColor", []byte(
		`{"id": 2, "params": {"textDocument": {"uri": "file:///theme.json"}}}`,
	))
	server.Stop()

	response := buf.String()
	if got := strings.Count(response, `"red":`); got != 2 {
		t.Errorf("expected exactly 2 color tokens, got %d in '%s'", got, response)
	}
	if got := strings.Count(response, `"method":"colord/maxTokensReached"`); got != 1 {
		t.Errorf("expected the advisory exactly once, got %d in '%s'", got, response)
	}
	if !strings.Contains(response, `"limit":2`) {
		t.Errorf("expected the configured limit in '%s'", response)
	}
}

func TestColorPresentation(t *testing.T) {
	testCases := []struct {
		name       string
		languageID string
		want       string
	}{
		{"cpp gets triplet", "cpp", `"result":[{"label":"{255,0,0}"}]`},
		{"json gets hex", "json", `"result":[{"label":"#FF0000"}]`},
		{"css gets nothing", "css", `"result":[]`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			server := NewServer("colord", "test", NewState(), &buf)

			didOpen(server, "file:///doc", tt.languageID, "")
			server.HandleMessage("textDocument/colorPresentation", []byte(
				`{"id": 3, "params": {"textDocument": {"uri": "file:///doc"}, "color": {"red": 1, "green": 0, "blue": 0, "alpha": 1}, "range": {"start": {"line": 0, "character": 0}, "end": {"line": 0, "character": 0}}}}`,
			))
			server.Stop()

			if response := buf.String(); !strings.Contains(response, tt.want) {
				t.Errorf("expected '%s' in '%s'", tt.want, response)
			}
		})
	}
}

func TestDefinition_AcrossDocuments(t *testing.T) {
	var buf bytes.Buffer
	server := NewServer("colord", "test", NewState(), &buf)

	didOpen(server, "file:///b.json", "json", `{"primary": "#000000"}`)
	didOpen(server, "file:///a.json", "json", `{"primary": "#ffffff"}`)
	didOpen(server, "file:///style.less", "less", `.a { color: var(--primary); }`)

	server.HandleMessage("textDocument/definition", []byte(
		`{"id": 4, "params": {"textDocument": {"uri": "file:///style.less"}, "position": {"line": 0, "character": 15}}}`,
	))
	server.Stop()

	response := buf.String()
	aIdx := strings.Index(response, `"uri":"file:///a.json"`)
	bIdx := strings.Index(response, `"uri":"file:///b.json"`)
	if aIdx < 0 || bIdx < 0 {
		t.Fatalf("expected both defining documents in '%s'", response)
	}
	if aIdx > bIdx {
		t.Error("expected definitions ordered by URI")
	}
}

func TestDefinition_NonReferenceDocument(t *testing.T) {
	var buf bytes.Buffer
	server := NewServer("colord", "test", NewState(), &buf)

	didOpen(server, "file:///theme.json", "json", `{"primary": "#336699"}`)
	server.HandleMessage("textDocument/definition", []byte(
		`{"id": 5, "params": {"textDocument": {"uri": "file:///theme.json"}, "position": {"line": 0, "character": 2}}}`,
	))
	server.Stop()

	if response := buf.String(); !strings.Contains(response, `"result":[]`) {
		t.Errorf("expected an empty result in '%s'", response)
	}
}

func TestDidChange_RebuildsCache(t *testing.T) {
	var buf bytes.Buffer
	state := NewState()
	server := NewServer("colord", "test", state, &buf)

	didOpen(server, "file:///theme.json", "json", `{"primary": "#336699"}`)
	server.HandleMessage("textDocument/didChange", []byte(
		`{"params": {"textDocument": {"uri": "file:///theme.json", "version": 2}, "contentChanges": [{"text": "{\"primary\": \"#ff0000\"}"}]}}`,
	))
	server.Stop()

	_, variable, ok := state.Colors.Lookup("primary")
	if !ok {
		t.Fatal("expected primary in cache")
	}
	if variable.Color != "#ff0000" {
		t.Errorf("expected the cache to follow the change, got %q", variable.Color)
	}
}

func TestDidClose_DropsCacheEntry(t *testing.T) {
	var buf bytes.Buffer
	state := NewState()
	server := NewServer("colord", "test", state, &buf)

	didOpen(server, "file:///theme.json", "json", `{"primary": "#336699"}`)
	server.HandleMessage("textDocument/didClose", []byte(
		`{"params": {"textDocument": {"uri": "file:///theme.json"}}}`,
	))
	server.Stop()

	if _, _, ok := state.Colors.Lookup("primary"); ok {
		t.Error("expected the cache entry to be dropped on close")
	}
}

func TestConfigurationPull(t *testing.T) {
	var buf bytes.Buffer
	state := NewState()
	server := NewServer("colord", "test", state, &buf)

	server.HandleMessage("initialize", []byte(
		`{"id": 1, "params": {"capabilities": {"workspace": {"configuration": true}}}}`,
	))
	server.HandleMessage("initialized", []byte(`{"params": {}}`))
	server.HandleMessage("", []byte(`{"id": 1, "result": [{"maxTokens": 5, "casing": "Lower"}]}`))
	server.Stop()

	if !strings.Contains(buf.String(), `"method":"workspace/configuration"`) {
		t.Fatalf("expected a configuration request in '%s'", buf.String())
	}

	settings := state.Settings.Get()
	if settings.MaxTokens != 5 {
		t.Errorf("expected maxTokens 5, got %d", settings.MaxTokens)
	}
	if settings.Casing != "Lower" {
		t.Errorf("expected Lower casing, got %q", settings.Casing)
	}
	// Unset lists fall back to the defaults.
	if len(settings.Languages) == 0 || len(settings.CSSLanguages) == 0 {
		t.Errorf("expected default language lists, got %+v", settings)
	}
}

func TestConfigurationPull_ErrorKeepsDefaults(t *testing.T) {
	var buf bytes.Buffer
	state := NewState()
	server := NewServer("colord", "test", state, &buf)

	server.HandleMessage("initialize", []byte(
		`{"id": 1, "params": {"capabilities": {"workspace": {"configuration": true}}}}`,
	))
	server.HandleMessage("initialized", []byte(`{"params": {}}`))
	server.HandleMessage("", []byte(`{"id": 1, "error": {"code": -32601, "message": "nope"}}`))
	server.Stop()

	if got := state.Settings.Get(); got.MaxTokens != DefaultSettings().MaxTokens {
		t.Errorf("expected default settings, got %+v", got)
	}
}

func TestConfigurationRequestIsWellFormed(t *testing.T) {
	var buf bytes.Buffer
	server := NewServer("colord", "test", NewState(), &buf)

	server.HandleMessage("initialize", []byte(
		`{"id": 1, "params": {"capabilities": {"workspace": {"configuration": true}}}}`,
	))
	server.HandleMessage("initialized", []byte(`{"params": {}}`))
	server.Stop()

	// The configuration request is the last framed message, after the
	// initialize response.
	response := buf.String()
	idx := strings.LastIndex(response, "\r\n\r\n")
	if idx < 0 {
		t.Fatalf("no framed message in '%s'", response)
	}
	body := response[idx+4:]

	var decoded struct {
		Method string `json:"method"`
		Params struct {
			Items []struct {
				Section string `json:"section"`
			} `json:"items"`
		} `json:"params"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("configuration request does not decode: %v", err)
	}
	if decoded.Method != "workspace/configuration" {
		t.Errorf("expected workspace/configuration, got %q", decoded.Method)
	}
	if len(decoded.Params.Items) != 1 || decoded.Params.Items[0].Section != "colord" {
		t.Errorf("expected one item for the colord section, got %+v", decoded.Params.Items)
	}
}
