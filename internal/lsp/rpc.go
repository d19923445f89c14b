package lsp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const RPC_VERSION = "2.0"

type Request struct {
	RPC    string `json:"jsonrpc"`
	ID     int    `json:"id"`
	Method string `json:"method"`
}

type Response struct {
	RPC string `json:"jsonrpc"`
	ID  *int   `json:"id"`
}

type Notification struct {
	RPC    string `json:"jsonrpc"`
	Method string `json:"method"`
}

// ResponseMessage is an incoming response to a server-issued request. It has
// no method field, so DecodeMessage reports an empty method for it.
type ResponseMessage struct {
	RPC    string          `json:"jsonrpc"`
	ID     *int            `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *ResponseError  `json:"error"`
}

type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func EncodeMessage(msg any) string {
	content, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(content), content)
}

type baseMessage struct {
	Method string `json:"method"`
}

func DecodeMessage(msg []byte) (string, []byte, error) {
	header, content, found := bytes.Cut(msg, []byte{'\r', '\n', '\r', '\n'})
	if !found {
		return "", nil, fmt.Errorf("did not find header separator")
	}

	contentLength, err := parseContentLength(header)
	if err != nil {
		return "", nil, err
	}

	var base baseMessage
	if err := json.Unmarshal(content[:contentLength], &base); err != nil {
		return "", nil, err
	}

	return base.Method, content[:contentLength], nil
}

// Split is a bufio.SplitFunc for Content-Length framed messages.
func Split(data []byte, _ bool) (advance int, token []byte, err error) {
	header, content, found := bytes.Cut(data, []byte{'\r', '\n', '\r', '\n'})
	if !found {
		return 0, nil, nil
	}

	contentLength, err := parseContentLength(header)
	if err != nil {
		return 0, nil, err
	}

	if len(content) < contentLength {
		return 0, nil, nil
	}

	totalLength := len(header) + 4 + contentLength
	return totalLength, data[:totalLength], nil
}

func parseContentLength(header []byte) (int, error) {
	for line := range bytes.Lines(header) {
		key, value, found := bytes.Cut(line, []byte(":"))
		if !found {
			continue
		}
		if string(bytes.TrimSpace(bytes.ToLower(key))) == "content-length" {
			return strconv.Atoi(string(bytes.TrimSpace(value)))
		}
	}
	return 0, fmt.Errorf("missing Content-Length header")
}
