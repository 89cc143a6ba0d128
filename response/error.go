// response/error.go
// This package provides utility functions and structures for handling and categorizing HTTP responses.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// HTTPError represents a resource request that failed after the allowed retry.
// The raw response body is preserved verbatim so the caller can surface diagnostic
// detail; Message is a best-effort summary extracted from the body.
type HTTPError struct {
	StatusCode int    `json:"status_code"` // HTTP status code
	Method     string `json:"method"`      // HTTP method used for the request
	URL        string `json:"url"`         // The URL of the HTTP request
	Message    string `json:"message"`     // Summary of the error
	Raw        string `json:"raw"`         // Raw response body for debugging
}

// Error returns a string representation of the HTTPError, making it compatible with the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, http.StatusText(e.StatusCode))
}

// DecodeError represents a 2xx resource response whose body did not match the
// expected shape. It is deliberately distinct from HTTPError so callers can tell
// "the server is reachable and authorized us" from "the payload contract changed".
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

// Error returns a string representation of the DecodeError.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response for %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HandleAPIErrorResponse builds an HTTPError from a failed resource response,
// summarising the body according to its content type.
func HandleAPIErrorResponse(resp *http.Response) *HTTPError {
	httpError := &HTTPError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		httpError.Raw = "Failed to read response body"
		return httpError
	}
	httpError.Raw = string(bodyBytes)

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		httpError.Message = summariseJSONError(bodyBytes)
	case "application/xml", "text/xml":
		httpError.Message = summariseXMLError(bodyBytes)
	case "text/html":
		httpError.Message = summariseHTMLError(bodyBytes)
	default:
		httpError.Message = strings.TrimSpace(string(bodyBytes))
	}

	return httpError
}

// jsonErrorBody matches the error shapes the parking platform has been observed to
// return: a top-level message, or an error object carrying one.
type jsonErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// summariseJSONError extracts a human-readable message from a JSON error body.
func summariseJSONError(bodyBytes []byte) string {
	var body jsonErrorBody
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return ""
	}

	switch {
	case body.Error.Message != "":
		return body.Error.Message
	case body.Message != "":
		return body.Message
	case body.Detail != "":
		return body.Detail
	default:
		return ""
	}
}

// summariseXMLError accumulates the text nodes of an XML error document.
func summariseXMLError(bodyBytes []byte) string {
	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return ""
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return strings.Join(messages, "; ")
}

// summariseHTMLError extracts the title and paragraph text from an HTML error page,
// which is what API gateways in front of the parking platform return for some failures.
func summariseHTMLError(bodyBytes []byte) string {
	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return ""
	}

	var messages []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "title" || n.Data == "p") {
			text := collectText(n)
			if text != "" {
				messages = append(messages, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return strings.Join(messages, "; ")
}

// collectText concatenates the text content beneath an HTML node.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
