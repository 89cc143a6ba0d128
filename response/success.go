// response/success.go
/* Responsible for handling successful API responses. A 2xx JSON body is decoded into
the caller's expected shape; a body that does not match becomes a DecodeError, kept
distinct from HTTP-level failures. */
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HandleAPISuccessResponse decodes a 2xx response body into out. A nil out discards
// the body, which covers operations whose success carries no payload.
func HandleAPISuccessResponse(resp *http.Response, out any) error {
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}

	contentType, _ := parseHeader(resp.Header.Get("Content-Type"))
	if contentType != "" && contentType != "application/json" {
		return &DecodeError{
			Method: resp.Request.Method,
			URL:    resp.Request.URL.String(),
			Err:    fmt.Errorf("unexpected MIME type: %s", contentType),
		}
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return &DecodeError{
			Method: resp.Request.Method,
			URL:    resp.Request.URL.String(),
			Err:    err,
		}
	}
	return nil
}
