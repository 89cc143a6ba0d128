// version.go
package version

import "fmt"

// AppName holds the name of the client library
var AppName = "go-parking-api-client"

// Version holds the current version of the client library
var Version = "0.1.0"

// UserAgent returns the User-Agent header value sent on every request.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}
