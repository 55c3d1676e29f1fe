package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is set to "true" by the DataStar client on every fetch
	DataStarRequestHeader = "Datastar-Request"

	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// Patch mode aliases for WithPatchMode
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether the request comes from the DataStar client and
// expects Server-Sent Events back.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
