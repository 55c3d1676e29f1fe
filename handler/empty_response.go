package handler

import "net/http"

type emptyResponse int

func (status emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(int(status))
	return nil
}

// Empty answers 204 No Content.
func Empty() Response {
	return emptyResponse(http.StatusNoContent)
}

// EmptyWithStatus answers status without a body, e.g. 202 for queued work.
func EmptyWithStatus(status int) Response {
	return emptyResponse(status)
}
