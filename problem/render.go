package problem

import (
	"encoding/json"
	"net/http"
)

// Write converts err and writes it on w as a problem response, filling
// Instance with the request path.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	p := From(r.Context(), err)
	p.Instance = r.URL.Path
	WriteProblem(w, p)
}

// WriteProblem writes an already built Problem on w with the problem+json
// content type.
func WriteProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_, _ = w.Write(marshal(p))
}

// marshal serializes p. Received values carried by field errors are the only
// part of the document that can fail to serialize; on failure they are
// dropped and the document is sent without the errors array.
func marshal(p Problem) []byte {
	body, err := json.Marshal(p)
	if err != nil {
		p.Errors = nil
		body, _ = json.Marshal(p)
	}
	return body
}
