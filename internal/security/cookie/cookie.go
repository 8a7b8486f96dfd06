// Package cookie moves session tokens between the server and the browser.
// The cookie is scoped to the API path prefix and carries no Secure or
// HttpOnly flags; TLS termination happens upstream of this service.
package cookie

import "net/http"

// Transport reads and writes the named session cookie. A missing cookie is
// not an error; it is the anonymous state.
type Transport struct {
	name string
	path string
}

// NewTransport returns a Transport for the named cookie scoped to path.
func NewTransport(name, path string) *Transport {
	return &Transport{name: name, path: path}
}

// Name returns the cookie name.
func (t *Transport) Name() string { return t.name }

// Extract returns the token carried by the request, if any.
func (t *Transport) Extract(r *http.Request) (string, bool) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Attach sets the session cookie on the response.
func (t *Transport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:  t.name,
		Value: token,
		Path:  t.path,
	})
}

// Clear overwrites the session cookie with an empty value so the client
// discards the token.
func (t *Transport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:  t.name,
		Value: "",
		Path:  t.path,
	})
}
