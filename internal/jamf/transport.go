package jamf

import "net/http"

// Transport authenticates every request and asks the Classic API for
// XML, which is the only representation the serialnumber endpoint
// guarantees all fields for.
type Transport struct {
	Username string
	Password string
}

func (t Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.Username, t.Password)
	req.Header.Set("Accept", "application/xml")
	return http.DefaultTransport.RoundTrip(req)
}
