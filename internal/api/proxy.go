package api

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/sirupsen/logrus"
)

// NewBackendProxy relays requests to the hotel backend as-is: path and query
// pass through, the backend's status code and body come back untouched. The
// service token is attached so the browser never sees it.
func NewBackendProxy(target *url.URL, token string) http.Handler {
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.Host = target.Host
			if token != "" {
				pr.Out.Header.Set("Authorization", "Bearer "+token)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logrus.WithError(err).WithFields(logrus.Fields{"path": r.URL.Path}).Error("backend proxy request failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "backend unreachable"})
		},
	}
	return proxy
}
