package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute bridges a controller into an http.Handler. Responses default
// to JSON; controllers that serve files set their own headers.
func AdaptRoute(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		response := controller.Handle(request)

		if len(response.Headers) > 0 {
			for key, values := range response.Headers {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}
		} else {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
