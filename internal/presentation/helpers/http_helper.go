package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"message":"error serializing response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		StatusCode: statusCode,
	}
}

// CreateRawResponse serves an already-serialized payload, e.g. a cached
// report straight from Redis.
func CreateRawResponse(payload []byte, statusCode int) *presentationProtocols.HttpResponse {
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		StatusCode: statusCode,
	}
}
