package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]any{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	message, _ := payload["error"].(string)
	return message
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(bytes), err)
	}
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(bytes)
}
