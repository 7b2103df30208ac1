package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var client = &http.Client{Timeout: 30 * time.Second}

// NewHTTPRequest function builds http call
// @param method <string>: http method
// @param url <string>: URL http to call
// @return <int>, <string>, error: status code and body of the response
func NewHTTPRequest(
	ctx context.Context, method, url, bodyString string, header map[string]string,
) (int, string, error) {
	switch method {
	case http.MethodGet:
		return get(ctx, url, header)
	case http.MethodPost:
		return post(ctx, url, bodyString, header)
	default:
		return 0, "", fmt.Errorf("verb not supported %s", method)
	}
}

func get(ctx context.Context, url string, header map[string]string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", err
	}
	return doRequest(req, header)
}

func post(
	ctx context.Context, url, bodyString string, header map[string]string,
) (int, string, error) {
	body := strings.NewReader(bodyString)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return 0, "", err
	}
	return doRequest(req, header)
}

func doRequest(req *http.Request, header map[string]string) (int, string, error) {
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to send %s request: %w", req.Method, err)
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse response body: %w", err)
	}

	return rs.StatusCode, string(bodyBytes), nil
}
