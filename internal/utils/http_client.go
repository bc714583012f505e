// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get its whole request API with
// the admin client's defaults already applied.
type HTTPClient struct {
	*resty.Client
}

const (
	retryCount       = 2
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// NewHTTPClient returns an independent client identifying itself with
// userAgent. Only GET requests are retried, on transport errors and on
// 502, 503 and 504 responses.
//
// Example usage:
//
//	client := utils.NewHTTPClient("airline-guard-admin")
//	resp, err := client.R().Get("https://guard.example.com/healthz")
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(RetryIdempotent)

	return &HTTPClient{Client: client}
}

// RetryIdempotent is a resty retry condition limited to GET requests.
func RetryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
