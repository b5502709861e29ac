// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package share builds public links to forms.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidBaseURL indicates a base URL that is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("invalid share base URL")

// URL returns the link at which a published form is filled: <base>/form/<id>.
func URL(baseURL, documentID string) (string, error) {
	if strings.TrimSpace(documentID) == "" {
		return "", errors.New("form id is required")
	}
	if err := checkBase(baseURL); err != nil {
		return "", err
	}
	return url.JoinPath(baseURL, "form", documentID)
}

// DemoURL returns the fixed link of the demo form: <base>/demo.
func DemoURL(baseURL string) (string, error) {
	if err := checkBase(baseURL); err != nil {
		return "", err
	}
	return url.JoinPath(baseURL, "demo")
}

func checkBase(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return nil
}
