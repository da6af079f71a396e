// Package azuredevops implements the destination provider against the Azure
// DevOps Git REST API.
package azuredevops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

const (
	apiVersion     = "7.1"
	requestTimeout = 30 * time.Second
)

// DestinationProvider talks to one Azure DevOps organization, scoped to a
// single project, authenticated with a PAT.
type DestinationProvider struct {
	baseURL    string
	project    string
	token      string
	httpClient *http.Client
}

var _ repositories.DestinationProvider = (*DestinationProvider)(nil)

// NewDestinationProvider creates a provider for the given organization URL
// (either a full https URL or a bare organization name) and project.
func NewDestinationProvider(creds entities.DestinationCredentials) *DestinationProvider {
	org := strings.TrimSuffix(creds.OrgURL, "/")
	if !strings.HasPrefix(org, "https://") && !strings.HasPrefix(org, "http://") {
		org = "https://dev.azure.com/" + org
	}

	return &DestinationProvider{
		baseURL: org,
		project: creds.Project,
		token:   creds.AccessToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateRepository registers a new, empty repository under the project.
// Azure DevOps answers 409 when a repository of that name already exists;
// that conflict surfaces as an error for the caller to account per item.
func (p *DestinationProvider) CreateRepository(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("/%s/_apis/git/repositories?api-version=%s", p.project, apiVersion)

	body := map[string]string{"name": name}
	if _, err := p.doRequest(ctx, http.MethodPost, endpoint, body); err != nil {
		return fmt.Errorf("failed to create repository %q: %w", name, err)
	}
	return nil
}

// PushURL builds the authenticated push URL for one repository. The PAT is
// embedded as the userinfo password and must never be logged.
func (p *DestinationProvider) PushURL(name string) string {
	plain := fmt.Sprintf("%s/%s/_git/%s", p.baseURL, url.PathEscape(p.project), url.PathEscape(name))
	userinfo := "pat:" + url.QueryEscape(p.token) + "@"
	if strings.HasPrefix(plain, "http://") {
		return strings.Replace(plain, "http://", "http://"+userinfo, 1)
	}
	return strings.Replace(plain, "https://", "https://"+userinfo, 1)
}

// doRequest executes one API call with PAT basic auth and returns the
// response body on 2xx.
func (p *DestinationProvider) doRequest(
	ctx context.Context,
	method, endpoint string,
	payload any,
) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	// Azure DevOps PATs authenticate as basic auth with an empty username.
	auth := base64.StdEncoding.EncodeToString([]byte(":" + p.token))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("repository already exists on the destination (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
