package client

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mhartwig/fabricprov/pkg/utils"
)

// FabricClient is the authenticated handle to the fabric-management
// endpoint. All operations are synchronous; there is exactly one caller.
type FabricClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	orgs       *OrgCache
	logger     *utils.Logger
	dryRun     bool
}

// NewClient opens a session against the management endpoint. A failed
// login is fatal to the run.
func NewClient(baseURL, username, password string, dryRun bool, logger *utils.Logger) (*FabricClient, error) {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	c := &FabricClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		dryRun:     dryRun,
	}
	c.orgs = NewOrgCache(c)

	if err := c.login(username, password); err != nil {
		return nil, err
	}

	return c, nil
}

// Object represents a generic remote object
type Object map[string]interface{}

// login establishes the management session and stores its token
func (c *FabricClient) login(username, password string) error {
	body := map[string]interface{}{
		"username": username,
		"password": password,
	}

	resp, err := c.Request("POST", "/api/login/", body)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	token, ok := resp["token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("authentication failed: no session token in response")
	}

	c.token = token
	c.logger.Debug("Session established with %s", c.baseURL)
	return nil
}

// Request makes an HTTP request to the management API
func (c *FabricClient) Request(method, path string, body interface{}) (Object, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.dryRun && method != "GET" && path != "/api/login/" {
		c.logger.DryRun(method, path)
		return Object{"id": 0}, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	if len(respBody) == 0 {
		return nil, nil
	}

	var result Object
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result, nil
}

// Filter retrieves objects of one kind matching the given filters
func (c *FabricClient) Filter(endpoint string, filters map[string]interface{}) ([]Object, error) {
	url := c.baseURL + fmt.Sprintf("/api/%s/", endpoint)

	if len(filters) > 0 {
		url += "?"
		for k, v := range filters {
			url += fmt.Sprintf("%s=%v&", k, v)
		}
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Results []Object `json:"results"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		var directResults []Object
		if err2 := json.Unmarshal(respBody, &directResults); err2 == nil {
			return directResults, nil
		}
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Results, nil
}

// Create creates a new object
func (c *FabricClient) Create(endpoint string, data map[string]interface{}) (Object, error) {
	return c.Request("POST", fmt.Sprintf("/api/%s/", endpoint), data)
}

// Update updates an existing object
func (c *FabricClient) Update(endpoint string, id int, data map[string]interface{}) error {
	_, err := c.Request("PATCH", fmt.Sprintf("/api/%s/%d/", endpoint, id), data)
	return err
}

// Apply creates or updates an object (idempotent). The lookup names the
// object; when a match exists only the changed fields are patched, so
// re-issuing the same call against previously-created state never
// duplicates anything.
func (c *FabricClient) Apply(endpoint string, lookup, payload map[string]interface{}) (Object, error) {
	c.logger.Debug("  → Applying %s with lookup: %v", endpoint, lookup)

	existing, err := c.Filter(endpoint, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to filter objects: %w", err)
	}

	if len(existing) == 0 {
		c.logger.Success("  ✓ Creating %s: %v", endpoint, c.formatLookup(lookup))
		return c.Create(endpoint, payload)
	}

	obj := existing[0]
	objID := utils.GetIDFromObject(map[string]interface{}(obj))
	if objID == 0 {
		return nil, fmt.Errorf("object has no ID")
	}

	changes := c.calculateDiff(obj, payload)
	if len(changes) > 0 {
		c.logger.Info("  ⟳ Updating %s (ID: %d): %v", endpoint, objID, c.formatLookup(lookup))
		if err := c.Update(endpoint, objID, changes); err != nil {
			return nil, fmt.Errorf("failed to update object: %w", err)
		}
		c.logger.Success("  ✓ Update complete")
	} else {
		c.logger.Debug("  = No changes for %s (ID: %d)", endpoint, objID)
	}

	return obj, nil
}

// formatLookup formats lookup criteria for display
func (c *FabricClient) formatLookup(lookup map[string]interface{}) string {
	if name, ok := lookup["name"]; ok {
		return fmt.Sprintf("name=%v", name)
	}
	if dn, ok := lookup["dn"]; ok {
		return fmt.Sprintf("dn=%v", dn)
	}
	for k, v := range lookup {
		return fmt.Sprintf("%s=%v", k, v)
	}
	return "{}"
}

// calculateDiff compares existing object state with the desired payload
func (c *FabricClient) calculateDiff(existing Object, desired map[string]interface{}) map[string]interface{} {
	changes := make(map[string]interface{})

	for key, desiredValue := range desired {
		if desiredValue == nil {
			continue
		}

		existingValue, exists := existing[key]
		if !exists {
			changes[key] = desiredValue
			continue
		}

		if existingMap, ok := existingValue.(map[string]interface{}); ok {
			existingValue = utils.GetIDFromObject(existingMap)
		}

		if !valuesEqual(existingValue, desiredValue) {
			changes[key] = desiredValue
		}
	}

	return changes
}

// valuesEqual compares two values, bridging the int/float64 gap that
// JSON decoding introduces
func valuesEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(int); ok {
			return av == float64(bv)
		}
	case int:
		if bv, ok := b.(float64); ok {
			return float64(av) == bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
	}

	return a == b
}

// Orgs returns the organization resolver
func (c *FabricClient) Orgs() *OrgCache {
	return c.orgs
}

// IsDryRun returns the dry-run status
func (c *FabricClient) IsDryRun() bool {
	return c.dryRun
}

// Logger returns the logger
func (c *FabricClient) Logger() *utils.Logger {
	return c.logger
}
