package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Setup steps

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(testServer.URL + "/health")
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	body := fmt.Sprintf(`{"name": "Test User", "email": "%s", "password": "%s"}`, email, password)
	resp, err := t.client.Post(testServer.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration returned %d: %s", resp.StatusCode, payload)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return err
	}
	t.tokens[email] = result.Token
	return nil
}

func (t *testContext) iAmLoggedInAsWithPassword(email, password string) error {
	if _, known := t.tokens[email]; !known {
		if err := t.aUserExistsWithEmailAndPassword(email, password); err != nil {
			return err
		}
	}

	body := fmt.Sprintf(`{"email": "%s", "password": "%s"}`, email, password)
	resp, err := t.client.Post(testServer.URL+"/api/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login returned %d: %s", resp.StatusCode, payload)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return err
	}
	t.accessToken = result.Token
	t.tokens[email] = result.Token
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	body := fmt.Sprintf(`{"name": "%s", "icon": "📌", "color": "#000000", "type": "%s"}`, name, categoryType)
	payload, status, err := t.authorizedRequest(http.MethodPost, "/api/categories", []byte(body))
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("category creation returned %d: %s", status, payload)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return err
	}
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return fmt.Errorf("category id is not a uuid: %w", err)
	}
	t.categoryIDs[name] = id
	t.categoryType[name] = categoryType
	t.lastCategoryID = id.String()
	return nil
}

func (t *testContext) aTransactionExists(amount, categoryName, date, description string) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("no category named %q was created", categoryName)
	}
	body := fmt.Sprintf(
		`{"category_id": "%s", "type": "%s", "amount": %s, "description": "%s", "date": "%s"}`,
		categoryID, t.categoryType[categoryName], amount, description, date,
	)
	payload, status, err := t.authorizedRequest(http.MethodPost, "/api/transactions", []byte(body))
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("transaction creation returned %d: %s", status, payload)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &result); err != nil {
		return err
	}
	t.lastTransactionID = result.ID
	return nil
}

func (t *testContext) aBudgetExists(amount, categoryName string, month, year int) error {
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("no category named %q was created", categoryName)
	}
	body := fmt.Sprintf(
		`{"category_id": "%s", "amount": %s, "month": %d, "year": %d}`,
		categoryID, amount, month, year,
	)
	payload, status, err := t.authorizedRequest(http.MethodPost, "/api/budgets", []byte(body))
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("budget creation returned %d: %s", status, payload)
	}
	return nil
}

// Header steps

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(t.replacePlaceholders(body.Content)))
}

// replacePlaceholders substitutes ids captured by setup steps into request
// paths and bodies. "{{category_id:Name}}" resolves a category by name.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.lastCategoryID)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID)

	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category_id:"+name+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	path = t.replacePlaceholders(path)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, testServer.URL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (t *testContext) authorizedRequest(method, path string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequest(method, testServer.URL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.accessToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.StatusCode, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), t.replacePlaceholders(expected)) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	expected = t.replacePlaceholders(expected)

	// Monetary fields serialize with varying trailing zeros, so numeric
	// values compare as numbers rather than as strings.
	if expectedNumber, err := decimal.NewFromString(expected); err == nil {
		if actualNumber, err := decimal.NewFromString(actual); err == nil {
			if !actualNumber.Equal(expectedNumber) {
				return fmt.Errorf("field %q expected %s, got %s", field, expected, actual)
			}
			return nil
		}
	}

	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(expected int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(t.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w. Body: %s", err, t.responseBody)
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d. Body: %s", expected, len(items), t.responseBody)
	}
	return nil
}

// lookupField resolves a dot-separated path through the response JSON.
// Numeric segments index into arrays.
func (t *testContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
		}
	}
	return current, nil
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	model, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("no model registered for table %q", table)
	}
	var count int64
	if err := t.db.DbConn.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in %s, found %d", quantity, table, count)
	}
	return nil
}
