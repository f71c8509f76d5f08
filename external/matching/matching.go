package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/neighborfit/neighborfit-api/schema"
)

var (
	errServiceStatus = fmt.Errorf("matching service returned a non-ok status")
)

// Matching - interface for the external neighborhood matching service
type Matching interface {
	Match(ctx context.Context, survey *schema.Survey) (json.RawMessage, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
}

// Match posts a survey payload to the matching service and returns the match
// document untouched: its shape is owned by the service. A single attempt is
// made; the caller decides what a failure means.
func (c *client) Match(ctx context.Context, survey *schema.Survey) (json.RawMessage, error) {
	body, err := json.Marshal(survey)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint+"/match", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return nil, err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errServiceStatus
	}

	return json.RawMessage(d), nil
}

// NewClient creates a matching service client on top of a shared http client.
func NewClient(httpClient *http.Client, endpoint string) Matching {
	return &client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}
