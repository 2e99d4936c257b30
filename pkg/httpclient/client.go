package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a small JSON client bound to a single host, used by the
// integration clients to reach the issue tracker and chat webhook endpoints.
type Client struct {
	client *http.Client
	token  string
	host   string
}

func NewClient(host, token string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 3 * time.Second,
		},
		token: token,
		host:  host,
	}
}

func (c *Client) Get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s", c.host, path), nil)

	if err != nil {
		return nil, err
	}

	c.setHeaders(req)

	return c.client.Do(req)
}

func (c *Client) Post(path string, body interface{}) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s%s", c.host, path), bytes.NewBuffer(jsonBody))

	if err != nil {
		return nil, err
	}

	c.setHeaders(req)

	return c.client.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	req.Header.Set("Content-Type", "application/json")
}
