package flex

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/flexcmp/flexcmp/model"
)

// Flex Web Service endpoints. The report is downloaded in a 2-step process:
// SendRequest returns a reference code, GetStatement fetches the report.
const (
	DefaultBaseURL   = "https://gdcdyn.interactivebrokers.com/Universal/servlet/"
	requestEndpoint  = "FlexStatementService.SendRequest"
	downloadEndpoint = "FlexStatementService.GetStatement"
)

// Client downloads Flex Query reports from the Flex Web Service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the production service.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// Download fetches the cash transactions report and saves it in the current
// directory under the dated naming convention. Returns the file name.
func (c *Client) Download(queryID, token string) (string, error) {
	report, err := c.DownloadReport(queryID, token)
	if err != nil {
		return "", err
	}

	filename := time.Now().Format(model.ISODateFormat) + FileSuffix
	if err := os.WriteFile(filename, report, 0o644); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}

	return filename, nil
}

// DownloadReport runs the 2-step protocol and returns the report XML. The
// token comes from Reports / Settings / FlexWeb Service, the query id from
// the custom Flex Query configuration.
func (c *Client) DownloadReport(queryID, token string) ([]byte, error) {
	body, err := c.get(fmt.Sprintf("%s%s?v=3&t=%s&q=%s", c.BaseURL, requestEndpoint, token, queryID))
	if err != nil {
		return nil, fmt.Errorf("requesting statement: %w", err)
	}

	response, err := ParseStatementResponse(body)
	if err != nil {
		return nil, err
	}
	if response.Status != "Success" {
		return nil, fmt.Errorf("statement request failed: %s %s", response.Status, response.ErrorMessage)
	}

	report, err := c.get(fmt.Sprintf("%s%s?v=3&q=%s&t=%s", c.BaseURL, downloadEndpoint, response.ReferenceCode, token))
	if err != nil {
		return nil, fmt.Errorf("downloading statement: %w", err)
	}

	return report, nil
}

func (c *Client) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// The service rejects unknown user agents.
	req.Header.Set("User-Agent", "Java")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	return io.ReadAll(resp.Body)
}
