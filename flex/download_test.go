package flex

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDownloadReport_TwoStepProtocol(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "Java" {
			t.Errorf("Expected User-Agent 'Java', got '%s'", got)
		}

		switch r.URL.Path {
		case "/" + requestEndpoint:
			if r.URL.Query().Get("t") != "token-1" || r.URL.Query().Get("q") != "12345" {
				t.Errorf("Unexpected request query: %s", r.URL.RawQuery)
			}
			fmt.Fprintf(w, `<FlexStatementResponse timestamp='now'>
<Status>Success</Status>
<ReferenceCode>9876543210</ReferenceCode>
<Url>%s/%s</Url>
</FlexStatementResponse>`, server.URL, downloadEndpoint)
		case "/" + downloadEndpoint:
			if r.URL.Query().Get("q") != "9876543210" {
				t.Errorf("Expected reference code in query, got: %s", r.URL.RawQuery)
			}
			fmt.Fprint(w, sampleReport)
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL + "/", HTTPClient: server.Client()}

	report, err := client.DownloadReport("12345", "token-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	response, err := Parse(report)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := len(response.FlexStatements.FlexStatement.CashTransactions.CashTransaction); got != 7 {
		t.Errorf("Expected 7 cash transactions, got %d", got)
	}
}

func TestDownloadReport_RequestRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<FlexStatementResponse timestamp='now'>
<Status>Fail</Status>
<ErrorMessage>Invalid token</ErrorMessage>
</FlexStatementResponse>`)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL + "/", HTTPClient: server.Client()}

	_, err := client.DownloadReport("12345", "bad-token")
	if err == nil {
		t.Error("Expected error for rejected request, got nil")
	}
}
