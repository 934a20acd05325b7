// Package flex reads Flex Query cash transaction reports: the XML binding,
// the report file reader, the normalizer into canonical transactions, and the
// Flex Web Service download client.
package flex

import (
	"encoding/xml"
	"fmt"
)

// FlexQueryResponse is the root element of a Flex Query report. Tag names are
// PascalCase, attributes camelCase.
type FlexQueryResponse struct {
	XMLName        xml.Name       `xml:"FlexQueryResponse"`
	QueryName      string         `xml:"queryName,attr"`
	Type           string         `xml:"type,attr"`
	FlexStatements FlexStatements `xml:"FlexStatements"`
}

type FlexStatements struct {
	Count         int           `xml:"count,attr"`
	FlexStatement FlexStatement `xml:"FlexStatement"`
}

// FlexStatement carries the account and period metadata for one statement.
type FlexStatement struct {
	AccountID        string           `xml:"accountId,attr"`
	FromDate         string           `xml:"fromDate,attr"`
	ToDate           string           `xml:"toDate,attr"`
	Period           string           `xml:"period,attr"`
	WhenGenerated    string           `xml:"whenGenerated,attr"`
	CashTransactions CashTransactions `xml:"CashTransactions"`
}

type CashTransactions struct {
	CashTransaction []CashTransaction `xml:"CashTransaction"`
}

// CashTransaction is one raw record of the broker feed. ReportDate is the
// date the transaction appears in the report; DateTime is the effective date.
type CashTransaction struct {
	ReportDate      string `xml:"reportDate,attr"`
	DateTime        string `xml:"dateTime,attr"`
	Symbol          string `xml:"symbol,attr"`
	ListingExchange string `xml:"listingExchange,attr"`
	Type            string `xml:"type,attr"`
	Amount          string `xml:"amount,attr"`
	Currency        string `xml:"currency,attr"`
	Description     string `xml:"description,attr"`
}

// Parse decodes the XML content of a Flex Query report.
func Parse(content []byte) (*FlexQueryResponse, error) {
	var response FlexQueryResponse
	if err := xml.Unmarshal(content, &response); err != nil {
		return nil, fmt.Errorf("parsing flex report: %w", err)
	}
	return &response, nil
}

// FlexStatementResponse is the handshake response of the statement request
// protocol. Tags are PascalCase elements; the timestamp is an attribute.
type FlexStatementResponse struct {
	XMLName       xml.Name `xml:"FlexStatementResponse"`
	Timestamp     string   `xml:"timestamp,attr"`
	Status        string   `xml:"Status"`
	ErrorMessage  string   `xml:"ErrorMessage"`
	ReferenceCode string   `xml:"ReferenceCode"`
	URL           string   `xml:"Url"`
}

// ParseStatementResponse decodes the response to a statement request.
func ParseStatementResponse(content []byte) (*FlexStatementResponse, error) {
	var response FlexStatementResponse
	if err := xml.Unmarshal(content, &response); err != nil {
		return nil, fmt.Errorf("parsing statement response: %w", err)
	}
	return &response, nil
}
