package flex

import (
	"testing"
)

const sampleReport = `
<FlexQueryResponse queryName="cash tx, last 30 days" type="AF">
    <FlexStatements count="1">
        <FlexStatement accountId="U1234567" fromDate="2022-11-24" toDate="2022-12-23" period="Last30CalendarDays" whenGenerated="2022-12-25;14:53:12">
            <CashTransactions>
                <CashTransaction reportDate="2022-12-14" dateTime="2022-12-15;12:20:00" symbol="TCBT" listingExchange="AEB" type="Withholding Tax" amount="-0.91" currency="EUR" description="TCBT(NL0009690247) CASH DIVIDEND EUR 0.05 PER SHARE - NL TAX" />
                <CashTransaction reportDate="2022-12-15" dateTime="2022-12-15;12:20:00" symbol="TRET" listingExchange="AEB" type="Withholding Tax" amount="-5.77" currency="EUR" description="TRET(NL0009690239) CASH DIVIDEND EUR 0.30 PER SHARE - NL TAX" />
                <CashTransaction reportDate="2022-12-14" dateTime="2022-12-15;12:20:00" symbol="TCBT" listingExchange="AEB" type="Dividends" amount="6.05" currency="EUR" description="TCBT(NL0009690247) CASH DIVIDEND EUR 0.05 PER SHARE (Ordinary Dividend)" />
                <CashTransaction reportDate="2022-12-15" dateTime="2022-12-15;12:20:00" symbol="TRET" listingExchange="AEB" type="Dividends" amount="38.4" currency="EUR" description="TRET(NL0009690239) CASH DIVIDEND EUR 0.30 PER SHARE (Ordinary Dividend)" />
                <CashTransaction reportDate="2022-11-30" dateTime="2022-11-30;16:00:00" symbol="" listingExchange="" type="Deposits/Withdrawals" amount="1500" currency="EUR" description="CASH RECEIPTS / ELECTRONIC FUND TRANSFERS" />
                <CashTransaction reportDate="2022-12-05" dateTime="2022-12-05;16:00:00" symbol="" listingExchange="" type="Broker Interest Received" amount="2.77" currency="AUD" description="AUD CREDIT INT FOR NOV-2022" />
                <CashTransaction reportDate="2022-11-25" dateTime="2022-11-25" symbol="DGS" listingExchange="ARCA" type="Commission Adjustments" amount="0.33225725" currency="USD" description="Refund (DGS, 10, 2022-10-26)" />
            </CashTransactions>
        </FlexStatement>
    </FlexStatements>
</FlexQueryResponse>
`

func TestParse_Statement(t *testing.T) {
	response, err := Parse([]byte(sampleReport))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if response.FlexStatements.Count != 1 {
		t.Errorf("Expected statement count 1, got %d", response.FlexStatements.Count)
	}

	stmt := response.FlexStatements.FlexStatement
	if stmt.AccountID != "U1234567" {
		t.Errorf("Expected account 'U1234567', got '%s'", stmt.AccountID)
	}
	if stmt.FromDate != "2022-11-24" {
		t.Errorf("Expected from date '2022-11-24', got '%s'", stmt.FromDate)
	}
	if stmt.ToDate != "2022-12-23" {
		t.Errorf("Expected to date '2022-12-23', got '%s'", stmt.ToDate)
	}
	if stmt.Period != "Last30CalendarDays" {
		t.Errorf("Expected period 'Last30CalendarDays', got '%s'", stmt.Period)
	}
	if stmt.WhenGenerated != "2022-12-25;14:53:12" {
		t.Errorf("Expected generation stamp '2022-12-25;14:53:12', got '%s'", stmt.WhenGenerated)
	}
}

func TestParse_CashTransactions(t *testing.T) {
	response, err := Parse([]byte(sampleReport))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records := response.FlexStatements.FlexStatement.CashTransactions.CashTransaction
	if len(records) != 7 {
		t.Fatalf("Expected 7 cash transactions, got %d", len(records))
	}

	tx := records[0]
	if tx.ReportDate != "2022-12-14" {
		t.Errorf("Expected report date '2022-12-14', got '%s'", tx.ReportDate)
	}
	if tx.DateTime != "2022-12-15;12:20:00" {
		t.Errorf("Expected date-time '2022-12-15;12:20:00', got '%s'", tx.DateTime)
	}
	if tx.Symbol != "TCBT" {
		t.Errorf("Expected symbol 'TCBT', got '%s'", tx.Symbol)
	}
	if tx.ListingExchange != "AEB" {
		t.Errorf("Expected listing exchange 'AEB', got '%s'", tx.ListingExchange)
	}
	if tx.Type != "Withholding Tax" {
		t.Errorf("Expected type 'Withholding Tax', got '%s'", tx.Type)
	}
	if tx.Amount != "-0.91" {
		t.Errorf("Expected amount '-0.91', got '%s'", tx.Amount)
	}
	if tx.Currency != "EUR" {
		t.Errorf("Expected currency 'EUR', got '%s'", tx.Currency)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("<FlexQueryResponse><unclosed>"))
	if err == nil {
		t.Error("Expected error for malformed XML, got nil")
	}
}

func TestParseStatementResponse(t *testing.T) {
	content := `<FlexStatementResponse timestamp='17 January, 2023 12:51 PM EST'>
<Status>Success</Status>
<ReferenceCode>1234567890</ReferenceCode>
<Url>https://gdcdyn.interactivebrokers.com/Universal/servlet/FlexStatementService.GetStatement</Url>
</FlexStatementResponse>
`

	response, err := ParseStatementResponse([]byte(content))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if response.Status != "Success" {
		t.Errorf("Expected status 'Success', got '%s'", response.Status)
	}
	if response.Timestamp != "17 January, 2023 12:51 PM EST" {
		t.Errorf("Expected timestamp attribute, got '%s'", response.Timestamp)
	}
	if response.ReferenceCode != "1234567890" {
		t.Errorf("Expected reference code '1234567890', got '%s'", response.ReferenceCode)
	}
	if response.URL != "https://gdcdyn.interactivebrokers.com/Universal/servlet/FlexStatementService.GetStatement" {
		t.Errorf("Unexpected url '%s'", response.URL)
	}
}
