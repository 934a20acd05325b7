package ledger

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/flexcmp/flexcmp/model"
)

// Query selects the income and withholding accounts of the brokerage
// hierarchy from the book.
const Query = `(account =~ /income/ and account =~ /ib/) or (account =~ /ib/ and account =~ /withh/)`

// Params configures one invocation of the ledger binary.
type Params struct {
	// StartDate is the ISO begin date of the register report.
	StartDate string
	// Effective asks ledger to show effective dates instead of book dates.
	Effective bool
	// InitFile overrides ledger's init file lookup when non-empty.
	InitFile string
	// JournalFile names the journal file when non-empty, bypassing the
	// init file's default.
	JournalFile string
}

// Args builds the ledger command line for p.
func Args(p Params) []string {
	args := []string{"r", "-b", p.StartDate, "-d", Query}
	if p.Effective {
		args = append(args, "--effective")
	}
	if p.InitFile != "" {
		args = append(args, "--init-file", p.InitFile)
	}
	if p.JournalFile != "" {
		args = append(args, "-f", p.JournalFile)
	}
	return args
}

// Run invokes the ledger binary and returns its stdout split into lines.
// Anything on stderr is treated as a failure: a register report produced
// alongside warnings cannot be trusted for reconciliation.
func Run(p Params) ([]string, error) {
	args := Args(p)
	log.Printf("running: ledger %s", strings.Join(args, " "))

	cmd := exec.Command("ledger", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running ledger: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		return nil, fmt.Errorf("ledger reported: %s", strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimRight(stdout.String(), "\r\n")
	if out == "" {
		return nil, nil
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, nil
}

// Transactions runs ledger and parses the register report into canonical
// transactions.
func Transactions(p Params) ([]model.Transaction, error) {
	lines, err := Run(p)
	if err != nil {
		return nil, err
	}
	return ParseRegister(CleanUpRegisterOutput(lines))
}
