package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flexcmp/flexcmp/compare"
	"github.com/flexcmp/flexcmp/flex"
	"github.com/flexcmp/flexcmp/ledger"
	"github.com/flexcmp/flexcmp/symbols"
)

var compareCmd = &cobra.Command{
	Use:     "cmp",
	Aliases: []string{"compare"},
	Short:   "Compare the Flex report against the ledger book",
	Long: `cmp reads the latest downloaded cash transactions report (or the one
named with --flex-report-path), queries the ledger book over the report's
date range and prints every broker transaction the book does not carry.`,
	Run: runCompare,
}

func init() {
	compareCmd.Flags().String("flex-report-path", "", "explicit report file (overrides the newest report in the reports dir)")
	compareCmd.Flags().String("flex-reports-dir", "", "directory holding downloaded cash transaction reports")
	compareCmd.Flags().String("symbols-path", "", "symbol map CSV path")
	compareCmd.Flags().String("ledger-init-file", "", "init file passed to ledger")
	compareCmd.Flags().String("ledger-journal-file", "", "journal file passed to ledger")
	compareCmd.Flags().Bool("effective", false, "compare on effective dates instead of book dates")
	compareCmd.Flags().Int("transaction-days", compare.TransactionDays, "lookback window in days when the report carries no transactions")
	compareCmd.Flags().Bool("keep-payment-in-lieu", true, "treat payments in lieu of dividends as dividends")

	viper.BindPFlag("flex_report_path", compareCmd.Flags().Lookup("flex-report-path"))
	viper.BindPFlag("flex_reports_dir", compareCmd.Flags().Lookup("flex-reports-dir"))
	viper.BindPFlag("symbols_path", compareCmd.Flags().Lookup("symbols-path"))
	viper.BindPFlag("ledger_init_file", compareCmd.Flags().Lookup("ledger-init-file"))
	viper.BindPFlag("ledger_journal_file", compareCmd.Flags().Lookup("ledger-journal-file"))
	viper.BindPFlag("effective_dates", compareCmd.Flags().Lookup("effective"))
	viper.BindPFlag("transaction_days", compareCmd.Flags().Lookup("transaction-days"))
	viper.BindPFlag("keep_payment_in_lieu", compareCmd.Flags().Lookup("keep-payment-in-lieu"))

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	// The symbol map is loaded before anything else: a missing map should
	// fail the run up front, not after the report has been read.
	symbolMap, err := symbols.Load(viper.GetString("symbols_path"))
	cobra.CheckErr(err)

	content, err := flex.LoadReport(viper.GetString("flex_report_path"), viper.GetString("flex_reports_dir"))
	cobra.CheckErr(err)

	report, err := flex.Parse(content)
	cobra.CheckErr(err)

	records := report.FlexStatements.FlexStatement.CashTransactions.CashTransaction
	log.Printf("report carries %d cash transaction records", len(records))

	opts := flex.Options{KeepPaymentInLieu: viper.GetBool("keep_payment_in_lieu")}
	brokerTxs, err := flex.Normalize(records, symbolMap, opts)
	cobra.CheckErr(err)

	if len(brokerTxs) == 0 {
		// Nothing to reconcile; the book is not consulted.
		fmt.Println(compare.MsgNoNewTransactions)
		return
	}

	effective := viper.GetBool("effective_dates")
	bookTxs, err := ledger.Transactions(ledger.Params{
		StartDate:   compare.StartDate(brokerTxs, effective, viper.GetInt("transaction_days")),
		Effective:   effective,
		InitFile:    viper.GetString("ledger_init_file"),
		JournalFile: viper.GetString("ledger_journal_file"),
	})
	cobra.CheckErr(err)

	fmt.Println(strings.Join(compare.Compare(brokerTxs, bookTxs, effective), "\n"))
}
