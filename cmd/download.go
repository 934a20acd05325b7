package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flexcmp/flexcmp/flex"
)

var downloadCmd = &cobra.Command{
	Use:     "dl",
	Aliases: []string{"download"},
	Short:   "Download the cash transactions report from the Flex Web Service",
	Long: `dl fetches the configured Flex Query over the Flex Web Service and
saves it in the current directory under today's date, ready for cmp.`,
	Run: runDownload,
}

func init() {
	downloadCmd.Flags().String("query-id", "", "Flex Query id")
	downloadCmd.Flags().String("token", "", "Flex Web Service token")

	viper.BindPFlag("flex_query_id", downloadCmd.Flags().Lookup("query-id"))
	viper.BindPFlag("ib_token", downloadCmd.Flags().Lookup("token"))

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) {
	queryID := viper.GetString("flex_query_id")
	token := viper.GetString("ib_token")
	if queryID == "" || token == "" {
		cobra.CheckErr(errors.New("flex_query_id and ib_token must be configured or passed as flags"))
	}

	filename, err := flex.NewClient().Download(queryID, token)
	cobra.CheckErr(err)

	fmt.Printf("Saved %s\n", filename)
}
