package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/example/dexnorm/internal/mangadex"
)

var seriesCmd = &cobra.Command{
	Use:   "series [payload-file]",
	Short: "Normalize a raw series payload into a metadata record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requestURL, _ := cmd.Flags().GetString("url")
		covers, _ := cmd.Flags().GetStringSlice("covers")
		if requestURL == "" {
			log.Fatal("--url is required")
		}

		payload, err := mangadex.DecodeSeries(openPayload(args))
		if err != nil {
			log.Fatal(err)
		}

		parser, err := newParser(nil)
		if err != nil {
			log.Fatal(err)
		}

		record, err := parser.ExtractMetadata(requestURL, payload, covers)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(record)
	},
}

func init() {
	seriesCmd.Flags().String("url", "", "URL the payload was fetched from")
	seriesCmd.Flags().StringSlice("covers", nil, "Cover URL list, newest last")
	rootCmd.AddCommand(seriesCmd)
}
