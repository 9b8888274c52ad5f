package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/example/dexnorm/internal/mangadex"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [payload-file]",
	Short: "Normalize a raw series payload into an ordered chapter list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		languages, _ := cmd.Flags().GetStringSlice("langs")

		payload, err := mangadex.DecodeSeries(openPayload(args))
		if err != nil {
			log.Fatal(err)
		}

		parser, err := newParser(languages)
		if err != nil {
			log.Fatal(err)
		}

		records, err := parser.BuildChapterList(payload)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(records)
	},
}

func init() {
	chaptersCmd.Flags().StringSlice("langs", nil, "Language codes to keep, overriding the configured set")
	rootCmd.AddCommand(chaptersCmd)
}
