package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"gapscan/resume-gap-analyzer/internal/handlers"
	"gapscan/resume-gap-analyzer/internal/services"
)

var extractResumePath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the text layer of a PDF resume and print statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := readInput(extractResumePath)
		if err != nil {
			return fmt.Errorf("reading resume: %w", err)
		}

		content, err := services.NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data))
		if err != nil {
			return err
		}

		resp := handlers.BuildExtractTextResponse(content.Text)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Pages: %d (%d with text)\n", content.PageCount, content.TextPages)
		fmt.Fprintf(out, "Characters: %d\nWords: %d\nLines: %d\n\n", resp.Stats.Characters, resp.Stats.Words, resp.Stats.Lines)
		fmt.Fprintln(out, resp.Preview)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractResumePath, "resume", "r", "", "path to the PDF resume ('-' for stdin)")
	_ = extractCmd.MarkFlagRequired("resume")
}
