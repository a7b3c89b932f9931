package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	docsDir   string
	recreate  bool
	batchSize int

	rootCmd = &cobra.Command{
		Use:   "ingest",
		Short: "Builds the portfolio vector index from Markdown files",
		Long: `ingest reads every *.md file in a directory, splits it into
overlapping chunks, embeds them and upserts them into the Qdrant collection
the chat API retrieves from.`,
		RunE:         runIngest,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&docsDir, "dir", "readmes", "directory containing Markdown files")
	rootCmd.Flags().BoolVar(&recreate, "recreate", false, "drop and recreate the collection first")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "embedding batch size (defaults to embedding.batch_size)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
