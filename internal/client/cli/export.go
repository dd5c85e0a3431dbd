package cli

import (
	"context"
	"fmt"
	"os"
)

// Export writes the most recently displayed admin feedback page to a CSV
// file. Run 'feedbacks' first to pick what to export.
func (a *App) Export(ctx context.Context) error {
	if len(a.lastAdminFeed) == 0 {
		fmt.Fprintln(a.out, "Nothing to export, run 'feedbacks' first")
		return nil
	}

	path, err := GetSimpleText(a.reader, "Output file (empty for feedbacks.csv)", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		path = "feedbacks.csv"
	}

	f, err := os.Create(path)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	defer f.Close()

	if err := a.feedback.ExportCSV(f, a.lastAdminFeed); err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Exported %d rows to %s\n", len(a.lastAdminFeed), path)
	return nil
}
