// Package export saves or streams the PDF report of one day.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/report"
)

// Export writes the report for Day. With Stdout set the PDF bytes go to Out
// and nothing is saved.
type Export struct {
	App      *appsvc.App
	Exporter *report.Exporter
	Day      string
	Stdout   bool
	Out      io.Writer
}

func (e *Export) Do(ctx context.Context) error {
	if e.App == nil || e.Exporter == nil {
		return errors.New("can not export, no app")
	}
	if e.Stdout {
		if e.Out == nil {
			return errors.New("can not export, no output")
		}
		data, err := e.Exporter.Bytes(ctx, e.Day)
		if err != nil {
			return err
		}
		_, err = e.Out.Write(data)
		return err
	}

	e.App.Navigate(appsvc.ScreenPDF)
	if err := e.App.SetPDFDay(e.Day); err != nil {
		return err
	}
	path, err := e.App.ExportDay(ctx, e.App.PDFDay())
	if err != nil {
		return err
	}
	if e.Out != nil {
		_, _ = fmt.Fprintln(e.Out, path)
	}
	return nil
}
