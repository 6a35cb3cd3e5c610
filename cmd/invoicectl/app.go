package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	invoicingapp "github.com/invoicer/backend/internal/application/invoicing"
	templateapp "github.com/invoicer/backend/internal/application/template"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	domaintemplate "github.com/invoicer/backend/internal/domain/template"
	"github.com/invoicer/backend/internal/infrastructure/logger"
	"github.com/invoicer/backend/internal/infrastructure/rendering"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "invoicectl",
		Usage: "compute, format and preview invoices offline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level (debug, info, warn, error)"},
		},
		Commands: []*cli.Command{
			totalsCommand(),
			formatCommand(),
			parseCommand(),
			templatesCommand(),
			previewCommand(),
			nextNumberCommand(),
		},
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.New(logger.Config{Level: c.String("log-level"), Format: "console", Output: "stderr"})
}

var (
	currencyFlag = &cli.StringFlag{Name: "currency", Aliases: []string{"c"}, Usage: "ISO 4217 code, overrides the file"}
	localeFlag   = &cli.StringFlag{Name: "locale", Aliases: []string{"l"}, Usage: "BCP 47 tag, overrides the file"}
)

func totalsCommand() *cli.Command {
	return &cli.Command{
		Name:      "totals",
		Usage:     "compute the totals of a JSON invoice draft",
		ArgsUsage: "<invoice.json>",
		Flags:     []cli.Flag{currencyFlag, localeFlag},
		Action: func(c *cli.Context) error {
			var req invoicingapp.ComputeTotalsRequest
			if err := readJSON(c.Args().First(), &req); err != nil {
				return err
			}
			if c.IsSet("currency") {
				req.Currency = c.String("currency")
			}
			if c.IsSet("locale") {
				req.Locale = c.String("locale")
			}

			log, err := newLogger(c)
			if err != nil {
				return err
			}
			resp, err := invoicingapp.NewInvoicingService(log, invoicingapp.Defaults{}).ComputeTotals(c.Context, req)
			if err != nil {
				return explain(err)
			}
			return writeTotals(c.App.Writer, resp)
		},
	}
}

func writeTotals(w io.Writer, resp *invoicingapp.TotalsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, line := range resp.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", line.Description, line.Quantity, line.Rate, line.Total)
	}
	f := resp.Formatted
	fmt.Fprintf(tw, "Subtotal\t\t\t%s\t\n", f.Subtotal)
	if !resp.Rounded.DiscountAmount.IsZero() {
		fmt.Fprintf(tw, "Discount\t\t\t-%s\t\n", f.DiscountAmount)
	}
	fmt.Fprintf(tw, "Tax\t\t\t%s\t\n", f.TaxAmount)
	fmt.Fprintf(tw, "Total\t\t\t%s\t\n", f.Total)
	fmt.Fprintf(tw, "Paid\t\t\t%s\t\n", f.TotalPaid)
	fmt.Fprintf(tw, "Balance due\t\t\t%s\t\n", f.BalanceDue)
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, warning := range resp.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning.Message)
	}
	return nil
}

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "format an amount for display",
		ArgsUsage: "<amount>",
		Flags:     []cli.Flag{currencyFlag, localeFlag},
		Action: func(c *cli.Context) error {
			amount, err := decimal.NewFromString(c.Args().First())
			if err != nil {
				return fmt.Errorf("amount %q is not a number", c.Args().First())
			}
			log, err := newLogger(c)
			if err != nil {
				return err
			}
			resp, err := invoicingapp.NewInvoicingService(log, invoicingapp.Defaults{}).FormatMoney(c.Context, invoicingapp.FormatMoneyRequest{
				Amount:   amount,
				Currency: c.String("currency"),
				Locale:   c.String("locale"),
			})
			if err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintln(c.App.Writer, resp.Formatted)
			return err
		},
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "read the amount behind a display string",
		ArgsUsage: "<text>",
		Flags:     []cli.Flag{currencyFlag, localeFlag},
		Action: func(c *cli.Context) error {
			log, err := newLogger(c)
			if err != nil {
				return err
			}
			resp, err := invoicingapp.NewInvoicingService(log, invoicingapp.Defaults{}).ParseMoney(c.Context, invoicingapp.ParseMoneyRequest{
				Text:     c.Args().First(),
				Currency: c.String("currency"),
				Locale:   c.String("locale"),
			})
			if err != nil {
				return explain(err)
			}
			_, err = fmt.Fprintln(c.App.Writer, resp.Amount.StringFixed(valueobject.Currency(resp.Currency).Scale()))
			return err
		},
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "list template designs and themes",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DESIGN\tLAYOUT\tNAME")
			for _, d := range domaintemplate.AllDesigns() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID(), d.Layout().ID(), d.Name())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer)
			for _, th := range domaintemplate.AllThemes() {
				fmt.Fprintf(c.App.Writer, "theme %s (%s)\n", th.ID, th.Name)
			}
			return nil
		},
	}
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "render a JSON preview request to HTML",
		ArgsUsage: "<preview.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "design or design/theme, overrides the file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			var req templateapp.PreviewRequest
			if err := readJSON(c.Args().First(), &req); err != nil {
				return err
			}
			if c.IsSet("template") {
				req.TemplateID = c.String("template")
			}

			log, err := newLogger(c)
			if err != nil {
				return err
			}
			html, err := rendering.NewHTMLRenderer()
			if err != nil {
				return err
			}
			svc, err := templateapp.NewTemplateService(html, log, domaintemplate.DefaultTemplate.ID(), valueobject.DefaultCurrency)
			if err != nil {
				return err
			}
			resp, err := svc.Preview(c.Context, req)
			if err != nil {
				return explain(err)
			}

			if out := c.String("out"); out != "" {
				return os.WriteFile(out, []byte(resp.HTML), 0o644)
			}
			_, err = io.WriteString(c.App.Writer, resp.HTML)
			return err
		},
	}
}

func nextNumberCommand() *cli.Command {
	return &cli.Command{
		Name:      "next-number",
		Usage:     "suggest the invoice number after the given ones",
		ArgsUsage: "[existing numbers...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prefix", Value: invoicing.DefaultNumberPrefix},
		},
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, invoicing.NextNumber(c.String("prefix"), c.Args().Slice()))
			return err
		},
	}
}

func readJSON(path string, v any) error {
	if path == "" {
		return errors.New("an input file is required")
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// explain prefixes domain errors with their code
func explain(err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return fmt.Errorf("%s: %w", domainErr.Code, err)
	}
	return err
}
