package main

import (
	"strconv"
	"strings"

	"github.com/iwvelando/impact-dashboard/internal/impact"
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/iwvelando/impact-dashboard/pkg/output"
	"github.com/iwvelando/impact-dashboard/pkg/validation"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// assignment is one --set INDEX=VALUE edit.
type assignment struct {
	index int
	raw   string
}

func parseAssignment(s string) (assignment, error) {
	indexPart, raw, ok := strings.Cut(s, "=")
	if !ok {
		return assignment{}, eris.Errorf("expected INDEX=VALUE, got %q", s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(indexPart))
	if err != nil {
		return assignment{}, eris.Wrapf(err, "invalid record index in %q", s)
	}
	return assignment{index: index, raw: raw}, nil
}

func newSummaryCmd(a *app) *cobra.Command {
	var (
		sets         []string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the impact records, total impact and multiplier",
		Example: `  impact-dashboard summary
  impact-dashboard summary --set 0=10 --set 1=abc --output-format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// CLI override takes precedence over config
			format := a.conf.Output.Format
			if outputFormat != "" {
				format = outputFormat
			}
			if format == "" {
				format = constants.OutputFormatPretty
			}
			if err := validation.ValidateOutputFormat(format); err != nil {
				return err
			}

			model := a.conf.NewModel()
			for _, s := range sets {
				edit, err := parseAssignment(s)
				if err != nil {
					return err
				}
				if _, err := model.SetValue(edit.index, edit.raw); err != nil {
					return eris.Wrapf(err, "failed to apply --set %s", s)
				}
				a.logger.Debug("applied impact value",
					zap.String("op", "main.summary"),
					zap.Int("index", edit.index),
				)
			}

			return writeSummary(cmd, a, format, model.Summary())
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a record value as INDEX=VALUE (0=Direct, 1=Indirect, 2=Induced); repeatable, applied in order")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	return cmd
}

func writeSummary(cmd *cobra.Command, a *app, format string, summary impact.Summary) error {
	w := cmd.OutOrStdout()
	switch format {
	case constants.OutputFormatCSV:
		output.CsvFormat(w, summary)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, a.conf.Title, a.conf.Subtitle, summary)
	default:
		output.PrettyFormat(w, a.conf.Title, summary)
		if a.conf.Subtitle != "" {
			_, _ = w.Write([]byte(a.conf.Subtitle + "\n"))
		}
	}
	return nil
}
