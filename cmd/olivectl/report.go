package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"olive/config"
	"olive/database"
	"olive/entities"
	"olive/pkg/analytics"
	analyticsSvcImp "olive/pkg/analytics/serviceImp"
	fieldSvcImp "olive/pkg/field/serviceImp"
	"olive/pkg/report"
	reportSvcImp "olive/pkg/report/serviceImp"
	"olive/pkg/store"
	taskSvcImp "olive/pkg/task/serviceImp"
)

const formatTable = "table"

func newReportCmd() *cobra.Command {
	var (
		from, to string
		format   string
		out      string
		as       string
	)
	kinds := make([]string, len(report.Kinds))
	for i, k := range report.Kinds {
		kinds[i] = string(k)
	}
	cmd := &cobra.Command{
		Use:       "report <kind>",
		Short:     "Run an aggregation against the configured record store",
		Long:      "Kinds: " + strings.Join(kinds, ", ") + ".",
		Example:   "  olivectl report cost-analysis --from 2026-01-01 --to 2026-03-31 --format xlsx --out q1.xlsx",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := report.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown report %q (want one of %s)", args[0], strings.Join(kinds, ", "))
			}
			var ff report.Format
			if format != formatTable {
				if ff, ok = report.ParseFormat(format); !ok {
					return fmt.Errorf("unknown format %q", format)
				}
			}
			r, err := analytics.ParseRange(from, to, time.Now())
			if err != nil {
				return err
			}

			st, err := openStore(loadConfig())
			if err != nil {
				return err
			}
			actor, err := resolveActor(cmd.Context(), st, as)
			if err != nil {
				return err
			}
			fSvc := fieldSvcImp.NewFieldService(st.Fields, st.Lifecycles)
			tSvc := taskSvcImp.NewTaskService(st.Tasks, st.Fields, st.Users, nil, time.Now)
			svc := reportSvcImp.NewReportService(analyticsSvcImp.NewAnalyticsService(st.Fields, st.Tasks), fSvc, tSvc)

			t, err := svc.Build(cmd.Context(), actor, kind, r)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if format == formatTable {
				return printTable(w, t)
			}
			return report.Render(w, t, ff)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start, YYYY-MM-DD or RFC3339 (default 30 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "range end (default now)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "table, csv, xlsx or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&as, "as", "", "user id whose view to report (default: administrator view)")
	return cmd
}

func openStore(cfg config.AppConfig) (*store.Store, error) {
	var db *gorm.DB
	if cfg.RecordSource == config.SourceSQLite {
		var err error
		if db, err = database.OpenSQLite(cfg.DBPath); err != nil {
			return nil, err
		}
	}
	return store.Open(cfg, db)
}

func resolveActor(ctx context.Context, st *store.Store, id string) (*entities.User, error) {
	if id == "" {
		return &entities.User{ID: "olivectl", Email: "olivectl", Role: entities.RoleAdministrator}, nil
	}
	return st.Users.FindByID(ctx, id)
}

func printTable(w io.Writer, t report.Table) error {
	fmt.Fprintf(w, "%s\n%s\n\n", t.Title, t.Subtitle)
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "No rows.")
		return nil
	}
	table := tablewriter.NewWriter(w)
	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	table.Header(header...)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = report.Text(v)
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}
