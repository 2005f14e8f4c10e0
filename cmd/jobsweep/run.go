package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jobsweep/internal/collect"
	"jobsweep/internal/config"
	"jobsweep/internal/domain"
	"jobsweep/internal/export"
	"jobsweep/internal/scrape"
	"jobsweep/internal/secrets"
)

func newRunCmd() *cobra.Command {
	var (
		cfgPath   string
		terms     []string
		results   int
		maxDays   int
		state     string
		identity  string
		outputDir string
		scheme    string
		stampRun  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect, filter and export once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cfgPath)
			if err != nil {
				return err
			}

			// flag overrides
			if len(terms) > 0 {
				cfg.Search.Terms = terms
			}
			if results > 0 {
				cfg.Search.ResultsWanted = results
			}
			if cmd.Flags().Changed("max-days") {
				cfg.Search.MaxDaysOld = maxDays
			}
			if state != "" {
				cfg.Search.TargetState = state
			}
			if identity != "" {
				cfg.Search.UserEmail = identity
			}
			if outputDir != "" {
				cfg.Export.OutputDir = outputDir
			}
			if scheme != "" {
				cfg.Export.Scheme = scheme
			}

			cfg, err = config.Validate(cfg)
			if err != nil {
				return err
			}

			var imapPassword string
			if cfg.Sources.Email.Enabled {
				account := secrets.IMAPKeyringAccount(cfg.Sources.Email.Username, cfg.Sources.Email.IMAPHost)
				imapPassword, err = secrets.GetIMAPPassword(account)
				if err != nil {
					return fmt.Errorf("email source enabled: %w", err)
				}
			}

			reg, err := scrape.BuildRegistry(cfg, imapPassword)
			if err != nil {
				return err
			}

			log.Printf("[run] terms=%d sources=%d results_wanted=%d max_days_old=%d target_state=%s",
				len(cfg.Search.Terms), reg.Len(), cfg.Search.ResultsWanted, cfg.Search.MaxDaysOld, cfg.Search.TargetState)

			records, report, err := collect.New(cfg, reg).Run(cmd.Context())
			if err != nil {
				return err
			}
			for _, f := range report.Failures {
				log.Printf("[run] pair failed term=%q source=%s err=%v", f.Term, f.Source, f.Err)
			}
			log.Printf("[run] pairs=%d fetched=%d kept=%d", report.Pairs, report.Fetched, report.Kept)

			runID := ""
			if stampRun {
				runID = uuid.NewString()[:8]
			}
			writer, err := export.NewWriter(cfg.Export.Scheme, cfg.Export.OutputDir, cfg.Search.UserEmail, runID)
			if err != nil {
				return err
			}

			fields := domain.RecordFields(cfg.Search.UserEmail != "")
			path, err := writer.Write(fields, records)
			if err != nil {
				return err
			}
			if path != "" {
				log.Printf("[run] done path=%s entries=%d", path, len(records))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().StringSliceVar(&terms, "terms", nil, "search terms (overrides config)")
	cmd.Flags().IntVar(&results, "results", 0, "results wanted per (term, source) pair")
	cmd.Flags().IntVar(&maxDays, "max-days", 0, "maximum posting age in days")
	cmd.Flags().StringVar(&state, "state", "", "target region code, e.g. NY")
	cmd.Flags().StringVar(&identity, "identity", "", "submitter identity used in the export filename")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "export destination directory")
	cmd.Flags().StringVar(&scheme, "scheme", "", "export scheme: csv, flat or xlsx")
	cmd.Flags().BoolVar(&stampRun, "stamp", false, "append a unique run id to the export filename")

	return cmd
}
