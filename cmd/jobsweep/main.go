package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jobsweep/internal/config"
	"jobsweep/internal/secrets"
)

func main() {
	root := &cobra.Command{
		Use:           "jobsweep",
		Short:         "Collect job postings from configured sources, filter them, and export a delimited file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newSecretCmd())

	if err := root.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

// resolveConfig loads the effective config: an explicit --config path wins,
// otherwise the per-user config is bootstrapped from the packaged default.
func resolveConfig(explicitPath string) (config.Config, error) {
	path := explicitPath
	if path == "" {
		dataDir := os.Getenv("JOBSWEEP_DATA_DIR")
		if dataDir == "" {
			dataDir = "."
		}
		var err error
		path, err = config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			return config.Config{}, fmt.Errorf("config bootstrap failed: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the config file and print problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cfgPath)
			if err != nil {
				return err
			}
			_, res := config.NormalizeAndValidate(cfg)
			for _, w := range res.Warnings {
				fmt.Printf("warning: %s\n", w)
			}
			for _, e := range res.Errors {
				fmt.Printf("error: %s\n", e)
			}
			if !res.OK() {
				return fmt.Errorf("%d config error(s)", len(res.Errors))
			}
			fmt.Println("config ok")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.AddCommand(validate)
	return cmd
}

func newSecretCmd() *cobra.Command {
	var host, username string

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the IMAP password in the OS keychain",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Store the IMAP password (read from stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "password: ")
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return fmt.Errorf("no password read: %w", sc.Err())
			}
			pw := strings.TrimSpace(sc.Text())
			account := secrets.IMAPKeyringAccount(username, host)
			if err := secrets.SetIMAPPassword(account, pw); err != nil {
				return err
			}
			fmt.Printf("stored password for %s\n", account)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the IMAP password",
		RunE: func(cmd *cobra.Command, args []string) error {
			account := secrets.IMAPKeyringAccount(username, host)
			if err := secrets.DeleteIMAPPassword(account); err != nil {
				return err
			}
			fmt.Printf("deleted password for %s\n", account)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&host, "host", "", "IMAP host")
	cmd.PersistentFlags().StringVar(&username, "username", "", "IMAP username")
	_ = cmd.MarkPersistentFlagRequired("host")
	_ = cmd.MarkPersistentFlagRequired("username")

	cmd.AddCommand(set, del)
	return cmd
}
