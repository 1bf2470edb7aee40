package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VoxDroid/cmgr/internal/config"
	"github.com/VoxDroid/cmgr/internal/db"
	"github.com/VoxDroid/cmgr/internal/nameutil"
	"github.com/VoxDroid/cmgr/internal/notice"
	"github.com/VoxDroid/cmgr/internal/registry"
)

var (
	cfgFile string

	cfg    = config.Defaults()
	logger = fallbackLogger()
)

// fsFactory returns the filesystem used by export and import. Tests swap it
// for an in-memory one.
var fsFactory = func() afero.Fs { return afero.NewOsFs() }

var rootCmd = &cobra.Command{
	Use:   "cmgr",
	Short: "cmgr keeps prioritized groups of shell commands and runs them",
	Long: `cmgr is a personal command registry. Commands are stored in named groups
with a priority, and exec picks one by exact text, by glob pattern or by
highest priority and runs it with the terminal attached.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is <data dir>/config.yaml)")
	pf.String("db", "", "path to the registry database")
	pf.String("log-level", "", "notice level: debug, info, warn, error")
	pf.Bool("no-color", false, "disable colored notices")
}

// initConfig resolves settings from flags, CMGR_* variables and the config
// file, then builds the notice logger every command writes to.
func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"db_path":   "db",
		"log_level": "log-level",
		"no_color":  "no-color",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	c, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	log, err := notice.New(cmd.ErrOrStderr(), c.LogLevel, c.NoColor)
	if err != nil {
		return err
	}
	cfg, logger = c, log
	logger.WithFields(logrus.Fields{"db": c.DBPath, "group": c.DefaultGroup}).Debug("configuration loaded")
	return nil
}

// fallbackLogger reports errors raised before the configuration is loaded.
func fallbackLogger() *logrus.Logger {
	log, _ := notice.New(os.Stderr, "info", false)
	return log
}

// openStore opens the configured registry database. The caller closes it.
func openStore() (*registry.SQLiteStore, error) {
	conn, err := db.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return registry.NewSQLiteStore(conn), nil
}

// groupFlag returns --group, falling back to the configured default group.
func groupFlag(cmd *cobra.Command) string {
	g, _ := cmd.Flags().GetString("group")
	if g == "" {
		return cfg.DefaultGroup
	}
	return cleanArg("group name", g)
}

// cleanArg strips characters pasted along with a group name or command and
// warns when that changed more than surrounding whitespace.
func cleanArg(kind, s string) string {
	out, changed := nameutil.Clean(s)
	if changed && out != strings.TrimSpace(s) {
		logger.Warnf("Removed invisible characters from the %s; using %q.", kind, out)
	}
	return out
}

// Execute runs the root command and returns the process exit code. A failed
// child process yields its own exit code.
func Execute() int {
	return exitCode(rootCmd.ExecuteContext(context.Background()))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug(err.Error())
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		return 1
	}
	logger.Error(err.Error())
	return 1
}
