package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/midbel/classics"
	"github.com/midbel/classics/internal/stdio"
)

const (
	EnvPrefix  = "CLASSICS"
	configName = "config"
	configType = "toml"
)

// runError marks failures that happen once inputs are being processed.
// Anything else is a configuration error.
type runError struct {
	err error
}

func (e runError) Error() string {
	return e.err.Error()
}

func (e runError) Unwrap() error {
	return e.err
}

// IsUsage reports whether err was raised before any input was processed.
func IsUsage(err error) bool {
	var re runError
	return err != nil && !errors.As(err, &re)
}

// ParsePositive parses str as a strictly positive integer. The returned error
// is the offending value.
func ParsePositive(str string) (int, error) {
	n, err := strconv.Atoi(str)
	if err != nil || n <= 0 {
		return 0, errors.New(str)
	}
	return n, nil
}

// Execute runs cmd and returns the process exit status. Configuration errors
// are reported with the usage of the command.
func Execute(cmd *cobra.Command) int {
	c, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}
	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "%s: %s", cmd.Name(), err)
	fmt.Fprintln(stderr)
	if IsUsage(err) {
		fmt.Fprint(stderr, c.UsageString())
	}
	return 1
}

// tool is the state shared by every command. The logger is replaced once the
// configuration is loaded.
type tool struct {
	name   string
	fs     afero.Fs
	viper  *viper.Viper
	logger *zap.Logger
	config string
}

func newTool(name string, fs afero.Fs) *tool {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &tool{
		name:   name,
		fs:     fs,
		viper:  viper.New(),
		logger: zap.NewNop(),
	}
}

func (t *tool) command(use, short string, run func(*cobra.Command, []string) error) *cobra.Command {
	cmd := cobra.Command{
		Use:           use,
		Short:         short,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return t.load(cmd)
		},
		RunE: run,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&t.config, "config", "", "config file (default $HOME/.config/classics/config.toml)")
	flags.Bool("debug", false, "write debug logs to stderr")
	t.bind("debug", flags.Lookup("debug"))
	return &cmd
}

func (t *tool) bind(key string, flag *pflag.Flag) {
	if err := t.viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func (t *tool) key(option string) string {
	return t.name + "." + option
}

func (t *tool) load(cmd *cobra.Command) error {
	v := t.viper
	v.SetFs(t.fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if t.config != "" {
		v.SetConfigFile(t.config)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "classics"))
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}
	if err := v.ReadInConfig(); err != nil {
		var missing viper.ConfigFileNotFoundError
		if !errors.As(err, &missing) || t.config != "" {
			return fmt.Errorf("config: %w", err)
		}
	}
	t.logger = NewLogger(v.GetBool("debug"), cmd.ErrOrStderr())
	t.logger.Debug("configuration loaded", zap.String("tool", t.name), zap.String("file", v.ConfigFileUsed()))
	return nil
}

// run binds the driver to the command streams and processes every input with
// filter. out is flushed and closed before returning.
func (t *tool) run(cmd *cobra.Command, filter classics.Filter, inputs []classics.Input, out *stdio.Writer) error {
	defer t.logger.Sync()
	if out == nil {
		out = stdio.Buffer(cmd.OutOrStdout())
	}
	driver, err := classics.NewDriver(
		classics.WithStdin(cmd.InOrStdin()),
		classics.WithStdout(out),
		classics.WithStderr(cmd.ErrOrStderr()),
		classics.WithFs(t.fs),
		classics.WithLogger(t.logger.Named(t.name)),
	)
	if err != nil {
		return err
	}
	stats, err := driver.Run(filter, inputs)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return runError{err: err}
	}
	t.logger.Debug("run completed", zap.Int("processed", stats.Processed), zap.Int("failed", stats.Failed))
	return nil
}
