package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calctools/serseg"
	"github.com/calctools/serseg/fontpack"
	"github.com/calctools/serseg/format"
)

func main() {
	_ = cmd.Execute()
}

var cmd = &cobra.Command{
	Use:   "ti-asset-builder",
	Short: "Build TI-84 Plus CE assets from TOML definitions",
	Long: `ti-asset-builder compiles TOML asset definitions and their source images
into the binary formats consumed on-calculator, or into C and assembly
renderings of those bytes for compiling assets directly into a program.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

var flag = struct {
	LogLevel string
	Format   formatFlag
}{
	Format: formatFlag(format.OutputBinary),
}

func init() {
	cmd.PersistentFlags().StringVar(&flag.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().VarP(&flag.Format, "format", "f", "Output format: bin, c, or asm")
}

var logger = zap.NewNop()

func configureLogging(*cobra.Command, []string) error {
	level, err := zapcore.ParseLevel(flag.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	logger = newLogger(os.Stderr, level)
	serseg.SetLogger(logger)
	fontpack.SetLogger(logger)

	return nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
