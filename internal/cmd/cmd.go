package cmd

import (
	"io"
	"log/slog"

	"github.com/iwat/randseq/internal/application"
	"github.com/iwat/randseq/internal/domain"
	"github.com/iwat/randseq/internal/infrastructure/fsio"
	"github.com/spf13/cobra"
)

type AppBuilder struct {
	generator  application.SequenceGenerator
	fileReader application.FileReader
	fileWriter application.FileWriter
	logger     *slog.Logger
	app        *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithGenerator(generator application.SequenceGenerator) *AppBuilder {
	b.generator = generator
	return b
}

func (b *AppBuilder) WithFileReader(reader application.FileReader) *AppBuilder {
	b.fileReader = reader
	return b
}

func (b *AppBuilder) WithFileWriter(writer application.FileWriter) *AppBuilder {
	b.fileWriter = writer
	return b
}

func (b *AppBuilder) WithLogger(logger *slog.Logger) *AppBuilder {
	b.logger = logger
	return b
}

// Build assembles the App, filling unset collaborators with the local
// filesystem, a time-seeded generator and the default logger
func (b *AppBuilder) Build(stdout, stderr io.Writer) {
	if b.generator == nil {
		b.generator = domain.NewGenerator()
	}
	if b.fileReader == nil {
		b.fileReader = fsio.OSFileReader{}
	}
	if b.fileWriter == nil {
		b.fileWriter = fsio.OSFileWriter{}
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.app = application.NewApp(b.generator, b.fileReader, b.fileWriter, stdout, stderr, b.logger)
}

func (b *AppBuilder) App() *application.App {
	return b.app
}

// RootCmd returns the randseq command. It reads no flags or arguments.
func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "randseq",
		Short:              "Generate a random 128-bit binary sequence",
		Long:               "Generate a random 128-bit binary sequence and save it to " + application.DefaultFilename,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appBuilder.Build(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		Run: func(cmd *cobra.Command, args []string) {
			appBuilder.App().Run(cmd.Context())
		},
	}

	return rootCmd
}
