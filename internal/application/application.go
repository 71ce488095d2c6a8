package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/iwat/randseq/internal/domain"
)

const (
	DefaultBitLength = 128
	DefaultFilename  = "java_sequence.txt"
)

const sequenceFilePerm = 0644

type App struct {
	generator  SequenceGenerator
	fileReader FileReader
	fileWriter FileWriter
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
}

func NewApp(generator SequenceGenerator, fileReader FileReader, fileWriter FileWriter, stdout, stderr io.Writer, logger *slog.Logger) *App {
	return &App{
		generator:  generator,
		fileReader: fileReader,
		fileWriter: fileWriter,
		stdout:     stdout,
		stderr:     stderr,
		logger:     logger,
	}
}

// Run generates a DefaultBitLength sequence, prints it and saves it to
// DefaultFilename
func (app *App) Run(ctx context.Context) {
	seq := app.Generate(ctx, DefaultBitLength)
	fmt.Fprintf(app.stdout, "Random %d-bit binary sequence: %s\n", DefaultBitLength, seq)
	app.Save(ctx, DefaultFilename, seq)
}

func (app *App) Generate(ctx context.Context, length int) domain.BitSequence {
	seq := app.generator.Generate(length)
	app.logger.DebugContext(ctx, "generated sequence",
		"length", seq.Len(),
		"ones", seq.Ones(),
		"frequency_p", seq.FrequencyPValue())
	return seq
}

// Save writes seq to filename. Failures are reported on stderr and are not
// returned to the caller.
func (app *App) Save(ctx context.Context, filename string, seq domain.BitSequence) {
	err := app.fileWriter.WriteFile(filename, []byte(seq), sequenceFilePerm)
	if err != nil {
		app.logger.DebugContext(ctx, "write failed", "file", filename, "err", err)
		fmt.Fprintf(app.stderr, "Error writing to file: %v\n", err)
		return
	}
	app.logger.DebugContext(ctx, "sequence written", "file", filename, "bytes", seq.Len())
	fmt.Fprintf(app.stdout, "Sequence saved to %s\n", filename)
}

// LoadSequence reads a previously saved sequence, ignoring surrounding
// whitespace
func (app *App) LoadSequence(ctx context.Context, filename string) (domain.BitSequence, error) {
	data, err := app.fileReader.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to load sequence: %w", err)
	}
	seq, err := domain.ParseBitSequence(strings.TrimSpace(string(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse sequence in %s: %w", filename, err)
	}
	app.logger.DebugContext(ctx, "loaded sequence", "file", filename, "length", seq.Len())
	return seq, nil
}
