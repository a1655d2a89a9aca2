// Package app runs the documentation pipeline: read the template, scan the
// project, classify source files and write one row per component.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sevigo/docsheet/internal/config"
	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/sheet"
)

// ErrTemplateNotFound is returned when the configured template file does not exist.
var ErrTemplateNotFound = errors.New("template not found")

const creator = "docsheet"

//go:generate go run go.uber.org/mock/mockgen -destination=../../mocks/mock_app.go -package=mocks github.com/sevigo/docsheet/internal/app FileSource,CommitResolver

// FileSource lists the project files to document.
type FileSource interface {
	Enumerate() ([]core.FileDescriptor, error)
}

// Classifier turns a project file into a component record.
type Classifier interface {
	Accepts(fd core.FileDescriptor) bool
	Classify(fd core.FileDescriptor) (core.ComponentRecord, bool)
}

// CommitResolver resolves the commit the project is checked out at.
type CommitResolver interface {
	HeadSHA(path string) (string, error)
	Describe(path string) string
}

// App holds the pipeline components.
type App struct {
	cfg        *config.Config
	files      FileSource
	classifier Classifier
	git        CommitResolver
	logger     *slog.Logger
	out        io.Writer
}

// Result describes a completed run.
type Result struct {
	RunID        string
	OutputPath   string
	Sheet        string
	FromTemplate bool
	Commit       string
	Revision     string
	Scanned      int
	Analyzed     int
	Records      []core.ComponentRecord
	Duration     time.Duration
}

// New creates an App. Progress lines are written to out; a nil out discards them.
func New(cfg *config.Config, files FileSource, classifier Classifier, git CommitResolver, logger *slog.Logger, out io.Writer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &App{
		cfg:        cfg,
		files:      files,
		classifier: classifier,
		git:        git,
		logger:     logger,
		out:        out,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() *config.Config { return a.cfg }

// Output returns the writer progress lines go to.
func (a *App) Output() io.Writer { return a.out }

// Run executes the pipeline and saves the filled workbook.
func (a *App) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	timer := newStepTimer(a.out, 5)
	logger.Info("starting documentation run", "root", a.cfg.Project.Root, "template", a.cfg.TemplatePath)

	titleColor.Fprintln(a.out, "Project documentation generator")
	dimColor.Fprintf(a.out, "   Root: %s\n", a.cfg.Project.Root)

	timer.step("Reading template")
	if _, err := os.Stat(a.cfg.TemplatePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, a.cfg.TemplatePath)
		}
		return nil, fmt.Errorf("failed to access template %s: %w", a.cfg.TemplatePath, err)
	}
	wb, err := sheet.OpenTemplate(a.cfg.TemplatePath, a.cfg.SheetTitle, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			logger.Warn("failed to close workbook", "error", cerr)
		}
	}()
	cols := sheet.MapColumns(wb.Headers())
	if !wb.FromTemplate() {
		timer.info("Template unreadable, using a new workbook")
	}
	timer.done(fmt.Sprintf("Sheet %q, %d columns mapped", wb.Sheet(), len(cols)))

	timer.step("Scanning project")
	files, err := a.files.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	timer.done(fmt.Sprintf("Found %d files", len(files)))

	timer.step("Analyzing files")
	records, analyzed, err := a.classify(ctx, timer, files)
	if err != nil {
		return nil, err
	}
	timer.done(fmt.Sprintf("Analyzed %d components", len(records)))

	timer.step("Writing components")
	if _, err := wb.AppendRecords(cols, records); err != nil {
		return nil, fmt.Errorf("failed to write components: %w", err)
	}
	timer.done()

	timer.step("Saving workbook")
	commit, revision := a.headCommit()
	if err := wb.SetProperties(a.properties(runID, commit, revision)); err != nil {
		logger.Warn("failed to set document properties", "error", err)
	}
	if err := wb.Save(a.cfg.OutputPath); err != nil {
		return nil, err
	}
	timer.done(a.cfg.OutputPath)

	res := &Result{
		RunID:        runID,
		OutputPath:   a.cfg.OutputPath,
		Sheet:        wb.Sheet(),
		FromTemplate: wb.FromTemplate(),
		Commit:       commit,
		Revision:     revision,
		Scanned:      len(files),
		Analyzed:     analyzed,
		Records:      records,
		Duration:     time.Since(start),
	}
	logger.Info("documentation run finished", "components", len(records), "output", res.OutputPath, "duration", res.Duration)
	successColor.Fprintf(a.out, "\nDocumented %d components in %s\n", len(records), res.Duration.Round(time.Millisecond))
	dimColor.Fprintf(a.out, "   Output: %s\n", res.OutputPath)
	return res, nil
}

func (a *App) classify(ctx context.Context, timer *stepTimer, files []core.FileDescriptor) ([]core.ComponentRecord, int, error) {
	var records []core.ComponentRecord
	analyzed := 0
	for _, fd := range files {
		if err := ctx.Err(); err != nil {
			return nil, analyzed, fmt.Errorf("analysis interrupted: %w", err)
		}
		if !a.classifier.Accepts(fd) {
			continue
		}
		analyzed++
		rec, ok := a.classifier.Classify(fd)
		if !ok {
			continue
		}
		records = append(records, rec)
		if a.cfg.ProgressEvery > 0 && len(records)%a.cfg.ProgressEvery == 0 {
			timer.info("Analyzed %d components...", len(records))
		}
	}
	return records, analyzed, nil
}

// headCommit returns the HEAD hash and its "branch@sha" label, both empty
// when the project is not in a git repository.
func (a *App) headCommit() (string, string) {
	if a.git == nil {
		return "", ""
	}
	sha, err := a.git.HeadSHA(a.cfg.Project.Root)
	if err != nil {
		a.logger.Debug("commit unavailable", "root", a.cfg.Project.Root, "error", err)
		return "", ""
	}
	return sha, a.git.Describe(a.cfg.Project.Root)
}

func (a *App) properties(runID, commit, revision string) sheet.Properties {
	desc := "Generated from " + a.cfg.Project.Root
	if commit != "" {
		desc += " at commit " + commit
	}
	if revision != "" {
		desc += " (" + revision + ")"
	}
	return sheet.Properties{
		Title:       a.cfg.SheetTitle,
		Creator:     creator,
		Description: desc,
		Identifier:  runID,
	}
}
