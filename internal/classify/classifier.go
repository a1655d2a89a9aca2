// Package classify guesses the architectural role of a source file from its
// path and contents and turns it into a component record.
package classify

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/sevigo/docsheet/internal/core"
)

// DefaultExtensions are the source files the classifier reads.
var DefaultExtensions = []string{".cs", ".ts", ".html", ".scss"}

const (
	defaultPurpose      = "Code File"
	defaultDependencies = "See code"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../mocks/mock_source_reader.go -package=mocks github.com/sevigo/docsheet/internal/classify SourceReader

// SourceReader loads file contents for classification.
type SourceReader interface {
	ReadFile(name string) ([]byte, error)
}

type osReader struct{}

func (osReader) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// Classifier evaluates an ordered rule list against project files.
type Classifier struct {
	project        []Rule
	rules          []Rule
	fallback       Rule
	extensions     map[string]bool
	reader         SourceReader
	fallbackOnMiss bool
	logger         *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithReader replaces the filesystem reader.
func WithReader(r SourceReader) Option {
	return func(c *Classifier) { c.reader = r }
}

// WithExtensions restricts classification to the given lowercased extensions.
func WithExtensions(exts []string) Option {
	return func(c *Classifier) {
		c.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			c.extensions[strings.ToLower(ext)] = true
		}
	}
}

// WithProjectRules puts project-specific rules ahead of the built-in table.
// A project rule whose pattern misses hands the file on to the built-in rules.
func WithProjectRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.project = append(c.project, rules...)
	}
}

// WithFallbackOnMiss retries the generic declaration rule when the owning
// rule's pattern finds nothing. By default such files are dropped.
func WithFallbackOnMiss(enabled bool) Option {
	return func(c *Classifier) { c.fallbackOnMiss = enabled }
}

// New returns a Classifier over the built-in rules.
func New(logger *slog.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Classifier{
		rules:    BuiltinRules(),
		fallback: FallbackRule(),
		reader:   osReader{},
		logger:   logger,
	}
	WithExtensions(DefaultExtensions)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rules returns the effective rule list in evaluation order, fallback last.
func (c *Classifier) Rules() []Rule {
	rules := append(slices.Clone(c.project), c.rules...)
	return append(rules, c.fallback)
}

// Accepts reports whether fd has one of the classified extensions.
func (c *Classifier) Accepts(fd core.FileDescriptor) bool {
	return c.extensions[fd.Ext]
}

// Classify reads fd and returns its record. Unreadable files and files no
// rule recognises yield ok == false.
func (c *Classifier) Classify(fd core.FileDescriptor) (core.ComponentRecord, bool) {
	if !c.Accepts(fd) {
		return core.ComponentRecord{}, false
	}
	data, err := c.reader.ReadFile(fd.AbsPath)
	if err != nil {
		c.logger.Debug("skipping unreadable file", "file", fd.RelPath, "error", err)
		return core.ComponentRecord{}, false
	}
	return c.ClassifyContent(fd, strings.ToValidUTF8(string(data), ""))
}

// ClassifyContent applies the rules to already-decoded content. The first
// project rule that extracts a name wins; otherwise the first built-in rule
// whose conditions hold owns the file.
func (c *Classifier) ClassifyContent(fd core.FileDescriptor, content string) (core.ComponentRecord, bool) {
	for _, rule := range c.project {
		if !rule.Applies(fd) {
			continue
		}
		if rec, ok := rule.Extract(fd, content); ok {
			return withDefaults(rec), true
		}
	}

	for _, rule := range c.rules {
		if !rule.Applies(fd) {
			continue
		}
		if rec, ok := rule.Extract(fd, content); ok {
			return withDefaults(rec), true
		}
		if !c.fallbackOnMiss {
			c.logger.Debug("rule matched path but not content", "rule", rule.Name, "file", fd.RelPath)
			return core.ComponentRecord{}, false
		}
		break
	}

	rec, ok := c.fallback.Extract(fd, content)
	if !ok {
		return core.ComponentRecord{}, false
	}
	return withDefaults(rec), true
}

func withDefaults(rec core.ComponentRecord) core.ComponentRecord {
	if rec.Purpose == "" {
		rec.Purpose = defaultPurpose
	}
	if rec.WhatItDoes == "" {
		rec.WhatItDoes = "Implements " + rec.Component
	}
	if rec.Dependencies == "" {
		rec.Dependencies = defaultDependencies
	}
	if rec.Status == "" {
		rec.Status = core.StatusDone
	}
	return rec
}
