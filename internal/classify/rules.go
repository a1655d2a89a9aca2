package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/util"
)

const (
	backendAPI            = "Dubox.Api/Controllers/"
	backendFeatures       = "Dubox.Application/Features/"
	backendDTOs           = "Dubox.Application/DTOs/"
	backendEntities       = "Dubox.Domain/Entities/"
	backendInfrastructure = "Dubox.Infrastructure/"
	frontendApp           = "dubox-frontend/src/app/"

	unclearNote  = "Purpose unclear — needs clarification."
	maxEndpoints = 3
)

var (
	controllerPattern = regexp.MustCompile(`class\s+(\w+Controller)\s*:`)
	endpointPattern   = regexp.MustCompile(`\[(HttpGet|HttpPost|HttpPut|HttpDelete|HttpPatch)\]\s*\w+\s+(\w+)`)
	commandPattern    = regexp.MustCompile(`(?:public\s+record\s+|class\s+)(\w+Command)\s*(?::|$)`)
	queryPattern      = regexp.MustCompile(`(?:public\s+record\s+|class\s+)(\w+Query)\s*(?::|$)`)
	handlerPattern    = regexp.MustCompile(`class\s+(\w+Handler)\s*:`)
	dtoPattern        = regexp.MustCompile(`(?:public\s+class|interface|export\s+interface)\s+(\w+Dto)\s*(?:extends|implements|:|{)`)
	entityPattern     = regexp.MustCompile(`class\s+(\w+)\s*(?::|$)`)

	componentPattern      = regexp.MustCompile(`@Component\s*\(\s*\{[^}]*selector:\s*['"]([\w-]+)['"]`)
	componentClassPattern = regexp.MustCompile(`export\s+class\s+(\w+Component)`)
	servicePattern        = regexp.MustCompile(`(?:class|export\s+class)\s+(\w+Service)\s*(?:extends|implements|:)`)
	modelPattern          = regexp.MustCompile(`(?:export\s+)?(?:interface|class|type)\s+(\w+)`)
	guardPattern          = regexp.MustCompile(`export\s+(?:class|const)\s+(\w+Guard)`)
	modulePattern         = regexp.MustCompile(`export\s+class\s+(\w+Module)`)

	declarationPattern = regexp.MustCompile(`(?:export\s+)?(?:class|interface|type)\s+(\w+)`)
)

// Match is the input to a rule's description builder.
type Match struct {
	// Name is the captured component name.
	Name string
	// Base is Name with the rule's suffix stripped.
	Base string
	File core.FileDescriptor
}

// Rule pairs a path/name condition with an extraction pattern and the text
// written for the files it recognises. Empty condition fields match anything.
type Rule struct {
	Name string

	PathPrefix   string
	PathContains string
	NameContains string
	Ext          string

	// Pattern captures the component name in group 1. When nil the name is
	// the file name with FileSuffix trimmed.
	Pattern    *regexp.Regexp
	FileSuffix string
	// Override, when it matches, replaces the name captured by Pattern or
	// supplies one when Pattern misses.
	Override *regexp.Regexp

	Suffix       string
	Purpose      string
	Describe     func(m Match) string
	Dependencies string
	Notes        func(content string) string
	Status       core.Status
}

// Conditions renders the rule's path and name conditions for display.
func (r Rule) Conditions() string {
	var parts []string
	if r.PathPrefix != "" {
		parts = append(parts, "prefix "+r.PathPrefix)
	}
	if r.PathContains != "" {
		parts = append(parts, "path has "+r.PathContains)
	}
	if r.NameContains != "" {
		parts = append(parts, "name has "+r.NameContains)
	}
	if r.Ext != "" {
		parts = append(parts, "ext "+r.Ext)
	}
	if len(parts) == 0 {
		return "any file"
	}
	return strings.Join(parts, ", ")
}

// Applies reports whether the rule's path and name conditions hold for fd.
func (r Rule) Applies(fd core.FileDescriptor) bool {
	if r.PathPrefix != "" && !strings.HasPrefix(fd.RelPath, r.PathPrefix) {
		return false
	}
	if r.PathContains != "" && !strings.Contains(fd.RelPath, r.PathContains) {
		return false
	}
	if r.NameContains != "" && !strings.Contains(fd.Name, r.NameContains) {
		return false
	}
	if r.Ext != "" && fd.Ext != r.Ext {
		return false
	}
	return true
}

// Extract runs the rule against file content. The returned record may have
// empty optional fields; ok is false when no component name was captured.
func (r Rule) Extract(fd core.FileDescriptor, content string) (core.ComponentRecord, bool) {
	var name string
	if r.Pattern == nil {
		name = strings.TrimSuffix(fd.Name, r.FileSuffix)
	} else if m := r.Pattern.FindStringSubmatch(content); m != nil {
		name = m[1]
	}
	if r.Override != nil {
		if m := r.Override.FindStringSubmatch(content); m != nil {
			name = m[1]
		}
	}
	if name == "" {
		return core.ComponentRecord{}, false
	}

	rec := core.ComponentRecord{
		Component:    name,
		FilePath:     fd.RelPath,
		Purpose:      r.Purpose,
		Dependencies: r.Dependencies,
		Status:       r.Status,
	}
	if r.Describe != nil {
		rec.WhatItDoes = r.Describe(Match{Name: name, Base: strings.TrimSuffix(name, r.Suffix), File: fd})
	}
	if r.Notes != nil {
		rec.Notes = r.Notes(content)
	}
	return rec, true
}

func describef(format string, useBase bool) func(Match) string {
	return func(m Match) string {
		if useBase {
			return fmt.Sprintf(format, m.Base)
		}
		return fmt.Sprintf(format, m.Name)
	}
}

func endpointNotes(content string) string {
	found := endpointPattern.FindAllStringSubmatch(content, maxEndpoints)
	if len(found) == 0 {
		return ""
	}
	endpoints := make([]string, 0, len(found))
	for _, m := range found {
		endpoints = append(endpoints, fmt.Sprintf("%s(%s)", m[1], m[2]))
	}
	return "Endpoints: " + strings.Join(endpoints, ", ")
}

func describeComponent(m Match) string {
	if feature := util.FeatureFromPath(m.File.RelPath); feature != "" {
		return fmt.Sprintf("UI component for %s feature", feature)
	}
	return "Reusable UI component"
}

// BuiltinRules returns the layer rules for the Dubox backend and frontend, in priority order.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:         "api-controller",
			PathPrefix:   backendAPI,
			Pattern:      controllerPattern,
			Suffix:       "Controller",
			Purpose:      "API Controller",
			Describe:     describef("Handles HTTP requests for %s operations", true),
			Dependencies: "MediatR, Application Layer",
			Notes:        endpointNotes,
		},
		{
			Name:         "cqrs-command",
			PathPrefix:   backendFeatures,
			PathContains: "/Commands/",
			Pattern:      commandPattern,
			Suffix:       "Command",
			Purpose:      "CQRS Command",
			Describe:     describef("Defines command for %s operation", true),
			Dependencies: "MediatR, Domain Layer",
		},
		{
			Name:         "cqrs-query",
			PathPrefix:   backendFeatures,
			PathContains: "/Queries/",
			Pattern:      queryPattern,
			Suffix:       "Query",
			Purpose:      "CQRS Query",
			Describe:     describef("Defines query for retrieving %s data", true),
			Dependencies: "MediatR, Domain Layer",
		},
		{
			Name:         "cqrs-handler",
			PathPrefix:   backendFeatures,
			NameContains: "Handler",
			Pattern:      handlerPattern,
			Suffix:       "Handler",
			Purpose:      "CQRS Handler",
			Describe:     describef("Handles %s business logic", true),
			Dependencies: "UnitOfWork, Repository, Domain Services",
		},
		{
			Name:         "dto",
			PathPrefix:   backendDTOs,
			Pattern:      dtoPattern,
			Suffix:       "Dto",
			Purpose:      "Data Transfer Object",
			Describe:     describef("Transfers %s data between layers", true),
			Dependencies: "Domain Entities",
		},
		{
			Name:         "domain-entity",
			PathPrefix:   backendEntities,
			Pattern:      entityPattern,
			Purpose:      "Domain Entity",
			Describe:     describef("Represents %s in the domain model", false),
			Dependencies: "Domain Enums, Domain Interfaces",
		},
		{
			Name:         "repository",
			PathPrefix:   backendInfrastructure,
			NameContains: "Repository",
			FileSuffix:   ".cs",
			Purpose:      "Repository Implementation",
			Describe:     describef("Implements data access for %s", false),
			Dependencies: "Entity Framework, Domain Entities",
		},
		{
			Name:         "infrastructure-service",
			PathPrefix:   backendInfrastructure,
			NameContains: "Service",
			FileSuffix:   ".cs",
			Purpose:      "Infrastructure Service",
			Describe:     describef("Provides infrastructure service: %s", false),
			Dependencies: "External Libraries, Domain Interfaces",
		},
		{
			Name:         "angular-component",
			PathPrefix:   frontendApp,
			Ext:          ".ts",
			NameContains: "component.ts",
			Pattern:      componentPattern,
			Override:     componentClassPattern,
			Purpose:      "Angular Component",
			Describe:     describeComponent,
			Dependencies: "Angular Core, Services, Models",
		},
		{
			Name:         "angular-service",
			PathPrefix:   frontendApp,
			Ext:          ".ts",
			NameContains: "service.ts",
			Pattern:      servicePattern,
			Suffix:       "Service",
			Purpose:      "Angular Service",
			Describe:     describef("Provides %s functionality to components", true),
			Dependencies: "HttpClient, API Service",
		},
		{
			Name:         "angular-model",
			PathPrefix:   frontendApp,
			Ext:          ".ts",
			NameContains: "model.ts",
			Pattern:      modelPattern,
			Purpose:      "TypeScript Model/Interface",
			Describe:     describef("Defines %s data structure", false),
			Dependencies: "None",
		},
		{
			Name:         "angular-guard",
			PathPrefix:   frontendApp,
			Ext:          ".ts",
			NameContains: "guard.ts",
			Pattern:      guardPattern,
			Suffix:       "Guard",
			Purpose:      "Angular Route Guard",
			Describe:     describef("Protects routes with %s logic", true),
			Dependencies: "Router, Auth Service",
		},
		{
			Name:         "angular-module",
			PathPrefix:   frontendApp,
			Ext:          ".ts",
			NameContains: "module.ts",
			Pattern:      modulePattern,
			Suffix:       "Module",
			Purpose:      "Angular Module",
			Describe:     describef("Organizes %s feature components", true),
			Dependencies: "Angular Common, Feature Components",
		},
	}
}

// FallbackRule captures any declared class, interface or type and flags it for review.
func FallbackRule() Rule {
	return Rule{
		Name:     "generic",
		Pattern:  declarationPattern,
		Purpose:  "Code File",
		Describe: describef("Contains %s implementation", false),
		Status:   core.StatusNotClear,
		Notes:    func(string) string { return unclearNote },
	}
}
