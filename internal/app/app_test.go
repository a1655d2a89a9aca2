package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/docsheet/internal/classify"
	"github.com/sevigo/docsheet/internal/config"
	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/scan"
	"github.com/sevigo/docsheet/internal/sheet"
	"github.com/sevigo/docsheet/mocks"
)

var projectFiles = map[string]string{
	"Dubox.Api/Controllers/OrderController.cs": `[ApiController]
public class OrderController : ControllerBase
{
    [HttpGet]
    IActionResult GetAll() => Ok();
}`,
	"Dubox.Domain/Entities/Order.cs":            "public class Order : BaseEntity\n{\n}",
	"Dubox.Domain/Entities/Empty.cs":            "// nothing declared here",
	"Dubox.Api/bin/Debug/Generated.cs":          "public class Generated {}",
	"Dubox.Api/Helpers/Clock.cs":                "public class Clock {}",
	"Dubox.Api/appsettings.json":                `{"Logging": {}}`,
	"dubox-frontend/src/app/app.module.ts":      "export class AppModule {}",
	"dubox-frontend/src/app/node_modules/x.ts":  "export class Hidden {}",
	"Dubox.Infrastructure/OrderRepository.cs":   "public class OrderRepository {}",
	"Dubox.Application/Features/README.txt":     "notes",
	"Dubox.Application/DTOs/OrderDto.cs":        "public class OrderDto {\n}",
	"Dubox.Application/Features/Orders/Foo.cs":  "internal sealed class Foo {}",
	"Dubox.Infrastructure/Email/SmtpService.cs": "public class SmtpService {}",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range projectFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return root
}

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	wb, err := sheet.NewWorkbook("Components")
	require.NoError(t, err)
	path := filepath.Join(dir, "template.xlsx")
	require.NoError(t, wb.Save(path))
	require.NoError(t, wb.Close())
	return path
}

func testConfig(root, template string) *config.Config {
	return &config.Config{
		TemplatePath: template,
		Project: config.ProjectPaths{
			Root:        root,
			BackendDirs: []string{"Dubox.Api", "Dubox.Application", "Dubox.Domain", "Dubox.Infrastructure"},
			FrontendDir: "dubox-frontend/src/app",
		},
		OutputPath:    filepath.Join(root, "Documentation", "Project_Filled.xlsx"),
		SheetTitle:    "Project Components",
		Scan:          config.ScanConfig{ExcludeDirs: []string{"bin", "obj", "node_modules"}, Extensions: classify.DefaultExtensions},
		ProgressEvery: 50,
	}
}

func newApp(cfg *config.Config, git CommitResolver, out io.Writer) *App {
	logger := discardLogger()
	files := scan.NewEnumerator(cfg.Project.Root, cfg.Project.Roots(), cfg.Scan.ExcludeDirs, logger)
	classifier := classify.New(logger, classify.WithExtensions(cfg.Scan.Extensions))
	return New(cfg, files, classifier, git, logger, out)
}

func readRows(t *testing.T, path, sheetName string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := writeProject(t)
	cfg := testConfig(root, writeTemplate(t, t.TempDir()))

	git := mocks.NewMockCommitResolver(ctrl)
	git.EXPECT().HeadSHA(root).Return("0123456789abcdef", nil)
	git.EXPECT().Describe(root).Return("main@0123456789ab")

	var out bytes.Buffer
	res, err := newApp(cfg, git, &out).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, res.FromTemplate)
	assert.Equal(t, "0123456789abcdef", res.Commit)
	assert.Equal(t, "main@0123456789ab", res.Revision)
	assert.Equal(t, cfg.OutputPath, res.OutputPath)
	// Excluded dirs and unscanned files never reach the classifier.
	assert.Equal(t, 11, res.Scanned)
	assert.Equal(t, 9, res.Analyzed)

	components := make(map[string]core.ComponentRecord)
	for _, r := range res.Records {
		components[r.Component] = r
	}
	assert.Len(t, res.Records, 8)
	assert.Contains(t, components, "OrderController")
	assert.Contains(t, components, "Order")
	assert.Contains(t, components, "Clock")
	assert.Contains(t, components, "AppModule")
	assert.Contains(t, components, "OrderRepository")
	assert.Contains(t, components, "OrderDto")
	assert.Contains(t, components, "SmtpService")
	assert.Contains(t, components, "Foo")
	assert.NotContains(t, components, "Generated")
	assert.NotContains(t, components, "Hidden")
	assert.Equal(t, core.StatusNotClear, components["Clock"].Status)

	rows := readRows(t, cfg.OutputPath, "Components")
	require.Len(t, rows, 1+len(res.Records))
	assert.Equal(t, sheet.CanonicalHeaders, rows[0])

	f, err := excelize.OpenFile(cfg.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "docsheet", props.Creator)
	assert.Contains(t, props.Description, "at commit 0123456789abcdef (main@0123456789ab)")
	assert.Equal(t, res.RunID, props.Identifier)

	assert.Contains(t, out.String(), "Step 1/5: Reading template...")
	assert.Contains(t, out.String(), "Step 5/5: Saving workbook...")
	assert.Contains(t, out.String(), "Documented 8 components")
}

func TestRun_TemplateNotFound(t *testing.T) {
	root := writeProject(t)
	cfg := testConfig(root, filepath.Join(root, "missing.xlsx"))

	_, err := newApp(cfg, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no output expected")
}

func TestRun_UnreadableTemplate(t *testing.T) {
	root := writeProject(t)
	legacy := filepath.Join(t.TempDir(), "DUBOX Tracking Application.xls")
	require.NoError(t, os.WriteFile(legacy, []byte("legacy biff workbook"), 0600))
	cfg := testConfig(root, legacy)

	git := mocks.NewMockCommitResolver(gomock.NewController(t))
	git.EXPECT().HeadSHA(root).Return("", errors.New("not a git repository"))

	res, err := newApp(cfg, git, nil).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.FromTemplate)
	assert.Empty(t, res.Commit)
	assert.Empty(t, res.Revision)

	rows := readRows(t, cfg.OutputPath, "Project Components")
	assert.Equal(t, sheet.CanonicalHeaders, rows[0])
	assert.Len(t, rows, 1+len(res.Records))
}

func TestRun_ReportsProgressPerComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	cfg := testConfig(root, writeTemplate(t, t.TempDir()))
	cfg.ProgressEvery = 2

	var descriptors []core.FileDescriptor
	for _, name := range []string{"A.cs", "B.cs", "Empty.cs", "C.cs", "D.txt"} {
		path := filepath.Join(root, name)
		content := "public class " + strings.TrimSuffix(name, filepath.Ext(name)) + " {}"
		if name == "Empty.cs" {
			content = "// no declaration"
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		descriptors = append(descriptors, core.FileDescriptor{
			RelPath: "Dubox.Api/" + name, AbsPath: path, Ext: filepath.Ext(name), Name: name,
		})
	}

	files := mocks.NewMockFileSource(ctrl)
	files.EXPECT().Enumerate().Return(descriptors, nil)

	var out bytes.Buffer
	logger := discardLogger()
	res, err := New(cfg, files, classify.New(logger), nil, logger, &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Analyzed)
	assert.Len(t, res.Records, 3)
	assert.Equal(t, 1, strings.Count(out.String(), "Analyzed 2 components..."))
	assert.NotContains(t, out.String(), "Analyzed 4 components...")
}

func TestRun_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t.TempDir(), writeTemplate(t, t.TempDir()))

	files := mocks.NewMockFileSource(ctrl)
	files.EXPECT().Enumerate().Return(nil, errors.New("permission denied"))

	_, err := New(cfg, files, classify.New(nil), nil, nil, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan project")
}

func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(t.TempDir(), writeTemplate(t, t.TempDir()))

	files := mocks.NewMockFileSource(ctrl)
	files.EXPECT().Enumerate().Return([]core.FileDescriptor{
		{RelPath: "Dubox.Api/A.cs", Ext: ".cs", Name: "A.cs"},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cfg, files, classify.New(nil), nil, nil, nil).Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
