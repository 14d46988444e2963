package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/devcontract/internal/config"
	"github.com/alexanderramin/devcontract/internal/importer"
	"github.com/alexanderramin/devcontract/internal/repository"
	"github.com/alexanderramin/devcontract/internal/service"
	"github.com/alexanderramin/devcontract/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App whose generated documents land in a temp dir.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), config.DefaultOutputFile)
	return &App{
		Config: cfg,
		Contracts: func(output string) service.ContractService {
			if output == "" {
				return service.NewContractService(nil)
			}
			return service.NewContractService(repository.NewFileDocumentRepo(output))
		},
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

const validContract = `
reference: ref-42
developer:
  name: Ada Lovelace
  company: Analytical Engines
  feedback_days: 2
  payment_due_days: 14
  payment_method: Wire
  interest: 1.5
  jurisdiction: Ontario
client:
  company: Babbage Ltd.
  contact: Charles
project:
  type: mobile
  currency: EUR
  tasks: [Build an app.]
  phases:
    - {phase: 0, cost: 500}
    - {phase: 2, cost: 750, elements: [Polish.]}
    - {phase: 1, cost: 250, elements: [Prototype.]}
`

// --- generate ---

func TestGenerateCmd_DefaultContract(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "generate")
	require.NoError(t, err)

	data, err := os.ReadFile(app.Config.OutputPath)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "# Web Development Contract.\n\n"))
	assert.Contains(t, out, text)
	assert.Contains(t, out, "Wrote "+app.Config.OutputPath)
	assert.Contains(t, out, "total $4000 CAD")
}

func TestGenerateCmd_ContractFile(t *testing.T) {
	app := testApp(t)
	path := testutil.WriteFile(t, "contract.yaml", validContract)
	output := filepath.Join(t.TempDir(), "out", "Mobile.md")

	_, err := executeCmd(t, app, "generate", "--config", path, "--output", output, "--quiet")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# Mobile Development Contract.\n\n"))
	assert.Contains(t, text, "**Reference** ref-42")
	assert.Contains(t, text, "$1500 EUR")
	assert.Less(t, strings.Index(text, "### Phase 1"), strings.Index(text, "### Phase 2"))
	assert.Contains(t, text, "under exclusive jurisdiction of Ontario.")
}

func TestGenerateCmd_Quiet(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "generate", "-q")
	require.NoError(t, err)
	assert.NotContains(t, out, "# Web Development Contract.")
	assert.Contains(t, out, "Wrote")
}

func TestGenerateCmd_DryRun(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "# Web Development Contract.")
	assert.Contains(t, out, "nothing written")
	assert.NoFileExists(t, app.Config.OutputPath)
}

func TestGenerateCmd_Overwrites(t *testing.T) {
	app := testApp(t)
	require.NoError(t, os.WriteFile(app.Config.OutputPath, []byte(strings.Repeat("stale\n", 5000)), 0o644))

	_, err := executeCmd(t, app, "generate", "-q")
	require.NoError(t, err)

	data, err := os.ReadFile(app.Config.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestGenerateCmd_Separator(t *testing.T) {
	app := testApp(t)
	app.Config.Separator = "---\n"
	out, err := executeCmd(t, app, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "# Web Development Contract.\n\n---\n")
}

func TestGenerateCmd_SeparatorFlagExpandsEscapes(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "generate", "--dry-run", "--separator", `---\n`)
	require.NoError(t, err)
	assert.Contains(t, out, "# Web Development Contract.\n\n---\n")
	assert.NotContains(t, out, `---\n`)
}

func TestGenerateCmd_InvalidContractWritesNothing(t *testing.T) {
	app := testApp(t)
	path := testutil.WriteFile(t, "bad.yaml", strings.Replace(validContract, "currency: EUR", `currency: ""`, 1))

	_, err := executeCmd(t, app, "generate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.currency")
	assert.NoFileExists(t, app.Config.OutputPath)
}

func TestGenerateCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "generate", "extra")
	assert.Error(t, err)
}

// --- validate ---

func TestValidateCmd_Valid(t *testing.T) {
	path := testutil.WriteFile(t, "contract.yaml", validContract)
	out, err := executeCmd(t, testApp(t), "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+" is valid")
}

func TestValidateCmd_BuiltIn(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in contract is valid")
}

func TestValidateCmd_ListsEveryProblem(t *testing.T) {
	path := testutil.WriteFile(t, "bad.yaml", `
developer: {name: Ada, feedback_days: 1, payment_due_days: 1, payment_method: cash, interest: 1}
client: {company: C}
project:
  type: two words
  currency: USD
  phases:
    - {phase: 1, cost: -5}
`)
	out, err := executeCmd(t, testApp(t), "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "3 problems")
	assert.Contains(t, out, "project.type")
	assert.Contains(t, out, "project.phases[0].cost")
	assert.Contains(t, out, "project.phases[phase=0]")
}

func TestValidateCmd_NonFiniteCost(t *testing.T) {
	path := testutil.WriteFile(t, "nan.yaml", `
developer: {name: Ada, feedback_days: 1, payment_due_days: 1, payment_method: cash, interest: .inf}
client: {company: C}
project:
  type: web
  currency: USD
  phases:
    - {phase: 0, cost: .nan}
`)
	out, err := executeCmd(t, testApp(t), "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "2 problems")
	assert.Contains(t, out, "developer.interest")
	assert.Contains(t, out, "project.phases[0].cost")
}

func TestValidateCmd_UnknownField(t *testing.T) {
	path := testutil.WriteFile(t, "typo.yaml", validContract+"colour: red\n")
	_, err := executeCmd(t, testApp(t), "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

// --- summary ---

func TestSummaryCmd(t *testing.T) {
	path := testutil.WriteFile(t, "contract.yaml", validContract)
	out, err := executeCmd(t, testApp(t), "summary", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Mobile Development Contract.")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Babbage Ltd.")
	assert.Contains(t, out, "ref-42")
	assert.Contains(t, out, "$1500 EUR")
	assert.Contains(t, out, "Due after down payment: $1000 EUR")
}

// --- init ---

func TestInitCmd_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.yaml")
	out, err := executeCmd(t, testApp(t), "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	schema, err := importer.LoadSchema(path)
	require.NoError(t, err)
	assert.Empty(t, importer.ValidateSchema(schema))
	_, err = uuid.Parse(schema.Reference)
	assert.NoError(t, err)
	assert.Equal(t, "Gabriel Dunn", schema.Developer.Name)
	assert.Len(t, schema.Project.Phases, 4)
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path := testutil.WriteFile(t, "contract.yaml", "keep me")
	_, err := executeCmd(t, testApp(t), "init", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestInitCmd_RefusesDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "elsewhere.yaml")
	link := filepath.Join(dir, "contract.yaml")
	require.NoError(t, os.Symlink(target, link))

	_, err := executeCmd(t, testApp(t), "init", "-o", link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoFileExists(t, target)
}

func TestInitCmd_Force(t *testing.T) {
	path := testutil.WriteFile(t, "contract.yaml", "keep me")
	_, err := executeCmd(t, testApp(t), "init", "-o", path, "--force", "--defaults")
	require.NoError(t, err)

	_, err = importer.Load(path)
	assert.NoError(t, err)
}

func TestInitThenGenerate(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "contract.yaml")
	_, err := executeCmd(t, app, "init", "-o", path)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "generate", "-c", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "**Reference** ")
}

// --- preview ---

func TestPreviewCmd_NonInteractivePrintsMarkdown(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "preview")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Web Development Contract.\n\n"))
	assert.NoFileExists(t, app.Config.OutputPath)
}
