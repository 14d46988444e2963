package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/alexanderramin/devcontract/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// devcontractHuhTheme returns a huh theme using the Gruvbox palette.
func devcontractHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// initAnswers holds the wizard's text fields. Numbers are kept as strings
// because huh inputs edit strings.
type initAnswers struct {
	DeveloperName    string
	DeveloperCompany string
	PaymentMethod    string
	ClientCompany    string
	ClientContact    string
	ClientAddress    string
	ProjectType      string
	Currency         string
	WorkPhases       string
	PhaseCost        string
}

// newInitAnswers pre-fills the wizard from an existing schema.
func newInitAnswers(s *importer.ContractSchema) *initAnswers {
	a := &initAnswers{
		DeveloperName:    s.Developer.Name,
		DeveloperCompany: s.Developer.Company,
		PaymentMethod:    s.Developer.PaymentMethod,
		ClientCompany:    s.Client.Company,
		ClientContact:    s.Client.Contact,
		ClientAddress:    s.Client.Address,
		ProjectType:      s.Project.Type,
		WorkPhases:       "3",
		PhaseCost:        "1000",
	}
	if s.Project.Currency != nil {
		a.Currency = *s.Project.Currency
	}
	if n := len(s.Project.Phases); n > 1 {
		a.WorkPhases = strconv.Itoa(n - 1)
	}
	if len(s.Project.Phases) > 0 && s.Project.Phases[0].Cost != nil {
		a.PhaseCost = domain.FormatNumber(*s.Project.Phases[0].Cost)
	}
	return a
}

// apply copies the answers into s. Every phase, down payment included,
// gets the same cost. Existing phase elements are kept where the phase
// still exists.
func (a *initAnswers) apply(s *importer.ContractSchema) error {
	n, err := strconv.Atoi(strings.TrimSpace(a.WorkPhases))
	if err != nil || n < 1 {
		return domain.Invalid("project.phases", "need at least one work phase, got %q", a.WorkPhases)
	}
	cost, err := parseAmount(a.PhaseCost)
	if err != nil {
		return domain.Invalid("project.phases.cost", "need a non-negative amount, got %q", a.PhaseCost)
	}

	s.Developer.Name = strings.TrimSpace(a.DeveloperName)
	s.Developer.Company = strings.TrimSpace(a.DeveloperCompany)
	s.Developer.PaymentMethod = strings.TrimSpace(a.PaymentMethod)
	s.Client.Company = strings.TrimSpace(a.ClientCompany)
	s.Client.Contact = strings.TrimSpace(a.ClientContact)
	s.Client.Address = strings.TrimSpace(a.ClientAddress)
	s.Project.Type = strings.ToLower(strings.TrimSpace(a.ProjectType))
	currency := strings.ToUpper(strings.TrimSpace(a.Currency))
	s.Project.Currency = &currency

	previous := make(map[int][]string, len(s.Project.Phases))
	for _, ph := range s.Project.Phases {
		if ph.Phase != nil {
			previous[*ph.Phase] = ph.Elements
		}
	}

	phases := make([]importer.PhaseSchema, 0, n+1)
	for i := 0; i <= n; i++ {
		idx, c := i, cost
		ph := importer.PhaseSchema{Phase: &idx, Cost: &c}
		if i != domain.DownPaymentIndex {
			ph.Elements = previous[i]
			if len(ph.Elements) == 0 {
				ph.Elements = []string{fmt.Sprintf("Phase %d deliverables.", i)}
			}
		}
		phases = append(phases, ph)
	}
	s.Project.Phases = phases
	return nil
}

// newInitForm builds the three-page contract wizard.
func newInitForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			textInput("Your name", &a.DeveloperName, validateRequired),
			textInput("Your company", &a.DeveloperCompany, nil),
			textInput("Payment method", &a.PaymentMethod, validateRequired),
		).Title("Developer"),
		huh.NewGroup(
			textInput("Client company", &a.ClientCompany, validateRequired),
			textInput("Client contact", &a.ClientContact, nil),
			textInput("Client address", &a.ClientAddress, nil),
		).Title("Client"),
		huh.NewGroup(
			textInput("Project type (one word, e.g. web)", &a.ProjectType, validateSingleWord),
			textInput("Currency", &a.Currency, validateRequired),
			textInput("Work phases", &a.WorkPhases, validatePositiveInt),
			textInput("Cost per phase", &a.PhaseCost, validateAmount),
		).Title("Project"),
	).WithTheme(devcontractHuhTheme()).WithShowHelp(false)
}

func textInput(title string, value *string, validate func(string) error) *huh.Input {
	in := huh.NewInput().
		Title(title).
		Value(value)
	if validate != nil {
		in = in.Validate(validate)
	}
	return in
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateSingleWord(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("required")
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Errorf("must be a single word")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("must be a whole number of at least 1")
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := parseAmount(s); err != nil {
		return fmt.Errorf("must be a non-negative amount")
	}
	return nil
}

// parseAmount reads a finite, non-negative number. ParseFloat alone also
// accepts "NaN" and "Inf".
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !domain.IsFinite(v) || v < 0 {
		return 0, domain.Invalid("amount", "must be a finite non-negative number, got %q", s)
	}
	return v, nil
}
