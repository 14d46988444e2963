package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/contract"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// FormatGenerated reports where a generated contract went.
func FormatGenerated(r *contract.GenerateResponse) string {
	total := domain.FormatMoney(r.TotalCost, r.Currency)
	if !r.Written {
		return Dim(fmt.Sprintf("Dry run: %d bytes rendered, total %s, nothing written.", len(r.Markdown), total))
	}
	return Success(fmt.Sprintf("Wrote %s (%d bytes, total %s)", r.OutputPath, len(r.Markdown), total))
}

// FormatValidation lists every problem found in a contract file.
func FormatValidation(source string, errs []error) string {
	if len(errs) == 0 {
		return Success(source + " is valid")
	}

	var b strings.Builder
	noun := "problems"
	if len(errs) == 1 {
		noun = "problem"
	}
	b.WriteString(Failure(fmt.Sprintf("%d %s in %s", len(errs), noun, source)))
	b.WriteString("\n")
	for _, err := range errs {
		b.WriteString("  " + StyleRed.Render("•") + " " + err.Error() + "\n")
	}
	return b.String()
}
