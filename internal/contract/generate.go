package contract

import (
	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateRequest asks for one contract to be assembled and rendered.
type GenerateRequest struct {
	Contract  domain.Contract
	Separator string
	// DryRun skips the document writer; the response still carries the text.
	DryRun bool
}

// NewGenerateRequest returns a request with the default empty separator.
func NewGenerateRequest(c domain.Contract) GenerateRequest {
	return GenerateRequest{Contract: c}
}

type GenerateResponse struct {
	Nodes      []document.Node
	Markdown   string
	TotalCost  decimal.Decimal
	Currency   string
	OutputPath string
	Written    bool
}

// HeadingCount returns the number of headings of the given level in the
// generated document (0 counts all levels).
func (r *GenerateResponse) HeadingCount(level int) int {
	return document.CountHeadings(r.Nodes, level)
}
