package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ContractSchema is the top-level structure of a contract file. JSON files
// are accepted too, since YAML is a superset of JSON.
type ContractSchema struct {
	Reference string          `yaml:"reference,omitempty"`
	Developer DeveloperSchema `yaml:"developer"`
	Client    ClientSchema    `yaml:"client"`
	Project   ProjectSchema   `yaml:"project"`
}

// DeveloperSchema describes the developer and their billing terms.
type DeveloperSchema struct {
	Name           string   `yaml:"name"`
	Nickname       string   `yaml:"nickname,omitempty"`
	Company        string   `yaml:"company,omitempty"`
	Address        string   `yaml:"address,omitempty"`
	Rate           *float64 `yaml:"rate,omitempty"`
	RateKind       string   `yaml:"rate_kind,omitempty"`
	FeedbackDays   *int     `yaml:"feedback_days"`
	PaymentDueDays *int     `yaml:"payment_due_days"`
	PaymentMethod  string   `yaml:"payment_method"`
	Interest       *float64 `yaml:"interest"`
	Jurisdiction   string   `yaml:"jurisdiction,omitempty"`
}

type ClientSchema struct {
	Name    string `yaml:"name,omitempty"`
	Company string `yaml:"company"`
	Contact string `yaml:"contact,omitempty"`
	Address string `yaml:"address,omitempty"`
}

type ProjectSchema struct {
	Name     string        `yaml:"name,omitempty"`
	Type     string        `yaml:"type"`
	Currency *string       `yaml:"currency"`
	Tasks    []string      `yaml:"tasks,omitempty"`
	Phases   []PhaseSchema `yaml:"phases"`
}

// PhaseSchema is one billable phase. Phase 0 is the down payment.
type PhaseSchema struct {
	Phase    *int     `yaml:"phase"`
	Cost     *float64 `yaml:"cost"`
	Elements []string `yaml:"elements,omitempty"`
}

// LoadSchema reads and parses a contract file.
func LoadSchema(path string) (*ContractSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema decodes a contract document. Unknown keys are rejected so that
// a misspelt field is reported instead of silently left empty.
func ParseSchema(data []byte) (*ContractSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var schema ContractSchema
	if err := dec.Decode(&schema); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing contract file: document is empty")
		}
		return nil, fmt.Errorf("parsing contract file: %w", err)
	}
	return &schema, nil
}

// EncodeSchema renders the schema as YAML.
func EncodeSchema(schema *ContractSchema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(schema); err != nil {
		return nil, fmt.Errorf("encoding contract file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding contract file: %w", err)
	}
	return buf.Bytes(), nil
}
