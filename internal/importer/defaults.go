package importer

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }
func ptrStr(s string) *string     { return &s }

// DefaultSchema returns the placeholder contract used when no contract file
// is given and as the starting point for `init`.
func DefaultSchema() *ContractSchema {
	return &ContractSchema{
		Developer: DeveloperSchema{
			Name:           "Gabriel Dunn",
			Company:        "Gabe Dunn Development",
			FeedbackDays:   ptrInt(3),
			PaymentDueDays: ptrInt(7),
			PaymentMethod:  "E-Transfer",
			Interest:       ptrFloat(5),
		},
		Client: ClientSchema{
			Company: "Placeholder Inc.",
			Contact: "John Smith",
			Address: "123 Fake Address Lane",
		},
		Project: ProjectSchema{
			Name:     "Placeholder Project",
			Type:     "web",
			Currency: ptrStr("CAD"),
			Tasks:    []string{"Design and develop a web application."},
			Phases: []PhaseSchema{
				{Phase: ptrInt(0), Cost: ptrFloat(1000)},
				{Phase: ptrInt(1), Cost: ptrFloat(1000), Elements: []string{
					"Project setup.",
					"Initial mockups",
					"Initial layout.",
				}},
				{Phase: ptrInt(2), Cost: ptrFloat(1000), Elements: []string{
					"Basic application functionality.",
					"Content creation and input.",
					"Initial styling.",
				}},
				{Phase: ptrInt(3), Cost: ptrFloat(1000), Elements: []string{
					"Finalize functionality.",
					"Finalize content.",
					"Finalize layout.",
					"Finalize styling.",
				}},
			},
		},
	}
}
