package cli

import (
	"github.com/alexanderramin/devcontract/internal/config"
	"github.com/spf13/pflag"
)

// addConfigFlag registers the contract file flag shared by every command
// that reads a contract.
func addConfigFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVarP(target, "config", "c", def, "Contract file (YAML or JSON); built-in placeholder when empty")
}

// addSeparatorFlag registers the block separator flag. Escapes such as
// `\n` are expanded the same way as in DEVCONTRACT_SEPARATOR.
func addSeparatorFlag(fs *pflag.FlagSet, target *string, def string) {
	*target = def
	fs.Var((*separatorValue)(target), "separator", "Text inserted between rendered blocks (escapes like \\n allowed)")
}

// separatorValue is a string flag that unescapes its argument on Set.
type separatorValue string

func (v *separatorValue) Set(s string) error {
	*v = separatorValue(config.Unescape(s))
	return nil
}

func (v *separatorValue) String() string { return string(*v) }

func (v *separatorValue) Type() string { return "string" }
