package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arraymod/pkg/arrayapi"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Print the default namespace classification table",
	RunE:  runOps,
}

func runOps(cmd *cobra.Command, args []string) error {
	ns := arrayapi.Default()
	fmt.Printf("namespace %s (%d symbols)\n", ns.Name(), ns.Count())
	for _, name := range ns.Names() {
		sym, _ := ns.Lookup(name)
		detail := ""
		if sym.Kind == arrayapi.SymbolElementwise {
			detail = fmt.Sprintf(" nin=%d", sym.Ufunc.NIn)
		}
		fmt.Printf("  %-12s %s%s\n", name, sym.Kind, detail)
	}
	return nil
}
