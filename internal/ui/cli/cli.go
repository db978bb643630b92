package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

const versionString = "1.0.0"

type cliOptions struct {
	configPath  string
	ignoreLibs  []string
	include     []string
	projectOnly bool
	parserMode  string
	outputPath  string
	metricsFile string
	verbose     bool
}

// variadicFlags take every following token up to the next flag as a value.
var variadicFlags = map[string]bool{
	"--ignore-libs": true,
	"--in":          true,
}

func newRootCommand(opts *cliOptions, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comptree [directory]",
		Short: "Map JSX/TSX component usage into a markmap outline",
		Long: titleStyle.Render("comptree") + statusStyle.Render(" - component usage tree generator") + `

comptree scans a directory for .jsx and .tsx files, finds which components
each file renders, and writes componentsTree.mm.md: one markmap section per
root component with its descendants as a nested list.`,
		Example: `  comptree ./app
  comptree ./app --in src/components src/pages --project-only
  comptree . --ignore-libs antd @mui/material`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file (default ./comptree.toml when present)")
	flags.StringSliceVar(&opts.ignoreLibs, "ignore-libs", nil, "libraries whose imported components are not treated as usages")
	flags.StringSliceVar(&opts.include, "in", nil, "sub-directories of the project to scan instead of the whole tree")
	flags.BoolVar(&opts.projectOnly, "project-only", false, "keep only usages of components defined in scanned files")
	flags.StringVar(&opts.parserMode, "parser", "lexical", "usage extraction mode: lexical or ast")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "output file (default componentsTree.mm.md)")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// expandVariadicFlags rewrites "--in a b" into "--in=a --in=b" so that list
// flags accept space separated values. Values end at the next token that
// starts with "-"; everything after "--" is left untouched.
func expandVariadicFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !variadicFlags[arg] {
			out = append(out, arg)
			continue
		}

		j := i + 1
		for ; j < len(args) && !strings.HasPrefix(args[j], "-"); j++ {
			out = append(out, arg+"="+args[j])
		}
		if j == i+1 {
			// No values: leave the bare flag for pflag to reject.
			out = append(out, arg)
		}
		i = j - 1
	}
	return out
}
