// Package cli implements the txplan commands. They run the projection engine
// locally on the default parameter values plus --set overrides, without a
// server or a session store behind them.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
)

var (
	legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat}
)

type GlobalOptions struct {
	Output    string
	Overrides []string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Output: tableFormat,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringArrayVarP(&o.Overrides, "set", "s", nil, "Override a parameter, e.g. --set c_dial=55000. May be repeated.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	if _, err := parseOverrides(o.Overrides); err != nil {
		return err
	}
	return nil
}

// printResource marshals v as json or yaml. Table output is command-specific.
func printResource(v any, output string) error {
	switch output {
	case jsonFormat:
		marshalled, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		fmt.Printf("%s", string(marshalled))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}
