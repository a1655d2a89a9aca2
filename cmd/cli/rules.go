package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/docsheet/internal/classify"
	"github.com/sevigo/docsheet/internal/wire"
)

var outputJSON bool

type ruleView struct {
	Name         string `json:"name"`
	Conditions   string `json:"conditions"`
	Pattern      string `json:"pattern,omitempty"`
	Purpose      string `json:"purpose"`
	Dependencies string `json:"dependencies,omitempty"`
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Lists the classification rules in evaluation order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		classifier, cleanup, err := wire.InitializeClassifier(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize classifier: %w", err)
		}
		defer cleanup()

		views := ruleViews(classifier.Rules())
		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(views)
		}

		rows := make([][]string, 0, len(views))
		for i, v := range views {
			rows = append(rows, []string{fmt.Sprint(i + 1), v.Name, v.Conditions, v.Purpose, v.Dependencies})
		}
		fmt.Fprintln(os.Stdout, newTable([]string{"#", "RULE", "CONDITIONS", "PURPOSE", "DEPENDENCIES"}, rows, 2))
		return nil
	},
}

func ruleViews(rules []classify.Rule) []ruleView {
	views := make([]ruleView, 0, len(rules))
	for _, r := range rules {
		v := ruleView{
			Name:         r.Name,
			Conditions:   r.Conditions(),
			Purpose:      r.Purpose,
			Dependencies: r.Dependencies,
		}
		if r.Pattern != nil {
			v.Pattern = r.Pattern.String()
		}
		views = append(views, v)
	}
	return views
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rulesCmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(rulesCmd)
}
