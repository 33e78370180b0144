package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kucheran101/ensguard/internal/model"
)

// NewExplainCmd creates the explain command.
// This command documents the scoring model without running any generation.
func NewExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain the scoring model and variant classes",
		Long: `Explain prints a description of how ensguard scores look-alike variants:
the weight of each variant class, how character position affects the
score, and what to do about high-scoring variants.

Examples:
  # Human-readable explanation
  ensguard explain

  # Machine-readable explanation for tooling
  ensguard explain --json`,
		Args: cobra.NoArgs,
		RunE: runExplainCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output explanation in JSON format")

	return cmd
}

// Explanation describes the scoring model for external tooling.
type Explanation struct {
	// Scoring summarizes how a variant's confusability score is computed.
	Scoring string `json:"scoring"`

	// Classes describes each variant class in priority order.
	Classes []ClassExplanation `json:"classes"`

	// Advice lists general recommendations for protecting a label.
	Advice []string `json:"advice"`
}

// ClassExplanation describes one variant class.
type ClassExplanation struct {
	// Name is the canonical class name.
	Name string `json:"name"`

	// Weight is the base score weight for the class.
	Weight float64 `json:"weight"`

	// Description explains what the class generates.
	Description string `json:"description"`

	// Advice tells the user how to defend against this class.
	Advice string `json:"advice"`
}

// scoringSummary is the one-paragraph description of the scoring model.
const scoringSummary = "Each variant starts from its class weight, is boosted when the " +
	"edit happens near the start of the label (readers scan the first " +
	"characters most carefully), and adjusted by visual similarity. " +
	"A variant reachable through several classes keeps the highest " +
	"score, never a sum. Scores fall in [0, 1]; anything above 0.7 " +
	"deserves attention."

// generalAdvice lists the label-independent recommendations.
var generalAdvice = []string{
	"Register the highest-scoring variants yourself before someone else does.",
	"Add exported watchlists to monitoring so new registrations of variants are flagged.",
	"Publish your canonical name prominently so users can verify it.",
	"Prefer labels without characters that have common Unicode look-alikes.",
}

// runExplainCmd executes the explain command.
func runExplainCmd(cmd *cobra.Command, _ []string) error {
	explanation := buildExplanation()

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(explanation)
	}

	return outputExplanationText(explanation)
}

// buildExplanation assembles the explanation from the class registry.
func buildExplanation() *Explanation {
	explanation := &Explanation{
		Scoring: scoringSummary,
		Advice:  generalAdvice,
	}

	for _, class := range model.Classes() {
		info := model.GetClassInfo(class)
		explanation.Classes = append(explanation.Classes, ClassExplanation{
			Name:        class.String(),
			Weight:      class.Weight(),
			Description: info.Description,
			Advice:      info.Advice,
		})
	}

	return explanation
}

// outputExplanationText prints the explanation in human-readable form.
func outputExplanationText(explanation *Explanation) error {
	fmt.Println("How ensguard scores look-alike variants")
	fmt.Println()
	fmt.Println(explanation.Scoring)
	fmt.Println()

	fmt.Println("Variant classes (in priority order):")
	for _, class := range explanation.Classes {
		fmt.Printf("\n  %s (weight %.2f)\n", class.Name, class.Weight)
		fmt.Printf("    %s\n", class.Description)
		fmt.Printf("    Advice: %s\n", class.Advice)
	}

	fmt.Println("\nGeneral advice:")
	for _, advice := range explanation.Advice {
		fmt.Printf("  • %s\n", advice)
	}

	return nil
}
