package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/phrasecards/internal/content"
)

func newValidateCommand() *cobra.Command {
	var languages []string

	command := &cobra.Command{
		Use:   "validate",
		Short: "Check the configured collection for missing phrases and unreachable cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			doc, err := loadDocument(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if len(languages) == 0 {
				languages = []string{cfg.Session.SourceLanguage, cfg.Session.TargetLanguage}
			}
			issues := content.Validate(doc, languages, cfg.Session.CardsPerSection)
			displayValidationResults(cmd.OutOrStdout(), doc, languages, issues)

			if len(issues) > 0 {
				return fmt.Errorf("validation failed with %d issue(s)", len(issues))
			}
			return nil
		},
	}

	command.Flags().StringSliceVar(&languages, "languages", nil, "Languages every card must have (default: the configured source and target language)")
	return command
}

func displayValidationResults(w io.Writer, doc *content.Document, languages []string, issues []content.Issue) {
	_, _ = fmt.Fprintf(w, "\n=== Validation Results: %s (%s) ===\n", doc.Collection, strings.Join(languages, ", "))

	byKind := make(map[content.IssueKind][]content.Issue)
	for _, issue := range issues {
		byKind[issue.Kind] = append(byKind[issue.Kind], issue)
	}
	for _, group := range []struct {
		kind  content.IssueKind
		title string
	}{
		{kind: content.IssueEmptySection, title: "Empty sections"},
		{kind: content.IssueMissingPhrase, title: "Missing phrases"},
		{kind: content.IssueTruncated, title: "Cards beyond the section limit"},
	} {
		found := byKind[group.kind]
		if len(found) == 0 {
			continue
		}
		_, _ = color.New(color.FgRed).Fprintf(w, "✗ %s (%d):\n", group.title, len(found))
		for _, issue := range found {
			_, _ = fmt.Fprintf(w, "  - %s\n", issue)
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, "=== Summary ===")
	if len(issues) == 0 {
		_, _ = color.New(color.FgGreen).Fprintf(w, "✓ %d sections, %d cards: all validations passed!\n", len(doc.Sections), doc.CardCount())
		return
	}
	_, _ = fmt.Fprintf(w, "✗ Total issues: %d\n", len(issues))
}
