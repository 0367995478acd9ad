package content

import "fmt"

type IssueKind string

const (
	IssueMissingPhrase IssueKind = "missing_phrase"
	IssueEmptySection  IssueKind = "empty_section"
	IssueTruncated     IssueKind = "truncated_section"
)

// Issue is a non-fatal finding about a document. CardIndex is -1 for section-level issues.
type Issue struct {
	Kind       IssueKind
	SectionKey string
	CardIndex  int
	Language   string
	Detail     string
}

func (i Issue) String() string {
	if i.CardIndex < 0 {
		return fmt.Sprintf("%s: %s", i.SectionKey, i.Detail)
	}
	return fmt.Sprintf("%s #%d: %s", i.SectionKey, i.CardIndex+1, i.Detail)
}

// Validate reports cards without a phrase for one of languages, and sections whose
// cards would not all be reachable with cardsPerSection. cardsPerSection <= 0 skips that check.
func Validate(doc *Document, languages []string, cardsPerSection int) []Issue {
	var issues []Issue
	for _, section := range doc.Sections {
		if len(section.Cards) == 0 {
			issues = append(issues, Issue{
				Kind:       IssueEmptySection,
				SectionKey: section.Key,
				CardIndex:  -1,
				Detail:     "section has no cards",
			})
			continue
		}
		if cardsPerSection > 0 && len(section.Cards) > cardsPerSection {
			issues = append(issues, Issue{
				Kind:       IssueTruncated,
				SectionKey: section.Key,
				CardIndex:  -1,
				Detail:     fmt.Sprintf("%d of %d cards are never shown", len(section.Cards)-cardsPerSection, len(section.Cards)),
			})
		}

		for i, card := range section.Cards {
			for _, lang := range languages {
				if _, ok := card.Phrase(lang); ok {
					continue
				}
				issues = append(issues, Issue{
					Kind:       IssueMissingPhrase,
					SectionKey: section.Key,
					CardIndex:  i,
					Language:   lang,
					Detail:     fmt.Sprintf("no phrase for %s", lang),
				})
			}
		}
	}
	return issues
}
