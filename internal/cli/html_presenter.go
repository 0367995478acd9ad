package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/at-ishikawa/phrasecards/internal/i18n"
	"github.com/at-ishikawa/phrasecards/internal/session"
)

// HTMLPresenter writes every view as an HTML fragment.
type HTMLPresenter struct {
	localizer *i18n.Localizer
	writer    io.Writer
}

func NewHTMLPresenter(localizer *i18n.Localizer, writer io.Writer) *HTMLPresenter {
	return &HTMLPresenter{
		localizer: localizer,
		writer:    writer,
	}
}

func (p *HTMLPresenter) Render(_ context.Context, view session.View) error {
	var node *html.Node
	if view.Card != nil {
		node = p.cardNode(view)
	} else {
		node = p.sectionCompleteNode(view)
	}
	if err := html.Render(p.writer, node); err != nil {
		return fmt.Errorf("html.Render() > %w", err)
	}
	if _, err := io.WriteString(p.writer, "\n"); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	return nil
}

func (p *HTMLPresenter) ShowError(err error) {
	node := element(atom.Div, "error-message",
		element(atom.P, "", text(p.localizer.T(i18n.KeyLoadError))),
		element(atom.Pre, "", text(err.Error())),
	)
	_ = html.Render(p.writer, node)
	_, _ = io.WriteString(p.writer, "\n")
}

func (p *HTMLPresenter) cardNode(view session.View) *html.Node {
	card := element(atom.Div, "card")
	card.Attr = append(card.Attr,
		html.Attribute{Key: "data-section", Val: view.SectionKey},
		html.Attribute{Key: "data-direction", Val: view.Direction.String()},
	)
	if current, total, ok := view.Progress(); ok {
		card.AppendChild(element(atom.Div, "card-counter",
			text(p.localizer.T(i18n.KeyProgress, strconv.Itoa(current), strconv.Itoa(total)))))
	}

	card.AppendChild(p.phraseNode(view.Card.Prompt))
	if view.Card.Answer == nil {
		return card
	}
	answer := *view.Card.Answer
	card.AppendChild(p.phraseNode(answer))
	if len(view.Card.Prompt.Options) == 0 && len(answer.Options) == 0 {
		return card
	}
	card.AppendChild(element(atom.Div, "options-container",
		p.optionsNode(view.Card.Prompt),
		p.optionsNode(answer),
	))
	return card
}

func (p *HTMLPresenter) phraseNode(phrase session.Phrase) *html.Node {
	textClass := "phrase-text"
	value := phrase.Text
	if phrase.Missing {
		textClass = "phrase-text missing"
		value = p.localizer.T(i18n.KeyTranslationUnavailable)
	}
	return element(atom.Div, "main-phrase lang-"+phrase.Lang,
		element(atom.Div, "phrase-label", text(p.localizer.LanguageName(phrase.Lang))),
		element(atom.Div, textClass, text(value)),
	)
}

// optionsNode renders an empty group when the phrase has no alternatives.
func (p *HTMLPresenter) optionsNode(phrase session.Phrase) *html.Node {
	group := element(atom.Div, "options-group")
	if len(phrase.Options) == 0 {
		return group
	}
	list := element(atom.Ul, "options-list")
	for _, option := range phrase.Options {
		list.AppendChild(element(atom.Li, "option-item", text(option)))
	}
	group.AppendChild(element(atom.Div, "options-label",
		text(p.localizer.T(i18n.KeyOptions, strings.ToUpper(phrase.Lang)))))
	group.AppendChild(list)
	return group
}

func (p *HTMLPresenter) sectionCompleteNode(view session.View) *html.Node {
	message := p.localizer.T(i18n.KeySectionCompleteMessage)
	if view.AllComplete {
		message = p.localizer.T(i18n.KeyAllCompleteMessage)
	}
	card := element(atom.Div, "card section-complete",
		element(atom.Div, "main-phrase",
			element(atom.H2, "", text(p.localizer.T(i18n.KeySectionComplete))),
			element(atom.P, "", text(message)),
		),
	)
	card.Attr = append(card.Attr, html.Attribute{Key: "data-section", Val: view.SectionKey})
	return card
}

func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		node.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

func text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}
