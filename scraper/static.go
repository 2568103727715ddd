package scraper

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// HTMLElement adapts a parsed goquery selection to the Element capability.
// It runs the same field strategies as the live extractor against captured
// page HTML, which is how the extraction chains are exercised offline.
type HTMLElement struct {
	sel *goquery.Selection
}

// ParseCards finds every card matching cardSelector in an HTML document.
func ParseCards(r io.Reader, cardSelector string) ([]*HTMLElement, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var cards []*HTMLElement
	doc.Find(cardSelector).Each(func(_ int, s *goquery.Selection) {
		cards = append(cards, &HTMLElement{sel: s})
	})
	return cards, nil
}

func (e *HTMLElement) Text(selector string) (string, error) {
	s := e.sel.Find(selector).First()
	if s.Length() == 0 {
		return "", fmt.Errorf("no element matches %q", selector)
	}
	return s.Text(), nil
}

func (e *HTMLElement) Attr(selector, name string) (string, error) {
	s := e.sel.Find(selector).First()
	if s.Length() == 0 {
		return "", fmt.Errorf("no element matches %q", selector)
	}
	v, ok := s.Attr(name)
	if !ok {
		return "", fmt.Errorf("element %q has no attribute %q", selector, name)
	}
	return v, nil
}

func (e *HTMLElement) RootAttr(name string) (string, error) {
	v, ok := e.sel.Attr(name)
	if !ok {
		return "", fmt.Errorf("card has no attribute %q", name)
	}
	return v, nil
}
