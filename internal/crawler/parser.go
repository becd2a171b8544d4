package crawler

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/hadithscraper/internal/config"
	"github.com/nao1215/hadithscraper/internal/model"
)

// trailingNumberRe extracts the hadith number from a reference label
// such as "Reference : Sahih al-Bukhari 1".
var trailingNumberRe = regexp.MustCompile(`(\d+)$`)

// ParseBookList extracts the books listed on a collection's index page.
//
// Only anchors whose href is exactly /<collection>/<digits> count; chapter
// and hadith links with further path segments are ignored. The result is
// sorted by number with duplicates removed (first after a stable sort wins).
func ParseBookList(doc *goquery.Document, collection string) []model.Book {
	hrefRe := regexp.MustCompile(`^/` + regexp.QuoteMeta(collection) + `/(\d+)$`)

	books := make([]model.Book, 0)
	doc.Find(fmt.Sprintf(`a[href^="/%s/"]`, collection)).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		m := hrefRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		books = append(books, model.Book{
			Number: n,
			Name:   CleanBookName(strippedText(a)),
		})
	})

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Number < books[j].Number
	})

	unique := make([]model.Book, 0, len(books))
	seen := make(map[int]bool, len(books))
	for _, b := range books {
		if seen[b.Number] {
			continue
		}
		seen[b.Number] = true
		unique = append(unique, b)
	}
	return unique
}

// ParseHadiths extracts hadith records from a book page using the selector table.
//
// Containers whose number was already seen are skipped, and containers with
// neither English nor Arabic text are dropped. Order follows the document.
func ParseHadiths(doc *goquery.Document, sel config.Selectors) []model.Hadith {
	hadiths := make([]model.Hadith, 0)
	seen := make(map[int]bool)

	doc.Find(sel.Container).Each(func(_ int, c *goquery.Selection) {
		h := extractHadith(c, sel)

		if h.Number != nil {
			if seen[*h.Number] {
				return
			}
			seen[*h.Number] = true
		}

		if h.HasText() {
			hadiths = append(hadiths, h)
		}
	})

	return hadiths
}

// extractHadith reads every field of one container independently.
// Missing sub-elements leave the field empty.
func extractHadith(c *goquery.Selection, sel config.Selectors) model.Hadith {
	var h model.Hadith

	if ref := c.Find(sel.Reference).First(); ref.Length() > 0 {
		if m := trailingNumberRe.FindStringSubmatch(strings.TrimSpace(ref.Text())); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				h.Number = model.IntPtr(n)
			}
		}
	}

	h.Narrator = firstText(c, sel.Narrator)
	h.English = strings.Join(strings.Fields(firstText(c, sel.English)), " ")
	h.Arabic = firstText(c, sel.Arabic)
	h.Chain = firstText(c, sel.Chain)

	return h
}

// firstText returns the trimmed text of the first element matching selector
// inside c, or "" if there is none.
func firstText(c *goquery.Selection, selector string) string {
	s := c.Find(selector).First()
	if s.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(s.Text())
}

// strippedText joins the trimmed text nodes under s without separators.
// Index labels are split across several elements ("1", "Revelation", Arabic
// name) with layout whitespace in between; joining them this way keeps the
// number at the very start of the label.
func strippedText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}
