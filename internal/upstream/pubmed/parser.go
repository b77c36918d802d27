package pubmed

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

type xmlArticleSet struct {
	XMLName  xml.Name     `xml:"PubmedArticleSet"`
	Articles []xmlArticle `xml:"PubmedArticle"`
}

type xmlArticle struct {
	Citation struct {
		PMID    string `xml:"PMID"`
		Article struct {
			Title    string `xml:"ArticleTitle"`
			Abstract struct {
				Texts []string `xml:"AbstractText"`
			} `xml:"Abstract"`
			Journal struct {
				Title           string `xml:"Title"`
				ISOAbbreviation string `xml:"ISOAbbreviation"`
				Issue           struct {
					PubDate struct {
						Year  string `xml:"Year"`
						Month string `xml:"Month"`
						Day   string `xml:"Day"`
					} `xml:"PubDate"`
				} `xml:"JournalIssue"`
			} `xml:"Journal"`
			Authors []struct {
				LastName string `xml:"LastName"`
				ForeName string `xml:"ForeName"`
				Initials string `xml:"Initials"`
			} `xml:"AuthorList>Author"`
		} `xml:"Article"`
	} `xml:"MedlineCitation"`
	IDs []struct {
		Type  string `xml:"IdType,attr"`
		Value string `xml:",chardata"`
	} `xml:"PubmedData>ArticleIdList>ArticleId"`
}

// parseArticleXML maps an efetch payload into articles. Entries without a
// PMID are skipped; a payload that is not PubmedArticleSet XML is a
// DataFormat failure.
func parseArticleXML(body []byte) (ArticleResult, error) {
	var set xmlArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return ArticleResult{}, upstream.DataFormatf("parse efetch XML: %v", err)
	}

	result := ArticleResult{Articles: []Article{}}
	for _, raw := range set.Articles {
		pmid := strings.TrimSpace(raw.Citation.PMID)
		if pmid == "" {
			continue
		}

		article := Article{
			PMID:     pmid,
			Title:    strings.TrimSpace(raw.Citation.Article.Title),
			Abstract: joinNonEmpty(raw.Citation.Article.Abstract.Texts, " "),
		}

		for _, id := range raw.IDs {
			if id.Type == "pmc" && strings.TrimSpace(id.Value) != "" {
				article.PMCID = strings.TrimSpace(id.Value)
				break
			}
		}

		journal := raw.Citation.Article.Journal
		if journal.Title != "" || journal.ISOAbbreviation != "" {
			pubDate := joinNonEmpty([]string{
				journal.Issue.PubDate.Year,
				journal.Issue.PubDate.Month,
				journal.Issue.PubDate.Day,
			}, " ")
			article.Journal = &Journal{
				Title:           journal.Title,
				ISOAbbreviation: journal.ISOAbbreviation,
				PubDate:         pubDate,
			}
		}

		for _, author := range raw.Citation.Article.Authors {
			if author.LastName == "" && author.ForeName == "" && author.Initials == "" {
				continue
			}
			article.Authors = append(article.Authors, Author{
				LastName: author.LastName,
				ForeName: author.ForeName,
				Initials: author.Initials,
			})
		}

		result.Articles = append(result.Articles, article)
	}
	return result, nil
}

// parseFullTextXML extracts readable text from a PMC full-text payload:
// the article title, abstract paragraphs, and body paragraphs, joined by
// blank lines. A payload with no text content is a DataFormat failure.
func parseFullTextXML(body []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))

	var (
		sections []string
		stack    []string
		current  strings.Builder
	)

	inStack := func(name string) bool {
		for _, elem := range stack {
			if elem == name {
				return true
			}
		}
		return false
	}
	collecting := func() bool {
		if len(stack) == 0 || inStack("back") || inStack("ref-list") {
			return false
		}
		if inStack("article-title") {
			return true
		}
		return inStack("p") && (inStack("abstract") || inStack("body"))
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", upstream.DataFormatf("parse PMC XML: %v", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if collecting() && (t.Name.Local == "p" || t.Name.Local == "article-title") {
				if text := strings.TrimSpace(current.String()); text != "" {
					sections = append(sections, text)
				}
				current.Reset()
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if collecting() {
				current.Write(t)
			}
		}
	}

	if len(sections) == 0 {
		return "", upstream.DataFormatf("no text content found in PMC XML")
	}
	return strings.Join(sections, "\n\n"), nil
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
