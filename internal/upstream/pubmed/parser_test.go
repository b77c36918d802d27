package pubmed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

const articleFixture = `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">4553338</PMID>
      <Article>
        <Journal>
          <ISOAbbreviation>Nature</ISOAbbreviation>
          <Title>Nature</Title>
          <JournalIssue>
            <PubDate>
              <Year>1972</Year>
              <Month>Jun</Month>
            </PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Letter: HeLa cell culture</ArticleTitle>
        <Abstract>
          <AbstractText>First part of the abstract.</AbstractText>
          <AbstractText>Second part.</AbstractText>
        </Abstract>
        <AuthorList>
          <Author>
            <LastName>Gey</LastName>
            <ForeName>George</ForeName>
            <Initials>GO</Initials>
          </Author>
          <Author>
            <CollectiveName>Working Group</CollectiveName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="pubmed">4553338</ArticleId>
        <ArticleId IdType="pmc">PMC389282</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID></PMID>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestParseArticleXML(t *testing.T) {
	result, err := parseArticleXML([]byte(articleFixture))
	require.NoError(t, err)
	require.Len(t, result.Articles, 1, "article without PMID must be skipped")

	article := result.Articles[0]
	assert.Equal(t, "4553338", article.PMID)
	assert.Equal(t, "PMC389282", article.PMCID)
	assert.Equal(t, "Letter: HeLa cell culture", article.Title)
	assert.Equal(t, "First part of the abstract. Second part.", article.Abstract)

	require.NotNil(t, article.Journal)
	assert.Equal(t, "Nature", article.Journal.Title)
	assert.Equal(t, "1972 Jun", article.Journal.PubDate)

	require.Len(t, article.Authors, 1, "author without name parts must be skipped")
	assert.Equal(t, "George Gey", article.Authors[0].FullName())
}

func TestParseArticleXMLMalformed(t *testing.T) {
	_, err := parseArticleXML([]byte(`<PubmedArticleSet><unclosed>`))
	assert.True(t, upstream.IsDataFormat(err), "got %v", err)
}

const fullTextFixture = `<?xml version="1.0" ?>
<pmc-articleset>
  <article>
    <front>
      <article-meta>
        <title-group>
          <article-title>A study of something</article-title>
        </title-group>
        <abstract>
          <p>Abstract paragraph.</p>
        </abstract>
      </article-meta>
    </front>
    <body>
      <sec>
        <title>Introduction</title>
        <p>Body paragraph one.</p>
        <p>Body paragraph <italic>two</italic>.</p>
      </sec>
    </body>
  </article>
</pmc-articleset>`

func TestParseFullTextXML(t *testing.T) {
	text, err := parseFullTextXML([]byte(fullTextFixture))
	require.NoError(t, err)

	assert.Contains(t, text, "A study of something")
	assert.Contains(t, text, "Abstract paragraph.")
	assert.Contains(t, text, "Body paragraph one.")
	assert.Contains(t, text, "Body paragraph two.")
	assert.NotContains(t, text, "Introduction", "section titles are not paragraphs")
}

func TestParseFullTextXMLNoContent(t *testing.T) {
	_, err := parseFullTextXML([]byte(`<pmc-articleset><article><body></body></article></pmc-articleset>`))
	assert.True(t, upstream.IsDataFormat(err), "got %v", err)
}
