// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"testing"
)

const sampleArticleSetXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">12345678</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2021</Year><Month>Mar</Month></PubDate>
          </JournalIssue>
          <Title>Journal of Respiratory Genetics</Title>
        </Journal>
        <ArticleTitle>Asthma susceptibility loci in childhood cohorts</ArticleTitle>
        <Abstract>
          <AbstractText Label="BACKGROUND">Asthma has a strong heritable component.</AbstractText>
          <AbstractText Label="METHODS">We genotyped three cohorts.</AbstractText>
          <AbstractText Label="RESULTS">Four loci reached significance.</AbstractText>
        </Abstract>
        <AuthorList>
          <Author><LastName>Nakamura</LastName><ForeName>Yuki</ForeName><Initials>Y</Initials></Author>
          <Author><LastName>Osei</LastName><ForeName>Kwame</ForeName><Initials>K</Initials></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
    <PubmedData>
      <ArticleIdList>
        <ArticleId IdType="pubmed">12345678</ArticleId>
        <ArticleId IdType="doi">10.1000/jrg.2021.042</ArticleId>
      </ArticleIdList>
    </PubmedData>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <Article>
        <ArticleTitle>Record without an identifier</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">87654321</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><MedlineDate>1998 Jan-Feb</MedlineDate></PubDate>
          </JournalIssue>
          <Title>Allergy Reports</Title>
        </Journal>
        <ArticleTitle>A plain abstract example</ArticleTitle>
        <Abstract>
          <AbstractText>House dust mite exposure was measured in 40 homes.</AbstractText>
        </Abstract>
        <AuthorList>
          <Author><CollectiveName>The DUST Study Group</CollectiveName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestDecodeArticles_SkipsContainerWithoutIdentifier(t *testing.T) {
	records, err := decodeArticles("efetch", []byte(sampleArticleSetXML))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (malformed container skipped)", len(records))
	}
	if records[0].PMID != "12345678" || records[1].PMID != "87654321" {
		t.Errorf("unexpected PMIDs: %q, %q", records[0].PMID, records[1].PMID)
	}
}

func TestDecodeArticles_StructuredAbstract(t *testing.T) {
	records, err := decodeArticles("efetch", []byte(sampleArticleSetXML))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}

	r := records[0]
	if len(r.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(r.Sections))
	}
	wantLabels := []string{"BACKGROUND", "METHODS", "RESULTS"}
	for i, want := range wantLabels {
		if r.Sections[i].Label != want {
			t.Errorf("section %d label = %q, want %q (document order preserved)", i, r.Sections[i].Label, want)
		}
	}
	if r.Abstract != "" {
		t.Errorf("labeled-only abstract left body text %q", r.Abstract)
	}
}

func TestDecodeArticles_PlainAbstract(t *testing.T) {
	records, err := decodeArticles("efetch", []byte(sampleArticleSetXML))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}

	r := records[1]
	if len(r.Sections) != 0 {
		t.Errorf("plain abstract produced %d sections, want 0", len(r.Sections))
	}
	if r.Abstract != "House dust mite exposure was measured in 40 homes." {
		t.Errorf("unexpected body text %q", r.Abstract)
	}
}

func TestDecodeArticles_FieldExtraction(t *testing.T) {
	records, err := decodeArticles("efetch", []byte(sampleArticleSetXML))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}

	r := records[0]
	if r.Title != "Asthma susceptibility loci in childhood cohorts" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Journal != "Journal of Respiratory Genetics" {
		t.Errorf("Journal = %q", r.Journal)
	}
	if r.Year != "2021" || r.PubDate != "Mar 2021" {
		t.Errorf("Year = %q, PubDate = %q", r.Year, r.PubDate)
	}
	if r.DOI != "10.1000/jrg.2021.042" {
		t.Errorf("DOI = %q", r.DOI)
	}
	if r.URL != "https://pubmed.ncbi.nlm.nih.gov/12345678/" {
		t.Errorf("URL = %q", r.URL)
	}
	if len(r.Authors) != 2 || r.Authors[0] != "Nakamura Y" || r.Authors[1] != "Osei K" {
		t.Errorf("Authors = %v", r.Authors)
	}
}

func TestDecodeArticles_MedlineDateAndCollectiveName(t *testing.T) {
	records, err := decodeArticles("efetch", []byte(sampleArticleSetXML))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}

	r := records[1]
	if r.Year != "1998" {
		t.Errorf("Year = %q, want MedlineDate prefix \"1998\"", r.Year)
	}
	if len(r.Authors) != 1 || r.Authors[0] != "The DUST Study Group" {
		t.Errorf("Authors = %v, want collective name fallback", r.Authors)
	}
}

func TestDecodeArticles_MissingAbstractGetsPlaceholder(t *testing.T) {
	payload := `<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>11112222</PMID>
      <Article><ArticleTitle>No abstract here</ArticleTitle></Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	records, err := decodeArticles("efetch", []byte(payload))
	if err != nil {
		t.Fatalf("decodeArticles() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Abstract == "" {
		t.Error("record without abstract has empty body text")
	}
}

func TestDecodeArticles_UnparsablePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"truncated document", `<PubmedArticleSet><PubmedArticle>`},
		{"not xml at all", `{"error": "Bad Gateway"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeArticles("efetch", []byte(tt.payload))
			if err == nil {
				t.Fatal("decodeArticles() returned nil error for unparsable payload")
			}
			if !IsStructural(err) {
				t.Errorf("error %v is not structural", err)
			}
		})
	}
}

func TestDecodeAuthors_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		authors []pubmedAuthor
		want    []string
	}{
		{"initials preferred", []pubmedAuthor{{LastName: "Singh", ForeName: "Priya", Initials: "P"}}, []string{"Singh P"}},
		{"forename fallback", []pubmedAuthor{{LastName: "Singh", ForeName: "Priya"}}, []string{"Singh Priya"}},
		{"bare last name", []pubmedAuthor{{LastName: "Singh"}}, []string{"Singh"}},
		{"empty author skipped", []pubmedAuthor{{}, {LastName: "Singh", Initials: "P"}}, []string{"Singh P"}},
		{"no authors", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAuthors(tt.authors)
			if len(got) != len(tt.want) {
				t.Fatalf("decodeAuthors() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("decodeAuthors()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
