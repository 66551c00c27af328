// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"encoding/xml"
	"strings"

	"github.com/pdiddy/pubmed-search/pkg/types"
)

// recordURLBase is the canonical PubMed reference URL prefix.
const recordURLBase = "https://pubmed.ncbi.nlm.nih.gov/"

// PubMed efetch XML structures.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID       string         `xml:"MedlineCitation>PMID"`
	Title      string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Journal    string         `xml:"MedlineCitation>Article>Journal>Title"`
	PubDate    pubmedPubDate  `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Abstract   []abstractText `xml:"MedlineCitation>Article>Abstract>AbstractText"`
	Authors    []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
	ArticleIDs []articleID    `xml:"PubmedData>ArticleIdList>ArticleId"`
}

type pubmedPubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	MedlineDate string `xml:"MedlineDate"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	Text  string `xml:",chardata"`
}

type pubmedAuthor struct {
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	Initials       string `xml:"Initials"`
	CollectiveName string `xml:"CollectiveName"`
}

type articleID struct {
	IDType string `xml:"IdType,attr"`
	Value  string `xml:",chardata"`
}

// decodeArticles converts an efetch payload into Records. Decoding is
// best-effort per record: a container missing its identifier is skipped
// rather than aborting the page, since one broken record on the remote
// side should never sink the rest. Only a payload that cannot be parsed
// at the top level yields an error.
func decodeArticles(op string, payload []byte) ([]types.Record, error) {
	var set pubmedArticleSet
	if err := xml.Unmarshal(payload, &set); err != nil {
		return nil, &StructuralError{Op: op, Err: err}
	}

	var records []types.Record
	for _, art := range set.Articles {
		rec, ok := decodeArticle(art)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeArticle extracts one Record. ok is false when the container lacks
// the identifier that every decoded record must carry.
func decodeArticle(art pubmedArticle) (types.Record, bool) {
	pmid := strings.TrimSpace(art.PMID)
	if pmid == "" {
		return types.Record{}, false
	}

	rec := types.Record{
		PMID:    pmid,
		Title:   strings.TrimSpace(art.Title),
		Journal: strings.TrimSpace(art.Journal),
		URL:     recordURLBase + pmid + "/",
	}

	rec.Year = pubYear(art.PubDate)
	rec.PubDate = strings.TrimSpace(art.PubDate.Month + " " + rec.Year)

	rec.Authors = decodeAuthors(art.Authors)
	rec.Abstract, rec.Sections = decodeAbstract(art.Abstract)

	for _, id := range art.ArticleIDs {
		if id.IDType == "doi" && id.Value != "" {
			rec.DOI = strings.TrimSpace(id.Value)
			break
		}
	}

	return rec, true
}

// pubYear returns the best-effort publication year: the Year element when
// present, else the first four characters of a MedlineDate range like
// "2002 Jan-Feb", else empty.
func pubYear(d pubmedPubDate) string {
	if y := strings.TrimSpace(d.Year); y != "" {
		return y
	}
	md := strings.TrimSpace(d.MedlineDate)
	if len(md) >= 4 {
		return md[:4]
	}
	return ""
}

// decodeAuthors formats author names as "LastName Initials" tokens in
// document order, falling back through ForeName, bare LastName, and
// finally the CollectiveName for group authorship.
func decodeAuthors(authors []pubmedAuthor) []string {
	var out []string
	for _, a := range authors {
		switch {
		case a.LastName != "" && a.Initials != "":
			out = append(out, a.LastName+" "+a.Initials)
		case a.LastName != "" && a.ForeName != "":
			out = append(out, a.LastName+" "+a.ForeName)
		case a.LastName != "":
			out = append(out, a.LastName)
		case a.CollectiveName != "":
			out = append(out, strings.TrimSpace(a.CollectiveName))
		}
	}
	return out
}

// decodeAbstract splits abstract parts into the body text and the ordered
// labeled sections. Unlabeled parts join the body; when every part is
// unlabeled the section list stays empty and the whole abstract is body
// text. A record with no abstract at all gets a placeholder body so that
// one of the two fields is always populated.
func decodeAbstract(parts []abstractText) (string, []types.AbstractSection) {
	var (
		body     []string
		sections []types.AbstractSection
	)
	for _, p := range parts {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		label := strings.TrimSpace(p.Label)
		if label == "" {
			body = append(body, text)
			continue
		}
		sections = append(sections, types.AbstractSection{
			Label: strings.ToUpper(label),
			Text:  text,
		})
	}
	if len(body) == 0 && len(sections) == 0 {
		return "No abstract available", nil
	}
	return strings.Join(body, " "), sections
}
