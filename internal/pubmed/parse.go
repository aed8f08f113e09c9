// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/affiliation"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Element names in efetch documents.
const (
	tagArticle         = "PubmedArticle"
	tagPMID            = "PMID"
	tagTitle           = "ArticleTitle"
	tagPubDate         = "PubDate"
	tagAuthor          = "Author"
	tagLastName        = "LastName"
	tagAffiliation     = "Affiliation"
	tagAffiliationInfo = "AffiliationInfo"
)

// ParseArticles decodes an efetch XML document and classifies each
// PubmedArticle with cl. A malformed document yields a *types.ParseError; an
// article without a PMID yields a *types.MissingFieldError. Either fails the
// whole document.
func ParseArticles(data []byte, cl affiliation.Classifier) ([]types.ArticleRecord, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, &types.ParseError{Format: "xml", Err: err}
	}

	var articles []*node
	if root.name == tagArticle {
		articles = append(articles, root)
	}
	articles = append(articles, root.findAll(tagArticle)...)

	records := make([]types.ArticleRecord, 0, len(articles))
	for i, article := range articles {
		rec, err := parseArticle(article, i, cl)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseArticle(article *node, index int, cl affiliation.Classifier) (types.ArticleRecord, error) {
	pmid := article.find(tagPMID)
	if pmid == nil {
		return types.ArticleRecord{}, &types.MissingFieldError{Field: tagPMID, Index: index}
	}

	rec := types.NewArticleRecord(strings.TrimSpace(pmid.innerText()))

	if title := article.find(tagTitle); title != nil {
		rec.Title = strings.TrimSpace(title.innerText())
	}
	if date := article.find(tagPubDate); date != nil {
		rec.PublicationDate = pubDateText(date)
	}

	for _, author := range article.findAll(tagAuthor) {
		surname := types.UnknownAuthor
		if ln := author.child(tagLastName); ln != nil {
			surname = strings.TrimSpace(ln.innerText())
		}
		aff := authorAffiliation(author)

		if cl.IsNonAcademic(aff) {
			rec.AddNonAcademic(surname, aff)
		}
		// Later matches overwrite earlier ones.
		if cl.IsContact(aff) {
			rec.CorrespondingAuthorEmail = aff
		}
	}

	return rec, nil
}

// pubDateText returns the element's own text, or the texts of its children
// (Year, Month, Day, MedlineDate) joined by single spaces.
func pubDateText(date *node) string {
	if own := strings.TrimSpace(date.ownText()); own != "" || len(date.children) == 0 {
		return own
	}
	parts := make([]string, 0, len(date.children))
	for _, c := range date.children {
		if t := strings.TrimSpace(c.innerText()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// authorAffiliation returns the direct Affiliation child, falling back to
// the first AffiliationInfo/Affiliation. Absent affiliations are "".
func authorAffiliation(author *node) string {
	if aff := author.child(tagAffiliation); aff != nil {
		return strings.TrimSpace(aff.innerText())
	}
	if info := author.child(tagAffiliationInfo); info != nil {
		if aff := info.child(tagAffiliation); aff != nil {
			return strings.TrimSpace(aff.innerText())
		}
	}
	return ""
}
