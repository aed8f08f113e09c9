// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-fetcher pipeline:
// the per-article record produced by classification, the error taxonomy, and
// the configuration consumed by every stage.
package types

// NotAvailable is the sentinel substituted when an optional field is absent
// from the fetched document.
const NotAvailable = "N/A"

// UnknownAuthor is substituted when an author entry has no surname.
const UnknownAuthor = "Unknown"

// ArticleRecord is the flat, classified view of one fetched PubMed article.
//
// NonAcademicAuthors and CompanyAffiliations are positionally aligned: the
// affiliation of NonAcademicAuthors[i] is CompanyAffiliations[i].
type ArticleRecord struct {
	// PubmedID is the PMID of the article, unique within a fetch batch.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or NotAvailable when the element is absent.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the free-form publication date as it appears in
	// the document, or NotAvailable.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists surnames of authors with an industry
	// affiliation, in author order.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the matching affiliation strings.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingAuthorEmail holds the affiliation text of the last author
	// matching the contact heuristic. It is not necessarily a bare address.
	CorrespondingAuthorEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// NewArticleRecord returns a record for pmid with all optional fields set to
// their sentinel defaults.
func NewArticleRecord(pmid string) ArticleRecord {
	return ArticleRecord{
		PubmedID:                 pmid,
		Title:                    NotAvailable,
		PublicationDate:          NotAvailable,
		NonAcademicAuthors:       []string{},
		CompanyAffiliations:      []string{},
		CorrespondingAuthorEmail: NotAvailable,
	}
}

// AddNonAcademic appends an author and their affiliation, keeping the two
// slices aligned.
func (r *ArticleRecord) AddNonAcademic(surname, affiliation string) {
	r.NonAcademicAuthors = append(r.NonAcademicAuthors, surname)
	r.CompanyAffiliations = append(r.CompanyAffiliations, affiliation)
}

// HasIndustryAuthors reports whether at least one author was classified as
// non-academic.
func (r ArticleRecord) HasIndustryAuthors() bool {
	return len(r.NonAcademicAuthors) > 0
}
