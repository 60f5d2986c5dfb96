package vectordb

import "time"

// DocumentType categorizes the kind of station record stored in the vector DB.
type DocumentType string

const (
	DocTypeContent  DocumentType = "content"
	DocTypeFlow     DocumentType = "flow"
	DocTypeCampaign DocumentType = "campaign"
	DocTypeEvent    DocumentType = "event"
)

// Document represents a piece of station knowledge to be stored and searched.
// Content is the searchable text rendering of the record; Metadata ties it
// back to the source row.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about a document.
type DocumentMetadata struct {
	Type        DocumentType
	RefID       string // ID of the source record (flow, content item, ...).
	Title       string
	Genre       string
	Language    string
	LastUpdated time.Time
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter allows narrowing search results by metadata fields.
type SearchFilter struct {
	Type  *DocumentType
	RefID *string
	Genre *string
}
