package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/shayulman/radiodesk/internal/campaigns"
	"github.com/shayulman/radiodesk/internal/content"
	"github.com/shayulman/radiodesk/internal/flows"
	"github.com/shayulman/radiodesk/internal/progress"
	"github.com/shayulman/radiodesk/internal/vectordb"
)

// Indexer renders station records into searchable documents for the
// assistant's vector store.
type Indexer struct {
	flows     *flows.Store
	content   *content.Store
	campaigns *campaigns.Store
	vectors   vectordb.VectorStore
}

// NewIndexer creates an indexer over the given stores.
func NewIndexer(f *flows.Store, c *content.Store, camp *campaigns.Store, v vectordb.VectorStore) *Indexer {
	return &Indexer{flows: f, content: c, campaigns: camp, vectors: v}
}

// Reindex rebuilds the vector store from every flow, content item and
// campaign. Returns the number of documents indexed.
func (ix *Indexer) Reindex(ctx context.Context, rep progress.Reporter) (int, error) {
	var docs []vectordb.Document

	allFlows, err := ix.flows.ListFlows(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing flows: %w", err)
	}
	for _, f := range allFlows {
		docs = append(docs, flowDocument(f))
	}

	items, err := ix.content.ListItems(ctx, content.ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("listing content: %w", err)
	}
	for _, it := range items {
		docs = append(docs, contentDocument(it))
	}

	camps, err := ix.campaigns.ListCampaigns(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("listing campaigns: %w", err)
	}
	for _, c := range camps {
		docs = append(docs, campaignDocument(c))
	}

	rep.Start(len(docs))
	for i, doc := range docs {
		// Drop any stale copy first so reindexing a loaded store replaces
		// rather than duplicates.
		if err := ix.vectors.DeleteByRef(ctx, doc.Metadata.RefID); err != nil {
			return 0, fmt.Errorf("dropping stale %s: %w", doc.ID, err)
		}
		if err := ix.vectors.AddDocuments(ctx, []vectordb.Document{doc}); err != nil {
			return 0, fmt.Errorf("indexing %s: %w", doc.ID, err)
		}
		rep.Update(i+1, doc.ID)
	}
	rep.Finish()

	return len(docs), nil
}

func flowDocument(f flows.Flow) vectordb.Document {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Flow %q", f.Name)
	if f.NameHe != "" {
		fmt.Fprintf(&sb, " (%s)", f.NameHe)
	}
	fmt.Fprintf(&sb, ", trigger: %s.", f.TriggerType)
	if f.Description != "" {
		sb.WriteString(" " + f.Description)
	}
	if len(f.Actions) > 0 {
		sb.WriteString(" Actions:")
		for _, a := range f.Actions {
			fmt.Fprintf(&sb, " %s", a.Type)
			if a.Genre != "" {
				fmt.Fprintf(&sb, "(%s)", a.Genre)
			}
			sb.WriteString(";")
		}
	}
	return vectordb.Document{
		ID:      "flow:" + f.ID,
		Content: sb.String(),
		Metadata: vectordb.DocumentMetadata{
			Type:        vectordb.DocTypeFlow,
			RefID:       f.ID,
			Title:       f.Name,
			LastUpdated: f.UpdatedAt,
		},
	}
}

func contentDocument(it content.Item) vectordb.Document {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %q", it.Kind, it.Title)
	if it.TitleHe != "" {
		fmt.Fprintf(&sb, " (%s)", it.TitleHe)
	}
	if it.Artist != "" {
		fmt.Fprintf(&sb, " by %s", it.Artist)
	}
	if it.Genre != "" {
		fmt.Fprintf(&sb, ", genre %s", it.Genre)
	}
	if len(it.Tags) > 0 {
		fmt.Fprintf(&sb, ", tags: %s", strings.Join(it.Tags, ", "))
	}
	return vectordb.Document{
		ID:      "content:" + it.ID,
		Content: sb.String(),
		Metadata: vectordb.DocumentMetadata{
			Type:        vectordb.DocTypeContent,
			RefID:       it.ID,
			Title:       it.Title,
			Genre:       it.Genre,
			LastUpdated: it.UpdatedAt,
		},
	}
}

func campaignDocument(c campaigns.Campaign) vectordb.Document {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Campaign %q for %s, %s, %d slots per day, %s to %s.",
		c.Name, c.Advertiser, c.Status, c.DailySlots,
		c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"))
	if c.Notes != "" {
		sb.WriteString(" " + c.Notes)
	}
	return vectordb.Document{
		ID:      "campaign:" + c.ID,
		Content: sb.String(),
		Metadata: vectordb.DocumentMetadata{
			Type:        vectordb.DocTypeCampaign,
			RefID:       c.ID,
			Title:       c.Name,
			LastUpdated: c.UpdatedAt,
		},
	}
}
