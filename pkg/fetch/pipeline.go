package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// CMSReader fetches one document from a content-management system by its
// source identifier (platform:instance:document).
type CMSReader interface {
	FetchDocument(ctx context.Context, identifier string) (content string, metadata map[string]any, err error)
}

// record is one document's fetch outcome, accumulated in memory until the
// single durable transaction at the end of the step.
type record struct {
	doc *ent.Document

	status     fetchdocument.Status
	engine     string
	content    string
	hash       string
	path       string
	metadata   map[string]any
	skipReason string
	errMessage string
	embedding  []byte

	// changed marks content that differs from the document's stored hash;
	// only changed content is written to disk and embedded.
	changed bool
}

// Tool is the fetch workflow step. It groups documents by source and engine,
// fans batches out on the runtime's sub-task queue, stores content, and
// writes all fetch rows in one transaction.
type Tool struct {
	client   *ent.Client
	store    *Store
	cfg      config.FetchConfig
	embedder embedding.Provider
	cms      CMSReader
}

// NewTool creates the fetch step. embedder and cms may be nil; embeddings
// are then skipped and CMS documents fail individually.
func NewTool(client *ent.Client, store *Store, cfg config.FetchConfig, embedder embedding.Provider, cms CMSReader) *Tool {
	return &Tool{client: client, store: store, cfg: cfg, embedder: embedder, cms: cms}
}

// Name implements workflow.Tool.
func (t *Tool) Name() string { return "fetch" }

// Run implements workflow.Tool.
func (t *Tool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	ids := documentIDs(in.Items)
	if len(ids) == 0 {
		return &workflow.ToolResult{Metadata: map[string]any{"fetched": 0}}, nil
	}

	docs, err := t.client.Document.Query().
		Where(document.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	engineName := in.GetString("engine", t.cfg.Engine)
	refetch := in.GetBool("refetch", false)
	reprocess := in.GetBool("reprocess_unchanged", false)

	sc.Events.SetValue(ctx, "stage", "fetching")
	sc.Events.SetValue(ctx, "stage_total", len(docs))

	records := make(map[string]*record, len(docs))
	var web []*ent.Document
	var local []*ent.Document

	for _, doc := range docs {
		// Delta mode: already-indexed content is skipped without refetching.
		if !refetch && !reprocess &&
			doc.ContentHash != nil && doc.IndexedWithHash != nil &&
			*doc.ContentHash == *doc.IndexedWithHash {
			records[doc.ID] = &record{
				doc:        doc,
				status:     fetchdocument.StatusSkip,
				skipReason: "content_unchanged",
				hash:       *doc.ContentHash,
			}
			continue
		}
		if doc.SourceType == document.SourceTypeURL {
			web = append(web, doc)
		} else {
			local = append(local, doc)
		}
	}

	if len(web) > 0 {
		webRecords, err := t.fetchWeb(ctx, sc, engineName, web)
		if err != nil {
			return nil, err
		}
		for id, rec := range webRecords {
			records[id] = rec
		}
	}

	// Non-web sources are sequential; volume is low and order aids debugging.
	for _, doc := range local {
		if sc.IsCanceled(ctx) || ctx.Err() != nil {
			break
		}
		records[doc.ID] = t.fetchLocal(ctx, doc)
	}

	t.postProcess(records)
	t.embedChanged(ctx, sc, records)

	if err := t.persist(ctx, sc.RunID, records); err != nil {
		return nil, fmt.Errorf("persisting fetch results: %w", err)
	}

	return buildResult(docs, records), nil
}

// documentIDs collects the distinct document_id values from step input.
func documentIDs(items []workflow.Item) []string {
	seen := make(map[string]bool, len(items))
	var ids []string
	for _, item := range items {
		id, _ := item["document_id"].(string)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// fetchWeb schedules engine calls on the sub-task queue: native-batch engines
// get chunked batches, per-URL engines get one task per URL.
func (t *Tool) fetchWeb(ctx context.Context, sc *workflow.StepContext, engineName string, docs []*ent.Document) (map[string]*record, error) {
	engine, err := NewEngine(engineName, t.cfg)
	if err != nil {
		return nil, err
	}

	byURL := make(map[string]*ent.Document, len(docs))
	urls := make([]string, 0, len(docs))
	for _, doc := range docs {
		byURL[doc.SourceURL] = doc
		urls = append(urls, doc.SourceURL)
	}

	batches := chunkBatches(urls, engine.MaxBatch(), t.cfg.BatchSize)

	var mu sync.Mutex
	outcomes := make(map[string]Outcome, len(urls))
	completed := 0

	for i, batch := range batches {
		if sc.IsCanceled(ctx) {
			break
		}
		batch := batch
		taskID := fmt.Sprintf("%s-batch-%d", engine.Name(), i+1)
		sc.Tasks.Enqueue(workflow.Task{
			ID: taskID,
			Fn: func(taskCtx context.Context) (*workflow.ToolResult, error) {
				batchCtx, cancel := context.WithTimeout(taskCtx, BatchTimeout(len(batch)))
				defer cancel()

				res := engine.Fetch(batchCtx, batch)

				mu.Lock()
				for u, o := range res {
					outcomes[u] = o
				}
				completed += len(batch)
				done := completed
				mu.Unlock()

				sc.Events.Progress(ctx, sc.StepID, taskID, done, len(urls), "")
				sc.Events.SetValue(ctx, "stage_current", done)
				return &workflow.ToolResult{}, nil
			},
		})
	}

	for _, outcome := range sc.Tasks.Join(ctx) {
		if outcome.Err != nil {
			slog.Warn("Fetch sub-task failed", "workflow_id", sc.RunID, "task", outcome.ID, "error", outcome.Err)
		}
	}

	records := make(map[string]*record, len(docs))
	for u, doc := range byURL {
		o, ok := outcomes[u]
		if !ok {
			// Drained by cancellation before the batch ran.
			continue
		}
		rec := &record{doc: doc, engine: engine.Name(), metadata: o.Metadata}
		if o.Err != nil {
			rec.status = fetchdocument.StatusError
			rec.errMessage = o.Err.Error()
		} else {
			rec.status = fetchdocument.StatusSuccess
			rec.content = o.Content
		}
		records[doc.ID] = rec
	}
	return records, nil
}

// chunkBatches splits URLs into engine-sized batches. Engines with a native
// batch API (maxBatch > 0) get chunks of min(maxBatch, batchSize); per-URL
// engines (maxBatch == 0) get one URL per batch.
func chunkBatches(urls []string, maxBatch, batchSize int) [][]string {
	var batches [][]string
	if maxBatch > 0 {
		size := maxBatch
		if batchSize > 0 && batchSize < size {
			size = batchSize
		}
		for start := 0; start < len(urls); start += size {
			end := start + size
			if end > len(urls) {
				end = len(urls)
			}
			batches = append(batches, urls[start:end])
		}
		return batches
	}
	for _, u := range urls {
		batches = append(batches, []string{u})
	}
	return batches
}

// fetchLocal handles file and CMS sources, producing the same record shape
// as the web engines.
func (t *Tool) fetchLocal(ctx context.Context, doc *ent.Document) *record {
	rec := &record{doc: doc, status: fetchdocument.StatusSuccess}

	switch doc.SourceType {
	case document.SourceTypeFile:
		rec.engine = "file"
		data, err := os.ReadFile(doc.SourceURL)
		if err != nil {
			rec.status = fetchdocument.StatusError
			rec.errMessage = fmt.Sprintf("reading %s: %v", doc.SourceURL, err)
			return rec
		}
		rec.content = string(data)
	case document.SourceTypeCms:
		rec.engine = "cms"
		if t.cms == nil {
			rec.status = fetchdocument.StatusError
			rec.errMessage = "no CMS adapter configured"
			return rec
		}
		content, meta, err := t.cms.FetchDocument(ctx, doc.SourceURL)
		if err != nil {
			rec.status = fetchdocument.StatusError
			rec.errMessage = err.Error()
			return rec
		}
		rec.content = content
		rec.metadata = meta
	default:
		rec.status = fetchdocument.StatusError
		rec.errMessage = fmt.Sprintf("unsupported source type %s", doc.SourceType)
	}
	return rec
}

// postProcess dedups images, hashes content, resolves store paths, and
// writes changed content to disk.
func (t *Tool) postProcess(records map[string]*record) {
	for _, rec := range records {
		if rec.status != fetchdocument.StatusSuccess {
			continue
		}

		rec.content = DedupImages(rec.content)
		rec.hash = HashContent(rec.content)

		if rec.doc.SourceType == document.SourceTypeURL {
			p, err := PathForURL(rec.doc.SourceURL)
			if err != nil {
				p = PathForID(rec.doc.ID)
			}
			rec.path = p
		} else {
			rec.path = PathForID(rec.doc.ID)
		}

		// Unchanged content keeps its file and gets no new embedding.
		if rec.doc.ContentHash != nil && *rec.doc.ContentHash == rec.hash {
			if rec.doc.ContentPath != nil {
				rec.path = *rec.doc.ContentPath
			}
			continue
		}

		if err := t.store.Write(rec.path, rec.content); err != nil {
			rec.status = fetchdocument.StatusError
			rec.errMessage = fmt.Sprintf("storing content: %v", err)
			continue
		}
		rec.changed = true
	}
}

// embedChanged generates embeddings for newly changed content in configured
// batches. A missing provider or a failed call skips embeddings silently;
// embeddings improve retrieval but never gate a fetch.
func (t *Tool) embedChanged(ctx context.Context, sc *workflow.StepContext, records map[string]*record) {
	if t.embedder == nil {
		return
	}

	embedChars := t.cfg.EmbedChars
	if embedChars <= 0 {
		embedChars = 1000
	}
	embedBatch := t.cfg.EmbedBatch
	if embedBatch <= 0 {
		embedBatch = 100
	}

	var pending []*record
	for _, rec := range records {
		if rec.status == fetchdocument.StatusSuccess && rec.changed {
			pending = append(pending, rec)
		}
	}

	for start := 0; start < len(pending); start += embedBatch {
		end := start + embedBatch
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for i, rec := range batch {
			texts[i] = truncateUTF8(rec.content, embedChars)
		}

		vectors, err := t.embedder.Embed(ctx, texts)
		if err != nil {
			slog.Warn("Embedding batch failed, continuing without embeddings",
				"workflow_id", sc.RunID, "batch_size", len(batch), "error", err)
			continue
		}
		for i, rec := range batch {
			rec.embedding = embedding.Encode(vectors[i])
		}
	}
}

// persist writes every fetch row and document update in one transaction, so
// a crash leaves either the full step outcome or none of it.
func (t *Tool) persist(ctx context.Context, runID string, records map[string]*record) error {
	tx, err := t.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, rec := range records {
		create := tx.FetchDocument.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(runID).
			SetDocumentID(rec.doc.ID).
			SetStatus(rec.status)

		if rec.engine != "" {
			create.SetEngine(rec.engine)
		}
		if rec.skipReason != "" {
			create.SetSkipReason(rec.skipReason)
		}
		if rec.errMessage != "" {
			create.SetErrorMessage(rec.errMessage)
		}
		if rec.status == fetchdocument.StatusSuccess {
			create.SetContentLength(len(rec.content)).
				SetContentHash(rec.hash).
				SetContentPath(rec.path)
		}
		if len(rec.metadata) > 0 {
			create.SetFetchMetadata(rec.metadata)
		}
		if rec.embedding != nil {
			create.SetEmbedding(rec.embedding)
		}

		if err = create.
			OnConflictColumns(fetchdocument.FieldWorkflowID, fetchdocument.FieldDocumentID).
			UpdateNewValues().
			Exec(ctx); err != nil {
			return fmt.Errorf("upserting fetch row for %s: %w", rec.doc.ID, err)
		}

		if rec.status == fetchdocument.StatusSuccess && rec.changed {
			if err = tx.Document.UpdateOneID(rec.doc.ID).
				SetContentHash(rec.hash).
				SetContentPath(rec.path).
				Exec(ctx); err != nil {
				return fmt.Errorf("updating document %s: %w", rec.doc.ID, err)
			}
		}
	}

	return tx.Commit()
}

// buildResult assembles step output: successful documents flow downstream,
// failures become per-item errors, skips are excluded.
func buildResult(docs []*ent.Document, records map[string]*record) *workflow.ToolResult {
	result := &workflow.ToolResult{Metadata: map[string]any{}}
	var fetched, skipped, failed int

	for _, doc := range docs {
		rec, ok := records[doc.ID]
		if !ok {
			continue
		}
		switch rec.status {
		case fetchdocument.StatusSuccess:
			fetched++
			result.OutputData = append(result.OutputData, workflow.Item{
				"document_id":  doc.ID,
				"content_path": rec.path,
				"content_hash": rec.hash,
			})
		case fetchdocument.StatusSkip:
			skipped++
		case fetchdocument.StatusError:
			failed++
			result.Errors = append(result.Errors, workflow.ItemError{
				ItemID:  doc.ID,
				Kind:    "fetch_error",
				Message: rec.errMessage,
			})
		}
	}

	result.Metadata["fetched"] = fetched
	result.Metadata["skipped"] = skipped
	result.Metadata["failed"] = failed
	return result
}
