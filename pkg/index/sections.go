package index

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/fetch"
	"github.com/kurt-labs/kurt/pkg/llm"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// Section is one markdown slice of a document, sized for LLM extraction.
type Section struct {
	Index   int
	Header  string
	Content string
}

// SplitSections splits document markdown into sections between minChars and
// maxChars, preferring heading boundaries. Oversized stretches are hard-split
// with `overlap` trailing characters repeated at the start of the next slice
// so claims spanning a cut survive in at least one section.
func SplitSections(markdown string, minChars, maxChars, overlap int) []Section {
	if maxChars <= 0 {
		maxChars = 5000
	}
	if minChars <= 0 || minChars > maxChars {
		minChars = maxChars / 10
	}
	if overlap < 0 || overlap >= maxChars {
		overlap = 0
	}

	type block struct {
		header string
		text   string
	}
	var blocks []block
	current := block{}
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "#") {
			if strings.TrimSpace(current.text) != "" || current.header != "" {
				blocks = append(blocks, current)
			}
			current = block{header: strings.TrimSpace(strings.TrimLeft(line, "# "))}
			continue
		}
		current.text += line + "\n"
	}
	if strings.TrimSpace(current.text) != "" || current.header != "" {
		blocks = append(blocks, current)
	}

	var sections []Section
	emit := func(header, text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		// Hard-split anything over the cap.
		for len(text) > maxChars {
			sections = append(sections, Section{Index: len(sections), Header: header, Content: text[:maxChars]})
			start := maxChars - overlap
			text = text[start:]
		}
		sections = append(sections, Section{Index: len(sections), Header: header, Content: text})
	}

	// Merge small blocks forward until the minimum is met.
	pendingHeader := ""
	pendingText := ""
	for _, b := range blocks {
		if pendingText == "" {
			pendingHeader = b.header
		}
		if b.header != "" && pendingText != "" {
			pendingText += "\n## " + b.header + "\n"
		}
		pendingText += b.text
		if len(pendingText) >= minChars {
			emit(pendingHeader, pendingText)
			pendingHeader, pendingText = "", ""
		}
	}
	emit(pendingHeader, pendingText)

	return sections
}

// SectionTool is the extract_sections workflow step: split each fetched
// document into sections and run the LLM extraction signature on each.
type SectionTool struct {
	client   *ent.Client
	store    *fetch.Store
	llm      *llm.Client
	embedder embedding.Provider
	cfg      *config.Config
}

// NewSectionTool creates the step. embedder may be nil.
func NewSectionTool(client *ent.Client, store *fetch.Store, llmClient *llm.Client, embedder embedding.Provider, cfg *config.Config) *SectionTool {
	return &SectionTool{client: client, store: store, llm: llmClient, embedder: embedder, cfg: cfg}
}

// Name implements workflow.Tool.
func (t *SectionTool) Name() string { return "extract_sections" }

// Run implements workflow.Tool.
func (t *SectionTool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	model := t.cfg.Setting("indexing", sc.StepID, "model", t.cfg.Indexing.Model)
	minChars := in.GetInt("section_min_chars", t.cfg.Indexing.SectionMinChars)
	maxChars := in.GetInt("section_max_chars", t.cfg.Indexing.SectionMaxChars)
	overlap := in.GetInt("section_overlap", t.cfg.Indexing.SectionOverlap)

	sc.Events.SetValue(ctx, "stage", "extracting")

	type job struct {
		documentID string
		section    Section
	}
	var jobs []job
	result := &workflow.ToolResult{Metadata: map[string]any{}}

	for _, item := range in.Items {
		docID, _ := item["document_id"].(string)
		path, _ := item["content_path"].(string)
		if docID == "" || path == "" {
			continue
		}
		content, err := t.store.Read(path)
		if err != nil {
			result.Errors = append(result.Errors, workflow.ItemError{
				ItemID: docID, Kind: "read_error", Message: err.Error(),
			})
			continue
		}
		for _, section := range SplitSections(content, minChars, maxChars, overlap) {
			jobs = append(jobs, job{documentID: docID, section: section})
		}
	}

	sc.Events.SetValue(ctx, "stage_total", len(jobs))

	var mu sync.Mutex
	completed := 0

	for _, j := range jobs {
		if sc.IsCanceled(ctx) {
			break
		}
		j := j
		sectionID := fmt.Sprintf("%s:%s:%d", sc.RunID, j.documentID, j.section.Index)
		sc.Tasks.Enqueue(workflow.Task{
			ID: sectionID,
			Fn: func(taskCtx context.Context) (*workflow.ToolResult, error) {
				extraction, err := t.llm.ExtractSection(taskCtx, model, j.section.Header, j.section.Content)

				var embedded []byte
				if t.embedder != nil {
					if vecs, embErr := t.embedder.Embed(taskCtx, []string{j.section.Content}); embErr == nil && len(vecs) == 1 {
						embedded = embedding.Encode(vecs[0])
					}
				}

				if saveErr := t.saveSection(taskCtx, sc.RunID, j.documentID, sectionID, j.section, extraction, embedded, err); saveErr != nil {
					return nil, saveErr
				}
				if err != nil {
					return nil, err
				}

				mu.Lock()
				completed++
				done := completed
				mu.Unlock()
				sc.Events.Progress(ctx, sc.StepID, sectionID, done, len(jobs), "")
				sc.Events.SetValue(ctx, "stage_current", done)

				return &workflow.ToolResult{OutputData: []workflow.Item{{
					"section_id":  sectionID,
					"document_id": j.documentID,
				}}}, nil
			},
		})
	}

	for _, outcome := range sc.Tasks.Join(ctx) {
		switch {
		case outcome.Skipped:
			continue
		case outcome.Err != nil:
			result.Errors = append(result.Errors, workflow.ItemError{
				ItemID: outcome.ID, Kind: "extraction_error", Message: outcome.Err.Error(),
			})
		case outcome.Result != nil:
			result.OutputData = append(result.OutputData, outcome.Result.OutputData...)
		}
	}

	result.Metadata["sections"] = len(jobs)
	result.Metadata["extracted"] = len(result.OutputData)
	return result, nil
}

// saveSection upserts the staging row for one section, recording either the
// extraction outputs or the failure.
func (t *SectionTool) saveSection(ctx context.Context, runID, documentID, sectionID string, section Section, extraction *llm.ExtractionResult, embedded []byte, extractErr error) error {
	create := t.client.SectionExtraction.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(runID).
		SetDocumentID(documentID).
		SetSectionID(sectionID).
		SetSectionIndex(section.Index).
		SetHeader(section.Header).
		SetContent(section.Content)

	if embedded != nil {
		create.SetEmbedding(embedded)
	}

	if extractErr != nil {
		create.SetStatus(sectionextraction.StatusError)
	} else {
		create.SetStatus(sectionextraction.StatusExtracted).
			SetEntities(toJSONList(extraction.Entities)).
			SetRelationships(toJSONList(extraction.Relationships)).
			SetClaims(toJSONList(extraction.Claims)).
			SetContentType(extraction.ContentType)
	}

	return create.
		OnConflictColumns(
			sectionextraction.FieldWorkflowID,
			sectionextraction.FieldDocumentID,
			sectionextraction.FieldSectionIndex,
		).
		UpdateNewValues().
		Exec(ctx)
}

// toJSONList converts typed extraction slices into the generic JSON shape the
// staging schema stores.
func toJSONList[T any](items []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m := map[string]interface{}{}
		data, err := jsonRoundTrip(item)
		if err == nil {
			m = data
		}
		out = append(out, m)
	}
	return out
}
