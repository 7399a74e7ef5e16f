// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "claim_id", Type: field.TypeString, Unique: true},
		{Name: "claim_hash", Type: field.TypeString, Unique: true},
		{Name: "statement", Type: field.TypeString, Size: 2147483647},
		{Name: "claim_type", Type: field.TypeEnum, Enums: []string{"definition", "capability", "limitation", "relationship", "fact"}, Default: "definition"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "subject_entity_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString, Nullable: true},
		{Name: "source_quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claims_documents_claims",
				Columns:    []*schema.Column{ClaimsColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "claim_document_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[12]},
			},
			{
				Name:    "claim_subject_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[5]},
			},
			{
				Name:    "claim_claim_type",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[3]},
			},
			{
				Name:    "claim_document_id_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[12], ClaimsColumns[9]},
			},
		},
	}
	// ClaimEntitiesColumns holds the columns for the "claim_entities" table.
	ClaimEntitiesColumns = []*schema.Column{
		{Name: "claim_entity_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
	}
	// ClaimEntitiesTable holds the schema information for the "claim_entities" table.
	ClaimEntitiesTable = &schema.Table{
		Name:       "claim_entities",
		Columns:    ClaimEntitiesColumns,
		PrimaryKey: []*schema.Column{ClaimEntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claim_entities_claims_claim_entities",
				Columns:    []*schema.Column{ClaimEntitiesColumns[2]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "claim_entities_entities_claim_entities",
				Columns:    []*schema.Column{ClaimEntitiesColumns[3]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "claimentity_claim_id_entity_id",
				Unique:  true,
				Columns: []*schema.Column{ClaimEntitiesColumns[2], ClaimEntitiesColumns[3]},
			},
			{
				Name:    "claimentity_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimEntitiesColumns[3]},
			},
		},
	}
	// ClaimGroupsColumns holds the columns for the "claim_groups" table.
	ClaimGroupsColumns = []*schema.Column{
		{Name: "claim_group_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString},
		{Name: "claim_hash", Type: field.TypeString},
		{Name: "cluster_id", Type: field.TypeString},
		{Name: "cluster_size", Type: field.TypeInt, Default: 1},
		{Name: "decision", Type: field.TypeString},
		{Name: "statement", Type: field.TypeString, Size: 2147483647},
		{Name: "canonical_statement", Type: field.TypeString, Size: 2147483647},
		{Name: "claim_type", Type: field.TypeEnum, Enums: []string{"definition", "capability", "limitation", "relationship", "fact"}, Default: "definition"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "entity_indices", Type: field.TypeJSON, Nullable: true},
		{Name: "similar_existing", Type: field.TypeJSON, Nullable: true},
		{Name: "source_quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClaimGroupsTable holds the schema information for the "claim_groups" table.
	ClaimGroupsTable = &schema.Table{
		Name:       "claim_groups",
		Columns:    ClaimGroupsColumns,
		PrimaryKey: []*schema.Column{ClaimGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claimgroup_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimGroupsColumns[1]},
			},
			{
				Name:    "claimgroup_workflow_id_cluster_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimGroupsColumns[1], ClaimGroupsColumns[5]},
			},
			{
				Name:    "claimgroup_workflow_id_claim_hash",
				Unique:  false,
				Columns: []*schema.Column{ClaimGroupsColumns[1], ClaimGroupsColumns[4]},
			},
		},
	}
	// ClaimResolutionsColumns holds the columns for the "claim_resolutions" table.
	ClaimResolutionsColumns = []*schema.Column{
		{Name: "claim_resolution_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "claim_hash", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "resolution_action", Type: field.TypeEnum, Enums: []string{"created", "merged", "deduplicated", "skipped"}},
		{Name: "resolved_claim_id", Type: field.TypeString, Nullable: true},
		{Name: "linked_entity_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "resolution_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClaimResolutionsTable holds the schema information for the "claim_resolutions" table.
	ClaimResolutionsTable = &schema.Table{
		Name:       "claim_resolutions",
		Columns:    ClaimResolutionsColumns,
		PrimaryKey: []*schema.Column{ClaimResolutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claimresolution_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{ClaimResolutionsColumns[1]},
			},
			{
				Name:    "claimresolution_workflow_id_claim_hash",
				Unique:  true,
				Columns: []*schema.Column{ClaimResolutionsColumns[1], ClaimResolutionsColumns[3]},
			},
			{
				Name:    "claimresolution_resolution_action",
				Unique:  false,
				Columns: []*schema.Column{ClaimResolutionsColumns[5]},
			},
		},
	}
	// DiscoveriesColumns holds the columns for the "discoveries" table.
	DiscoveriesColumns = []*schema.Column{
		{Name: "discovery_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"sitemap", "crawl", "folder", "cms", "manual"}, Default: "sitemap"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"discovered", "skipped", "error"}, Default: "discovered"},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DiscoveriesTable holds the schema information for the "discoveries" table.
	DiscoveriesTable = &schema.Table{
		Name:       "discoveries",
		Columns:    DiscoveriesColumns,
		PrimaryKey: []*schema.Column{DiscoveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discovery_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{DiscoveriesColumns[1]},
			},
			{
				Name:    "discovery_workflow_id_document_id",
				Unique:  true,
				Columns: []*schema.Column{DiscoveriesColumns[1], DiscoveriesColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "source_url", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"url", "file", "cms", "api"}, Default: "url"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content_path", Type: field.TypeString, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "indexed_with_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_source_url_source_type",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[2]},
			},
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// DocumentEntitiesColumns holds the columns for the "document_entities" table.
	DocumentEntitiesColumns = []*schema.Column{
		{Name: "document_entity_id", Type: field.TypeString, Unique: true},
		{Name: "quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "start_offset", Type: field.TypeInt, Nullable: true},
		{Name: "end_offset", Type: field.TypeInt, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
	}
	// DocumentEntitiesTable holds the schema information for the "document_entities" table.
	DocumentEntitiesTable = &schema.Table{
		Name:       "document_entities",
		Columns:    DocumentEntitiesColumns,
		PrimaryKey: []*schema.Column{DocumentEntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_entities_documents_document_entities",
				Columns:    []*schema.Column{DocumentEntitiesColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "document_entities_entities_document_entities",
				Columns:    []*schema.Column{DocumentEntitiesColumns[8]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documententity_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEntitiesColumns[7]},
			},
			{
				Name:    "documententity_entity_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEntitiesColumns[8]},
			},
			{
				Name:    "documententity_document_id_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEntitiesColumns[7], DocumentEntitiesColumns[5]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"technology", "person", "product", "topic", "organization", "concept", "other"}, Default: "concept"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "merged_into_id", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entity_name_entity_type",
				Unique:  true,
				Columns: []*schema.Column{EntitiesColumns[1], EntitiesColumns[2]},
			},
			{
				Name:    "entity_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[2]},
			},
		},
	}
	// EntityResolutionsColumns holds the columns for the "entity_resolutions" table.
	EntityResolutionsColumns = []*schema.Column{
		{Name: "entity_resolution_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "entity_name", Type: field.TypeString},
		{Name: "resolved_entity_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"created", "matched", "merged"}},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EntityResolutionsTable holds the schema information for the "entity_resolutions" table.
	EntityResolutionsTable = &schema.Table{
		Name:       "entity_resolutions",
		Columns:    EntityResolutionsColumns,
		PrimaryKey: []*schema.Column{EntityResolutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entityresolution_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{EntityResolutionsColumns[1]},
			},
			{
				Name:    "entityresolution_workflow_id_entity_name",
				Unique:  true,
				Columns: []*schema.Column{EntityResolutionsColumns[1], EntityResolutionsColumns[2]},
			},
		},
	}
	// FetchDocumentsColumns holds the columns for the "fetch_documents" table.
	FetchDocumentsColumns = []*schema.Column{
		{Name: "fetch_document_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error", "skip"}, Default: "success"},
		{Name: "content_length", Type: field.TypeInt, Nullable: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "content_path", Type: field.TypeString, Nullable: true},
		{Name: "engine", Type: field.TypeString, Nullable: true},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "fetch_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FetchDocumentsTable holds the schema information for the "fetch_documents" table.
	FetchDocumentsTable = &schema.Table{
		Name:       "fetch_documents",
		Columns:    FetchDocumentsColumns,
		PrimaryKey: []*schema.Column{FetchDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fetchdocument_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{FetchDocumentsColumns[1]},
			},
			{
				Name:    "fetchdocument_workflow_id_document_id",
				Unique:  true,
				Columns: []*schema.Column{FetchDocumentsColumns[1], FetchDocumentsColumns[2]},
			},
			{
				Name:    "fetchdocument_status",
				Unique:  false,
				Columns: []*schema.Column{FetchDocumentsColumns[3]},
			},
		},
	}
	// SectionExtractionsColumns holds the columns for the "section_extractions" table.
	SectionExtractionsColumns = []*schema.Column{
		{Name: "section_extraction_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_id", Type: field.TypeString},
		{Name: "document_id", Type: field.TypeString},
		{Name: "section_id", Type: field.TypeString, Unique: true},
		{Name: "section_index", Type: field.TypeInt},
		{Name: "header", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "relationships", Type: field.TypeJSON, Nullable: true},
		{Name: "claims", Type: field.TypeJSON, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "extracted", "error"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SectionExtractionsTable holds the schema information for the "section_extractions" table.
	SectionExtractionsTable = &schema.Table{
		Name:       "section_extractions",
		Columns:    SectionExtractionsColumns,
		PrimaryKey: []*schema.Column{SectionExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sectionextraction_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{SectionExtractionsColumns[1]},
			},
			{
				Name:    "sectionextraction_workflow_id_document_id_section_index",
				Unique:  true,
				Columns: []*schema.Column{SectionExtractionsColumns[1], SectionExtractionsColumns[2], SectionExtractionsColumns[4]},
			},
		},
	}
	// StepEventsColumns holds the columns for the "step_events" table.
	StepEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "substep", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "progress", "completed", "failed"}, Default: "pending"},
		{Name: "current", Type: field.TypeInt, Nullable: true},
		{Name: "total", Type: field.TypeInt, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "stream", Type: field.TypeString, Default: "progress"},
		{Name: "event_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// StepEventsTable holds the schema information for the "step_events" table.
	StepEventsTable = &schema.Table{
		Name:       "step_events",
		Columns:    StepEventsColumns,
		PrimaryKey: []*schema.Column{StepEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_events_workflow_runs_step_events",
				Columns:    []*schema.Column{StepEventsColumns[10]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[10]},
			},
			{
				Name:    "stepevent_run_id_step_id",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[10], StepEventsColumns[1]},
			},
			{
				Name:    "stepevent_run_id_stream",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[10], StepEventsColumns[7]},
			},
			{
				Name:    "stepevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{StepEventsColumns[9]},
			},
		},
	}
	// StepLogsColumns holds the columns for the "step_logs" table.
	StepLogsColumns = []*schema.Column{
		{Name: "step_log_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString},
		{Name: "tool", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped", "canceled"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "input_count", Type: field.TypeInt, Default: 0},
		{Name: "output_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "input_hash", Type: field.TypeString, Nullable: true},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "step_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// StepLogsTable holds the schema information for the "step_logs" table.
	StepLogsTable = &schema.Table{
		Name:       "step_logs",
		Columns:    StepLogsColumns,
		PrimaryKey: []*schema.Column{StepLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_logs_workflow_runs_step_logs",
				Columns:    []*schema.Column{StepLogsColumns[12]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "steplog_run_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{StepLogsColumns[12], StepLogsColumns[1]},
			},
			{
				Name:    "steplog_status",
				Unique:  false,
				Columns: []*schema.Column{StepLogsColumns[3]},
			},
		},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "workflow_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "completed_with_errors", "failed", "canceling", "canceled"}, Default: "pending"},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "run_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_workflow_id", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2]},
			},
			{
				Name:    "workflowrun_workflow_name",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1]},
			},
			{
				Name:    "workflowrun_parent_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[6]},
			},
			{
				Name:    "workflowrun_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2], WorkflowRunsColumns[7], WorkflowRunsColumns[8]},
			},
			{
				Name:    "workflowrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[2], WorkflowRunsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClaimsTable,
		ClaimEntitiesTable,
		ClaimGroupsTable,
		ClaimResolutionsTable,
		DiscoveriesTable,
		DocumentsTable,
		DocumentEntitiesTable,
		EntitiesTable,
		EntityResolutionsTable,
		FetchDocumentsTable,
		SectionExtractionsTable,
		StepEventsTable,
		StepLogsTable,
		WorkflowRunsTable,
	}
)

func init() {
	ClaimsTable.ForeignKeys[0].RefTable = DocumentsTable
	ClaimEntitiesTable.ForeignKeys[0].RefTable = ClaimsTable
	ClaimEntitiesTable.ForeignKeys[1].RefTable = EntitiesTable
	DocumentEntitiesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentEntitiesTable.ForeignKeys[1].RefTable = EntitiesTable
	StepEventsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	StepLogsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
}
