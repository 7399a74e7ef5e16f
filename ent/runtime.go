// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/fetchdocument"
	"github.com/kurt-labs/kurt/ent/schema"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/ent/stepevent"
	"github.com/kurt-labs/kurt/ent/steplog"
	"github.com/kurt-labs/kurt/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescConfidence is the schema descriptor for confidence field.
	claimDescConfidence := claimFields[4].Descriptor()
	// claim.DefaultConfidence holds the default value on creation for the confidence field.
	claim.DefaultConfidence = claimDescConfidence.Default.(float64)
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimFields[11].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescUpdatedAt is the schema descriptor for updated_at field.
	claimDescUpdatedAt := claimFields[12].Descriptor()
	// claim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claim.DefaultUpdatedAt = claimDescUpdatedAt.Default.(func() time.Time)
	// claim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claim.UpdateDefaultUpdatedAt = claimDescUpdatedAt.UpdateDefault.(func() time.Time)
	claimentityFields := schema.ClaimEntity{}.Fields()
	_ = claimentityFields
	// claimentityDescCreatedAt is the schema descriptor for created_at field.
	claimentityDescCreatedAt := claimentityFields[3].Descriptor()
	// claimentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	claimentity.DefaultCreatedAt = claimentityDescCreatedAt.Default.(func() time.Time)
	claimgroupFields := schema.ClaimGroup{}.Fields()
	_ = claimgroupFields
	// claimgroupDescClusterSize is the schema descriptor for cluster_size field.
	claimgroupDescClusterSize := claimgroupFields[6].Descriptor()
	// claimgroup.DefaultClusterSize holds the default value on creation for the cluster_size field.
	claimgroup.DefaultClusterSize = claimgroupDescClusterSize.Default.(int)
	// claimgroupDescConfidence is the schema descriptor for confidence field.
	claimgroupDescConfidence := claimgroupFields[11].Descriptor()
	// claimgroup.DefaultConfidence holds the default value on creation for the confidence field.
	claimgroup.DefaultConfidence = claimgroupDescConfidence.Default.(float64)
	// claimgroupDescCreatedAt is the schema descriptor for created_at field.
	claimgroupDescCreatedAt := claimgroupFields[15].Descriptor()
	// claimgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	claimgroup.DefaultCreatedAt = claimgroupDescCreatedAt.Default.(func() time.Time)
	// claimgroupDescUpdatedAt is the schema descriptor for updated_at field.
	claimgroupDescUpdatedAt := claimgroupFields[16].Descriptor()
	// claimgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claimgroup.DefaultUpdatedAt = claimgroupDescUpdatedAt.Default.(func() time.Time)
	// claimgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claimgroup.UpdateDefaultUpdatedAt = claimgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	claimresolutionFields := schema.ClaimResolution{}.Fields()
	_ = claimresolutionFields
	// claimresolutionDescCreatedAt is the schema descriptor for created_at field.
	claimresolutionDescCreatedAt := claimresolutionFields[9].Descriptor()
	// claimresolution.DefaultCreatedAt holds the default value on creation for the created_at field.
	claimresolution.DefaultCreatedAt = claimresolutionDescCreatedAt.Default.(func() time.Time)
	// claimresolutionDescUpdatedAt is the schema descriptor for updated_at field.
	claimresolutionDescUpdatedAt := claimresolutionFields[10].Descriptor()
	// claimresolution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claimresolution.DefaultUpdatedAt = claimresolutionDescUpdatedAt.Default.(func() time.Time)
	// claimresolution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claimresolution.UpdateDefaultUpdatedAt = claimresolutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	discoveryFields := schema.Discovery{}.Fields()
	_ = discoveryFields
	// discoveryDescCreatedAt is the schema descriptor for created_at field.
	discoveryDescCreatedAt := discoveryFields[6].Descriptor()
	// discovery.DefaultCreatedAt holds the default value on creation for the created_at field.
	discovery.DefaultCreatedAt = discoveryDescCreatedAt.Default.(func() time.Time)
	// discoveryDescUpdatedAt is the schema descriptor for updated_at field.
	discoveryDescUpdatedAt := discoveryFields[7].Descriptor()
	// discovery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	discovery.DefaultUpdatedAt = discoveryDescUpdatedAt.Default.(func() time.Time)
	// discovery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	discovery.UpdateDefaultUpdatedAt = discoveryDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[8].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[9].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	documententityFields := schema.DocumentEntity{}.Fields()
	_ = documententityFields
	// documententityDescConfidence is the schema descriptor for confidence field.
	documententityDescConfidence := documententityFields[6].Descriptor()
	// documententity.DefaultConfidence holds the default value on creation for the confidence field.
	documententity.DefaultConfidence = documententityDescConfidence.Default.(float64)
	// documententityDescCreatedAt is the schema descriptor for created_at field.
	documententityDescCreatedAt := documententityFields[8].Descriptor()
	// documententity.DefaultCreatedAt holds the default value on creation for the created_at field.
	documententity.DefaultCreatedAt = documententityDescCreatedAt.Default.(func() time.Time)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescVersion is the schema descriptor for version field.
	entityDescVersion := entityFields[7].Descriptor()
	// entity.DefaultVersion holds the default value on creation for the version field.
	entity.DefaultVersion = entityDescVersion.Default.(int)
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[8].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityFields[9].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	entityresolutionFields := schema.EntityResolution{}.Fields()
	_ = entityresolutionFields
	// entityresolutionDescScore is the schema descriptor for score field.
	entityresolutionDescScore := entityresolutionFields[5].Descriptor()
	// entityresolution.DefaultScore holds the default value on creation for the score field.
	entityresolution.DefaultScore = entityresolutionDescScore.Default.(float64)
	// entityresolutionDescCreatedAt is the schema descriptor for created_at field.
	entityresolutionDescCreatedAt := entityresolutionFields[6].Descriptor()
	// entityresolution.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityresolution.DefaultCreatedAt = entityresolutionDescCreatedAt.Default.(func() time.Time)
	fetchdocumentFields := schema.FetchDocument{}.Fields()
	_ = fetchdocumentFields
	// fetchdocumentDescCreatedAt is the schema descriptor for created_at field.
	fetchdocumentDescCreatedAt := fetchdocumentFields[12].Descriptor()
	// fetchdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	fetchdocument.DefaultCreatedAt = fetchdocumentDescCreatedAt.Default.(func() time.Time)
	// fetchdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	fetchdocumentDescUpdatedAt := fetchdocumentFields[13].Descriptor()
	// fetchdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fetchdocument.DefaultUpdatedAt = fetchdocumentDescUpdatedAt.Default.(func() time.Time)
	// fetchdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fetchdocument.UpdateDefaultUpdatedAt = fetchdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	sectionextractionFields := schema.SectionExtraction{}.Fields()
	_ = sectionextractionFields
	// sectionextractionDescCreatedAt is the schema descriptor for created_at field.
	sectionextractionDescCreatedAt := sectionextractionFields[13].Descriptor()
	// sectionextraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	sectionextraction.DefaultCreatedAt = sectionextractionDescCreatedAt.Default.(func() time.Time)
	// sectionextractionDescUpdatedAt is the schema descriptor for updated_at field.
	sectionextractionDescUpdatedAt := sectionextractionFields[14].Descriptor()
	// sectionextraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sectionextraction.DefaultUpdatedAt = sectionextractionDescUpdatedAt.Default.(func() time.Time)
	// sectionextraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sectionextraction.UpdateDefaultUpdatedAt = sectionextractionDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepeventFields := schema.StepEvent{}.Fields()
	_ = stepeventFields
	// stepeventDescStream is the schema descriptor for stream field.
	stepeventDescStream := stepeventFields[7].Descriptor()
	// stepevent.DefaultStream holds the default value on creation for the stream field.
	stepevent.DefaultStream = stepeventDescStream.Default.(string)
	// stepeventDescCreatedAt is the schema descriptor for created_at field.
	stepeventDescCreatedAt := stepeventFields[9].Descriptor()
	// stepevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	stepevent.DefaultCreatedAt = stepeventDescCreatedAt.Default.(func() time.Time)
	steplogFields := schema.StepLog{}.Fields()
	_ = steplogFields
	// steplogDescInputCount is the schema descriptor for input_count field.
	steplogDescInputCount := steplogFields[7].Descriptor()
	// steplog.DefaultInputCount holds the default value on creation for the input_count field.
	steplog.DefaultInputCount = steplogDescInputCount.Default.(int)
	// steplogDescOutputCount is the schema descriptor for output_count field.
	steplogDescOutputCount := steplogFields[8].Descriptor()
	// steplog.DefaultOutputCount holds the default value on creation for the output_count field.
	steplog.DefaultOutputCount = steplogDescOutputCount.Default.(int)
	// steplogDescErrorCount is the schema descriptor for error_count field.
	steplogDescErrorCount := steplogFields[9].Descriptor()
	// steplog.DefaultErrorCount holds the default value on creation for the error_count field.
	steplog.DefaultErrorCount = steplogDescErrorCount.Default.(int)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescPriority is the schema descriptor for priority field.
	workflowrunDescPriority := workflowrunFields[7].Descriptor()
	// workflowrun.DefaultPriority holds the default value on creation for the priority field.
	workflowrun.DefaultPriority = workflowrunDescPriority.Default.(int)
	// workflowrunDescCreatedAt is the schema descriptor for created_at field.
	workflowrunDescCreatedAt := workflowrunFields[8].Descriptor()
	// workflowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrun.DefaultCreatedAt = workflowrunDescCreatedAt.Default.(func() time.Time)
}
