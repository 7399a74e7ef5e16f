package main

import "github.com/kurt-labs/kurt/pkg/workflow"

// registerBuiltinWorkflows installs the workflows the CLI verbs run. They
// are plain definitions; declarative TOML workflows loaded via
// `kurt workflow run` use the same machinery.
func registerBuiltinWorkflows(reg *workflow.WorkflowRegistry) {
	reg.Register(&workflow.Definition{
		Name:        "map",
		Description: "Discover documents from a source and record them",
		Inputs: map[string]workflow.InputDef{
			"source": {Type: "string", Required: true},
			"method": {Type: "string", Default: "sitemap"},
			"limit":  {Type: "int", Default: 0},
		},
		Steps: map[string]workflow.StepDef{
			"map": {Type: "map"},
		},
	})

	reg.Register(&workflow.Definition{
		Name:        "fetch",
		Description: "Discover and fetch document content",
		Inputs: map[string]workflow.InputDef{
			"source":              {Type: "string", Required: true},
			"method":              {Type: "string", Default: "sitemap"},
			"limit":               {Type: "int", Default: 0},
			"engine":              {Type: "string", Default: ""},
			"refetch":             {Type: "bool", Default: false},
			"reprocess_unchanged": {Type: "bool", Default: false},
		},
		Steps: map[string]workflow.StepDef{
			"map":   {Type: "map"},
			"fetch": {Type: "fetch", DependsOn: []string{"map"}},
		},
	})

	reg.Register(&workflow.Definition{
		Name:        "index",
		Description: "Full pipeline: discover, fetch, extract, resolve",
		Inputs: map[string]workflow.InputDef{
			"source":              {Type: "string", Required: true},
			"method":              {Type: "string", Default: "sitemap"},
			"limit":               {Type: "int", Default: 0},
			"engine":              {Type: "string", Default: ""},
			"refetch":             {Type: "bool", Default: false},
			"reprocess_unchanged": {Type: "bool", Default: false},
		},
		Steps: map[string]workflow.StepDef{
			"map":              {Type: "map"},
			"fetch":            {Type: "fetch", DependsOn: []string{"map"}},
			"extract_sections": {Type: "extract_sections", DependsOn: []string{"fetch"}},
			"resolve_entities": {Type: "resolve_entities", DependsOn: []string{"extract_sections"}},
			"cluster_claims":   {Type: "cluster_claims", DependsOn: []string{"resolve_entities"}},
			"resolve_claims":   {Type: "resolve_claims", DependsOn: []string{"cluster_claims"}},
		},
	})
}
