package types

// OperatorType discriminates the Operation union
type OperatorType string

const (
	OperatorNormalization OperatorType = "normalization"
	OperatorDbt           OperatorType = "dbt"
)

// NormalizationOption selects the destination provided post-load step; RAW is
// the "no normalization" sentinel and never materializes as an operation.
type NormalizationOption string

const (
	NormalizationRaw   NormalizationOption = "raw"
	NormalizationBasic NormalizationOption = "basic"
)

// Operation is one post-load processing step. Exactly one of Normalization or
// Dbt is set, keyed by Operator. ID is assigned by the persistence layer; an
// empty ID means the operation has not been persisted yet.
type Operation struct {
	ID            string               `json:"operation_id,omitempty"`
	WorkspaceID   string               `json:"workspace_id,omitempty"`
	Name          string               `json:"name,omitempty"`
	Operator      OperatorType         `json:"operator_type"`
	Normalization *NormalizationConfig `json:"normalization,omitempty"`
	Dbt           *DbtConfig           `json:"dbt,omitempty"`
}

type NormalizationConfig struct {
	Option NormalizationOption `json:"option"`
}

// DbtConfig is the user defined transformation step configuration
type DbtConfig struct {
	DockerImage   string `json:"docker_image,omitempty"`
	DbtArguments  string `json:"dbt_arguments,omitempty"`
	GitRepoURL    string `json:"git_repo_url,omitempty"`
	GitRepoBranch string `json:"git_repo_branch,omitempty"`
}

func NewNormalizationOperation(workspaceID string, option NormalizationOption) Operation {
	return Operation{
		WorkspaceID:   workspaceID,
		Name:          "Normalization",
		Operator:      OperatorNormalization,
		Normalization: &NormalizationConfig{Option: option},
	}
}

func NewDbtOperation(name, workspaceID string, config DbtConfig) Operation {
	return Operation{
		WorkspaceID: workspaceID,
		Name:        name,
		Operator:    OperatorDbt,
		Dbt:         &config,
	}
}

func (o Operation) IsNormalization() bool {
	return o.Operator == OperatorNormalization
}

func (o Operation) Persisted() bool {
	return o.ID != ""
}
