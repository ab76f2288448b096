package lulu

import "time"

// Project is a print project: the title and files an order is built from.
type Project struct {
	ID          string                 `json:"id"                    yaml:"id"`
	Title       string                 `json:"title"                 yaml:"title"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Status      ProjectStatus          `json:"status"                yaml:"status"`
	CreatedAt   time.Time              `json:"created_at"            yaml:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"            yaml:"updated_at"`
	Author      *string                `json:"author,omitempty"      yaml:"author,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// CreateProjectRequest is the body of a project create.
type CreateProjectRequest struct {
	Title       string                 `json:"title"                 validate:"notblank"       yaml:"title"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Author      *string                `json:"author,omitempty"      yaml:"author,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// UpdateProjectRequest is the body of a project update. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string                `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Status      *ProjectStatus         `json:"status,omitempty"      yaml:"status,omitempty"`
	Author      *string                `json:"author,omitempty"      yaml:"author,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}
