package openapi

// Tag adds metadata to a single tag used by operations, in first-encounter
// order of the Postman folders that generated it.
type Tag struct {
	Name        string  `yaml:"name" json:"name"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (t *Tag) GetDescription() string {
	if t == nil || t.Description == nil {
		return ""
	}
	return *t.Description
}
