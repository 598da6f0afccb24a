package openapi

// Info provides various information about the API and document.
type Info struct {
	Title       string  `yaml:"title" json:"title"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string  `yaml:"version" json:"version"`
}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (i *Info) GetTitle() string {
	if i == nil {
		return ""
	}
	return i.Title
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (i *Info) GetDescription() string {
	if i == nil || i.Description == nil {
		return ""
	}
	return *i.Description
}

// GetVersion returns the value of the Version field. Returns empty string if not set.
func (i *Info) GetVersion() string {
	if i == nil {
		return ""
	}
	return i.Version
}
