package tools

type sourceFiltersArgs struct {
	SourceName string `json:"sourceName" jsonschema:"Name of the source"`
}

type filterKindArgs struct {
	FilterKind string `json:"filterKind" jsonschema:"Filter kind to get the default settings for"`
}

type filterArgs struct {
	SourceName string `json:"sourceName" jsonschema:"Name of the source the filter is on"`
	FilterName string `json:"filterName" jsonschema:"Name of the filter"`
}

type createFilterArgs struct {
	SourceName     string         `json:"sourceName" jsonschema:"Name of the source to add the filter to"`
	FilterName     string         `json:"filterName" jsonschema:"Name of the new filter to be created"`
	FilterKind     string         `json:"filterKind" jsonschema:"The kind of filter to be created"`
	FilterSettings map[string]any `json:"filterSettings,omitempty" jsonschema:"Settings object to initialize the filter with"`
}

type renameFilterArgs struct {
	SourceName    string `json:"sourceName" jsonschema:"Name of the source the filter is on"`
	FilterName    string `json:"filterName" jsonschema:"Current name of the filter"`
	NewFilterName string `json:"newFilterName" jsonschema:"New name for the filter"`
}

type filterIndexArgs struct {
	SourceName  string `json:"sourceName" jsonschema:"Name of the source the filter is on"`
	FilterName  string `json:"filterName" jsonschema:"Name of the filter"`
	FilterIndex int    `json:"filterIndex" jsonschema:"New index position of the filter"`
}

type filterSettingsArgs struct {
	SourceName     string         `json:"sourceName" jsonschema:"Name of the source the filter is on"`
	FilterName     string         `json:"filterName" jsonschema:"Name of the filter to set the settings of"`
	FilterSettings map[string]any `json:"filterSettings" jsonschema:"Object of settings to apply"`
	Overlay        *bool          `json:"overlay,omitempty" jsonschema:"True to apply settings on top of existing ones, False to reset to defaults first"`
}

type filterEnabledArgs struct {
	SourceName    string `json:"sourceName" jsonschema:"Name of the source the filter is on"`
	FilterName    string `json:"filterName" jsonschema:"Name of the filter"`
	FilterEnabled bool   `json:"filterEnabled" jsonschema:"New enable state of the filter"`
}

func filterTools() []tool {
	return []tool{
		simple("obs-get-filter-kind-list", "Gets an array of all available source filter kinds", "GetSourceFilterKindList"),
		direct[sourceFiltersArgs]("obs-get-source-filter-list", "Gets an array of all of a source's filters", "GetSourceFilterList"),
		direct[filterKindArgs]("obs-get-filter-default-settings", "Gets the default settings for a filter kind", "GetSourceFilterDefaultSettings"),
		direct[createFilterArgs]("obs-create-source-filter", "Creates a new filter, adding it to the specified source", "CreateSourceFilter"),
		direct[filterArgs]("obs-remove-source-filter", "Removes a filter from a source", "RemoveSourceFilter"),
		direct[renameFilterArgs]("obs-set-source-filter-name", "Sets the name of a source filter (rename)", "SetSourceFilterName"),
		direct[filterArgs]("obs-get-source-filter", "Gets the info for a specific source filter", "GetSourceFilter"),
		custom("obs-set-source-filter-index", "Sets the index position of a filter on a source", "SetSourceFilterIndex",
			validated(func(in filterIndexArgs) error { return atLeast("filterIndex", float64(in.FilterIndex), 0) })),
		direct[filterSettingsArgs]("obs-set-source-filter-settings", "Sets the settings of a source filter", "SetSourceFilterSettings"),
		direct[filterEnabledArgs]("obs-set-source-filter-enabled", "Sets the enable state of a source filter", "SetSourceFilterEnabled"),
	}
}
