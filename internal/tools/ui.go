package tools

var videoMixTypes = []string{
	"OBS_WEBSOCKET_VIDEO_MIX_TYPE_PREVIEW",
	"OBS_WEBSOCKET_VIDEO_MIX_TYPE_PROGRAM",
	"OBS_WEBSOCKET_VIDEO_MIX_TYPE_MULTIVIEW",
}

type studioModeArgs struct {
	StudioModeEnabled bool `json:"studioModeEnabled" jsonschema:"Whether to enable (true) or disable (false) Studio Mode"`
}

type inputDialogArgs struct {
	InputName string `json:"inputName,omitempty" jsonschema:"Name of the input to open the dialog of"`
	InputUUID string `json:"inputUuid,omitempty" jsonschema:"UUID of the input to open the dialog of"`
}

type videoMixProjectorArgs struct {
	VideoMixType      string   `json:"videoMixType" jsonschema:"Type of mix to open (OBS_WEBSOCKET_VIDEO_MIX_TYPE_PREVIEW, _PROGRAM or _MULTIVIEW)"`
	MonitorIndex      *float64 `json:"monitorIndex,omitempty" jsonschema:"Monitor index, use -1 for windowed mode"`
	ProjectorGeometry string   `json:"projectorGeometry,omitempty" jsonschema:"Size/Position data for a windowed projector"`
}

type sourceProjectorArgs struct {
	SourceName        string   `json:"sourceName,omitempty" jsonschema:"Name of the source to open a projector for"`
	SourceUUID        string   `json:"sourceUuid,omitempty" jsonschema:"UUID of the source to open a projector for"`
	MonitorIndex      *float64 `json:"monitorIndex,omitempty" jsonschema:"Monitor index, use -1 for windowed mode"`
	ProjectorGeometry string   `json:"projectorGeometry,omitempty" jsonschema:"Size/Position data for a windowed projector"`
}

func inputDialog(name, description, requestType string) tool {
	return custom(name, description, requestType, validated(func(in inputDialogArgs) error {
		return nameOrUUID("input", in.InputName, in.InputUUID)
	}))
}

func uiTools() []tool {
	return []tool{
		simple("obs-get-studio-mode", "Gets whether studio mode is enabled", "GetStudioModeEnabled"),
		direct[studioModeArgs]("obs-set-studio-mode", "Enables or disables studio mode", "SetStudioModeEnabled"),
		inputDialog("obs-open-input-properties", "Opens the properties dialog of an input", "OpenInputPropertiesDialog"),
		inputDialog("obs-open-input-filters", "Opens the filters dialog of an input", "OpenInputFiltersDialog"),
		inputDialog("obs-open-input-interact", "Opens the interact dialog of an input", "OpenInputInteractDialog"),
		simple("obs-get-monitor-list", "Gets a list of connected monitors and information about them", "GetMonitorList"),
		custom("obs-open-video-mix-projector", "Opens a projector for a specific output video mix", "OpenVideoMixProjector",
			validated(func(in videoMixProjectorArgs) error { return oneOf("videoMixType", in.VideoMixType, videoMixTypes...) })),
		custom("obs-open-source-projector", "Opens a projector for a source", "OpenSourceProjector",
			validated(func(in sourceProjectorArgs) error { return nameOrUUID("source", in.SourceName, in.SourceUUID) })),
	}
}
