package tools

var mediaActions = []string{
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_PLAY",
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_PAUSE",
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_STOP",
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_RESTART",
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_NEXT",
	"OBS_WEBSOCKET_MEDIA_INPUT_ACTION_PREVIOUS",
}

type mediaInputArgs struct {
	InputName string `json:"inputName" jsonschema:"Name of the media input"`
}

type mediaCursorArgs struct {
	InputName   string  `json:"inputName" jsonschema:"Name of the media input"`
	MediaCursor float64 `json:"mediaCursor" jsonschema:"New cursor position to set (in milliseconds)"`
}

type mediaCursorOffsetArgs struct {
	InputName         string  `json:"inputName" jsonschema:"Name of the media input"`
	MediaCursorOffset float64 `json:"mediaCursorOffset" jsonschema:"Value to offset the current cursor position by (in milliseconds)"`
}

type mediaActionArgs struct {
	InputName   string `json:"inputName" jsonschema:"Name of the media input"`
	MediaAction string `json:"mediaAction" jsonschema:"Action to trigger (OBS_WEBSOCKET_MEDIA_INPUT_ACTION_PLAY, PAUSE, STOP, RESTART, NEXT, PREVIOUS)"`
}

func mediaInputTools() []tool {
	return []tool{
		direct[mediaInputArgs]("obs-get-media-input-status", "Gets the status of a media input", "GetMediaInputStatus"),
		custom("obs-set-media-input-cursor", "Sets the cursor position of a media input", "SetMediaInputCursor",
			validated(func(in mediaCursorArgs) error { return atLeast("mediaCursor", in.MediaCursor, 0) })),
		direct[mediaCursorOffsetArgs]("obs-offset-media-input-cursor", "Offsets the current cursor position of a media input", "OffsetMediaInputCursor"),
		custom("obs-trigger-media-input-action", "Triggers an action on a media input", "TriggerMediaInputAction",
			validated(func(in mediaActionArgs) error { return oneOf("mediaAction", in.MediaAction, mediaActions...) })),
	}
}
