package tools

type streamCaptionArgs struct {
	CaptionText string `json:"captionText" jsonschema:"Caption text to send"`
}

func streamingTools() []tool {
	return []tool{
		simple("obs-get-stream-status", "Get the current streaming status", "GetStreamStatus"),
		simple("obs-start-stream", "Start streaming in OBS", "StartStream"),
		simple("obs-stop-stream", "Stop streaming in OBS", "StopStream"),
		simple("obs-toggle-stream", "Toggle the streaming state in OBS", "ToggleStream"),
		direct[streamCaptionArgs]("obs-send-stream-caption", "Sends CEA-608 caption text over the stream output", "SendStreamCaption"),
	}
}
