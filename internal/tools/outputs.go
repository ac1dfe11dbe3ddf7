package tools

type outputArgs struct {
	OutputName string `json:"outputName" jsonschema:"Output name"`
}

type outputSettingsArgs struct {
	OutputName     string         `json:"outputName" jsonschema:"Output name"`
	OutputSettings map[string]any `json:"outputSettings" jsonschema:"Output settings"`
}

func outputTools() []tool {
	return []tool{
		simple("obs-get-virtual-cam-status", "Gets the status of the virtualcam output", "GetVirtualCamStatus"),
		simple("obs-toggle-virtual-cam", "Toggles the state of the virtualcam output", "ToggleVirtualCam"),
		simple("obs-start-virtual-cam", "Starts the virtualcam output", "StartVirtualCam"),
		simple("obs-stop-virtual-cam", "Stops the virtualcam output", "StopVirtualCam"),
		simple("obs-get-replay-buffer-status", "Gets the status of the replay buffer output", "GetReplayBufferStatus"),
		simple("obs-toggle-replay-buffer", "Toggles the state of the replay buffer output", "ToggleReplayBuffer"),
		simple("obs-start-replay-buffer", "Starts the replay buffer output", "StartReplayBuffer"),
		simple("obs-stop-replay-buffer", "Stops the replay buffer output", "StopReplayBuffer"),
		simple("obs-save-replay-buffer", "Saves the contents of the replay buffer output", "SaveReplayBuffer"),
		simple("obs-get-last-replay-buffer-replay", "Gets the filename of the last replay buffer save file", "GetLastReplayBufferReplay"),
		simple("obs-get-output-list", "Gets the list of available outputs", "GetOutputList"),
		direct[outputArgs]("obs-get-output-status", "Gets the status of an output", "GetOutputStatus"),
		direct[outputArgs]("obs-toggle-output", "Toggles the status of an output", "ToggleOutput"),
		direct[outputArgs]("obs-start-output", "Starts an output", "StartOutput"),
		direct[outputArgs]("obs-stop-output", "Stops an output", "StopOutput"),
		direct[outputArgs]("obs-get-output-settings", "Gets the settings of an output", "GetOutputSettings"),
		direct[outputSettingsArgs]("obs-set-output-settings", "Sets the settings of an output", "SetOutputSettings"),
	}
}
