package tools

import "errors"

var monitorTypes = []string{
	"OBS_MONITORING_TYPE_NONE",
	"OBS_MONITORING_TYPE_MONITOR_ONLY",
	"OBS_MONITORING_TYPE_MONITOR_AND_OUTPUT",
}

type inputArgs struct {
	InputName string `json:"inputName" jsonschema:"Name of the input"`
}

type inputListArgs struct {
	InputKind string `json:"inputKind,omitempty" jsonschema:"Restrict the array to only inputs of the specified kind"`
}

type inputKindListArgs struct {
	Unversioned *bool `json:"unversioned,omitempty" jsonschema:"True to return all kinds as unversioned, False to return with version suffixes"`
}

type inputKindArgs struct {
	InputKind string `json:"inputKind" jsonschema:"Input kind to get the default settings for"`
}

type createInputArgs struct {
	SceneName        string         `json:"sceneName" jsonschema:"Name of the scene to add the input to as a scene item"`
	InputName        string         `json:"inputName" jsonschema:"Name of the new input to created"`
	InputKind        string         `json:"inputKind" jsonschema:"The kind of input to be created"`
	InputSettings    map[string]any `json:"inputSettings,omitempty" jsonschema:"Settings object to initialize the input with"`
	SceneItemEnabled *bool          `json:"sceneItemEnabled,omitempty" jsonschema:"Whether to set the created scene item to enabled or disabled"`
}

type renameInputArgs struct {
	InputName    string `json:"inputName" jsonschema:"Current input name"`
	NewInputName string `json:"newInputName" jsonschema:"New name for the input"`
}

type inputSettingsArgs struct {
	InputName     string         `json:"inputName" jsonschema:"Name of the input to set the settings of"`
	InputSettings map[string]any `json:"inputSettings" jsonschema:"Object of settings to apply"`
	Overlay       *bool          `json:"overlay,omitempty" jsonschema:"True to apply settings on top of existing ones, False to reset to defaults first"`
}

type inputMuteArgs struct {
	InputName  string `json:"inputName" jsonschema:"Name of the input to set the mute state of"`
	InputMuted bool   `json:"inputMuted" jsonschema:"Whether to mute the input or not"`
}

type inputVolumeArgs struct {
	InputName      string   `json:"inputName" jsonschema:"Name of the input to set the volume of"`
	InputVolumeMul *float64 `json:"inputVolumeMul,omitempty" jsonschema:"Volume setting in mul (0-20)"`
	InputVolumeDb  *float64 `json:"inputVolumeDb,omitempty" jsonschema:"Volume setting in dB (-100 to 26)"`
}

type audioBalanceArgs struct {
	InputName         string  `json:"inputName" jsonschema:"Name of the input to set the audio balance of"`
	InputAudioBalance float64 `json:"inputAudioBalance" jsonschema:"New audio balance value (0.0-1.0)"`
}

type audioSyncOffsetArgs struct {
	InputName            string  `json:"inputName" jsonschema:"Name of the input to set the audio sync offset of"`
	InputAudioSyncOffset float64 `json:"inputAudioSyncOffset" jsonschema:"New audio sync offset in milliseconds"`
}

type audioMonitorTypeArgs struct {
	InputName   string `json:"inputName" jsonschema:"Name of the input to set the audio monitor type of"`
	MonitorType string `json:"monitorType" jsonschema:"Audio monitor type (OBS_MONITORING_TYPE_NONE, OBS_MONITORING_TYPE_MONITOR_ONLY, OBS_MONITORING_TYPE_MONITOR_AND_OUTPUT)"`
}

func checkVolume(in inputVolumeArgs) error {
	if in.InputVolumeMul == nil && in.InputVolumeDb == nil {
		return errors.New("either inputVolumeMul or inputVolumeDb must be provided")
	}
	if in.InputVolumeMul != nil {
		if err := inRange("inputVolumeMul", *in.InputVolumeMul, 0, 20); err != nil {
			return err
		}
	}
	if in.InputVolumeDb != nil {
		return inRange("inputVolumeDb", *in.InputVolumeDb, -100, 26)
	}
	return nil
}

func inputTools() []tool {
	return []tool{
		direct[inputListArgs]("obs-get-input-list", "Gets an array of all inputs in OBS", "GetInputList"),
		direct[inputKindListArgs]("obs-get-input-kind-list", "Gets an array of all available input kinds in OBS", "GetInputKindList"),
		simple("obs-get-special-inputs", "Gets the names of all special inputs", "GetSpecialInputs"),
		direct[createInputArgs]("obs-create-input", "Creates a new input, adding it as a scene item to the specified scene", "CreateInput"),
		direct[inputArgs]("obs-remove-input", "Removes an existing input", "RemoveInput"),
		direct[renameInputArgs]("obs-set-input-name", "Sets the name of an input (rename)", "SetInputName"),
		direct[inputKindArgs]("obs-get-input-default-settings", "Gets the default settings for an input kind", "GetInputDefaultSettings"),
		direct[inputArgs]("obs-get-input-settings", "Gets the settings of an input", "GetInputSettings"),
		direct[inputSettingsArgs]("obs-set-input-settings", "Sets the settings of an input", "SetInputSettings"),
		direct[inputArgs]("obs-get-input-mute", "Gets the audio mute state of an input", "GetInputMute"),
		direct[inputMuteArgs]("obs-set-input-mute", "Sets the audio mute state of an input", "SetInputMute"),
		direct[inputArgs]("obs-toggle-input-mute", "Toggles the audio mute state of an input", "ToggleInputMute"),
		direct[inputArgs]("obs-get-input-volume", "Gets the current volume setting of an input", "GetInputVolume"),
		custom("obs-set-input-volume", "Sets the volume setting of an input", "SetInputVolume", validated(checkVolume)),
		direct[inputArgs]("obs-get-input-audio-balance", "Gets the audio balance of an input", "GetInputAudioBalance"),
		custom("obs-set-input-audio-balance", "Sets the audio balance of an input", "SetInputAudioBalance",
			validated(func(in audioBalanceArgs) error { return inRange("inputAudioBalance", in.InputAudioBalance, 0, 1) })),
		direct[inputArgs]("obs-get-input-audio-sync-offset", "Gets the audio sync offset of an input", "GetInputAudioSyncOffset"),
		custom("obs-set-input-audio-sync-offset", "Sets the audio sync offset of an input", "SetInputAudioSyncOffset",
			validated(func(in audioSyncOffsetArgs) error {
				return inRange("inputAudioSyncOffset", in.InputAudioSyncOffset, -950, 20000)
			})),
		direct[inputArgs]("obs-get-input-audio-monitor-type", "Gets the audio monitor type of an input", "GetInputAudioMonitorType"),
		custom("obs-set-input-audio-monitor-type", "Sets the audio monitor type of an input", "SetInputAudioMonitorType",
			validated(func(in audioMonitorTypeArgs) error { return oneOf("monitorType", in.MonitorType, monitorTypes...) })),
	}
}
