package tools

type sceneArgs struct {
	SceneName string `json:"sceneName" jsonschema:"The name of the scene"`
}

type renameSceneArgs struct {
	SceneName    string `json:"sceneName" jsonschema:"Name of the scene to be renamed"`
	NewSceneName string `json:"newSceneName" jsonschema:"New name for the scene"`
}

func sceneTools() []tool {
	return []tool{
		simple("obs-get-scene-list", "Get a list of scenes in OBS", "GetSceneList"),
		simple("obs-get-current-scene", "Get the current active scene in OBS", "GetCurrentProgramScene"),
		direct[sceneArgs]("obs-set-current-scene", "Set the current active scene in OBS", "SetCurrentProgramScene"),
		simple("obs-get-preview-scene", "Get the current preview scene in OBS Studio Mode", "GetCurrentPreviewScene"),
		direct[sceneArgs]("obs-set-preview-scene", "Set the current preview scene in OBS Studio Mode", "SetCurrentPreviewScene"),
		direct[sceneArgs]("obs-create-scene", "Create a new scene in OBS", "CreateScene"),
		direct[sceneArgs]("obs-remove-scene", "Remove a scene from OBS", "RemoveScene"),
		direct[renameSceneArgs]("obs-set-scene-name", "Sets the name of a scene (rename)", "SetSceneName"),
		simple("obs-get-group-list", "Gets an array of all groups in OBS", "GetGroupList"),
		simple("obs-trigger-studio-transition", "Trigger a transition from preview to program scene in Studio Mode", "TriggerStudioModeTransition"),
	}
}
