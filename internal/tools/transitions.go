package tools

import "errors"

type transitionNameArgs struct {
	TransitionName string `json:"transitionName" jsonschema:"The name of the transition to set as current"`
}

type transitionDurationArgs struct {
	Duration float64 `json:"duration" jsonschema:"The duration to set in milliseconds"`
}

type transitionSettingsArgs struct {
	TransitionSettings map[string]any `json:"transitionSettings" jsonschema:"The settings to apply to the transition"`
	Overlay            *bool          `json:"overlay,omitempty" jsonschema:"Whether to overlay over the current settings or replace them"`
}

type transitionOverrideArgs struct {
	SceneName string `json:"sceneName" jsonschema:"Name of the scene"`
}

type setTransitionOverrideArgs struct {
	SceneName          string   `json:"sceneName" jsonschema:"Name of the scene"`
	TransitionName     *string  `json:"transitionName,omitempty" jsonschema:"Name of the transition to use, or null to remove"`
	TransitionDuration *float64 `json:"transitionDuration,omitempty" jsonschema:"Duration of the transition in milliseconds, or null to use default"`
}

type tbarArgs struct {
	Position float64 `json:"position" jsonschema:"New position of the T-Bar (0.0-1.0)"`
	Release  *bool   `json:"release,omitempty" jsonschema:"Whether to release the T-Bar. Only set false if you know that you will be sending another position update"`
}

func buildTransitionDuration(in transitionDurationArgs) (map[string]any, error) {
	if err := atLeast("duration", in.Duration, 0); err != nil {
		return nil, err
	}
	return map[string]any{"transitionDuration": in.Duration}, nil
}

func checkTransitionOverride(in setTransitionOverrideArgs) error {
	if in.TransitionName == nil && in.TransitionDuration == nil {
		return errors.New("either transitionName or transitionDuration must be provided")
	}
	if in.TransitionDuration != nil {
		return inRange("transitionDuration", *in.TransitionDuration, 50, 20000)
	}
	return nil
}

func transitionTools() []tool {
	return []tool{
		simple("obs-get-transition-list", "Get a list of available transitions in OBS", "GetSceneTransitionList"),
		simple("obs-get-transition-kind-list", "Gets an array of all available transition kinds", "GetTransitionKindList"),
		simple("obs-get-current-transition", "Get the name of the currently active transition", "GetCurrentSceneTransition"),
		direct[transitionNameArgs]("obs-set-current-transition", "Set the current transition in OBS", "SetCurrentSceneTransition"),
		simple("obs-get-transition-duration", "Get the duration of the current transition in milliseconds", "GetCurrentSceneTransitionDuration"),
		custom("obs-set-transition-duration", "Set the duration of the current transition in milliseconds", "SetCurrentSceneTransitionDuration", buildTransitionDuration),
		simple("obs-get-transition-kind", "Get the kind/type of the current transition", "GetCurrentSceneTransition"),
		direct[transitionSettingsArgs]("obs-set-transition-settings", "Set the settings of the current transition", "SetCurrentSceneTransitionSettings"),
		simple("obs-get-transition-settings", "Get the settings of the current transition", "GetCurrentSceneTransitionSettings"),
		direct[transitionOverrideArgs]("obs-get-scene-transition-override", "Gets the scene transition overridden for a scene", "GetSceneSceneTransitionOverride"),
		custom("obs-set-scene-transition-override", "Sets the scene transition overridden for a scene", "SetSceneSceneTransitionOverride",
			validated(checkTransitionOverride)),
		custom("obs-set-tbar-position", "Sets the position of the T-Bar (Studio Mode)", "SetTBarPosition",
			validated(func(in tbarArgs) error { return inRange("position", in.Position, 0, 1) })),
		simple("obs-trigger-transition", "Trigger a scene transition in OBS (Studio Mode must be enabled)", "TriggerStudioModeTransition"),
	}
}
