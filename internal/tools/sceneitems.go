package tools

import "errors"

var blendModes = []string{
	"OBS_BLEND_NORMAL",
	"OBS_BLEND_ADDITIVE",
	"OBS_BLEND_SUBTRACT",
	"OBS_BLEND_SCREEN",
	"OBS_BLEND_MULTIPLY",
	"OBS_BLEND_LIGHTEN",
	"OBS_BLEND_DARKEN",
}

type sceneItemArgs struct {
	SceneName   string `json:"sceneName" jsonschema:"The scene the item is in"`
	SceneItemID int    `json:"sceneItemId" jsonschema:"The ID of the scene item"`
}

type groupItemsArgs struct {
	SceneName string `json:"sceneName" jsonschema:"Name of the group to get the items of"`
}

type createSceneItemArgs struct {
	SceneName  string `json:"sceneName" jsonschema:"The scene to add the source to"`
	SourceName string `json:"sourceName" jsonschema:"The name of the source to add"`
	Enabled    *bool  `json:"enabled,omitempty" jsonschema:"Whether the scene item is enabled/visible (default: true)"`
}

type duplicateSceneItemArgs struct {
	SceneName            string `json:"sceneName" jsonschema:"Name of the scene the item is in"`
	SceneItemID          int    `json:"sceneItemId" jsonschema:"ID of the scene item to duplicate"`
	DestinationSceneName string `json:"destinationSceneName,omitempty" jsonschema:"Scene to create the duplicated item in (defaults to the original scene)"`
}

type sceneItemEnabledArgs struct {
	SceneName   string `json:"sceneName" jsonschema:"The scene that the source belongs to"`
	SceneItemID int    `json:"sceneItemId" jsonschema:"The ID of the scene item"`
	Enabled     bool   `json:"enabled" jsonschema:"Whether to show (true) or hide (false) the item"`
}

type sceneItemLockedArgs struct {
	SceneName       string `json:"sceneName" jsonschema:"The scene the item is in"`
	SceneItemID     int    `json:"sceneItemId" jsonschema:"The ID of the scene item"`
	SceneItemLocked bool   `json:"sceneItemLocked" jsonschema:"New lock state of the scene item"`
}

type sceneItemIndexArgs struct {
	SceneName      string `json:"sceneName" jsonschema:"The scene the item is in"`
	SceneItemID    int    `json:"sceneItemId" jsonschema:"The ID of the scene item"`
	SceneItemIndex int    `json:"sceneItemIndex" jsonschema:"New index position of the scene item"`
}

type sceneItemBlendModeArgs struct {
	SceneName          string `json:"sceneName" jsonschema:"The scene the item is in"`
	SceneItemID        int    `json:"sceneItemId" jsonschema:"The ID of the scene item"`
	SceneItemBlendMode string `json:"sceneItemBlendMode" jsonschema:"New blend mode, e.g. OBS_BLEND_NORMAL or OBS_BLEND_ADDITIVE"`
}

type sceneItemTransformArgs struct {
	SceneName   string   `json:"sceneName" jsonschema:"The scene the item is in"`
	SceneItemID int      `json:"sceneItemId" jsonschema:"The ID of the scene item"`
	PositionX   *float64 `json:"positionX,omitempty" jsonschema:"The x position"`
	PositionY   *float64 `json:"positionY,omitempty" jsonschema:"The y position"`
	Rotation    *float64 `json:"rotation,omitempty" jsonschema:"The rotation in degrees"`
	ScaleX      *float64 `json:"scaleX,omitempty" jsonschema:"The x scale factor"`
	ScaleY      *float64 `json:"scaleY,omitempty" jsonschema:"The y scale factor"`
	CropTop     *float64 `json:"cropTop,omitempty" jsonschema:"The number of pixels cropped off the top"`
	CropBottom  *float64 `json:"cropBottom,omitempty" jsonschema:"The number of pixels cropped off the bottom"`
	CropLeft    *float64 `json:"cropLeft,omitempty" jsonschema:"The number of pixels cropped off the left"`
	CropRight   *float64 `json:"cropRight,omitempty" jsonschema:"The number of pixels cropped off the right"`
}

type sceneItemIDArgs struct {
	SceneName    string `json:"sceneName" jsonschema:"The scene name to search in"`
	SourceName   string `json:"sourceName" jsonschema:"The source name to find"`
	SearchOffset *int   `json:"searchOffset,omitempty" jsonschema:"Number of matches to skip during search. -1 means last"`
}

func buildCreateSceneItem(in createSceneItemArgs) (map[string]any, error) {
	data := map[string]any{
		"sceneName":  in.SceneName,
		"sourceName": in.SourceName,
	}
	if in.Enabled != nil {
		data["sceneItemEnabled"] = *in.Enabled
	}
	return data, nil
}

func buildSceneItemEnabled(in sceneItemEnabledArgs) (map[string]any, error) {
	return map[string]any{
		"sceneName":        in.SceneName,
		"sceneItemId":      in.SceneItemID,
		"sceneItemEnabled": in.Enabled,
	}, nil
}

// плоские поля инструмента собираются в sceneItemTransform
func buildSceneItemTransform(in sceneItemTransformArgs) (map[string]any, error) {
	transform := map[string]any{}
	for key, v := range map[string]*float64{
		"positionX":  in.PositionX,
		"positionY":  in.PositionY,
		"rotation":   in.Rotation,
		"scaleX":     in.ScaleX,
		"scaleY":     in.ScaleY,
		"cropTop":    in.CropTop,
		"cropBottom": in.CropBottom,
		"cropLeft":   in.CropLeft,
		"cropRight":  in.CropRight,
	} {
		if v != nil {
			transform[key] = *v
		}
	}
	if len(transform) == 0 {
		return nil, errors.New("at least one transform field is required")
	}
	return map[string]any{
		"sceneName":          in.SceneName,
		"sceneItemId":        in.SceneItemID,
		"sceneItemTransform": transform,
	}, nil
}

func sceneItemTools() []tool {
	return []tool{
		direct[sceneArgs]("obs-get-scene-items", "Get a list of all scene items in a scene", "GetSceneItemList"),
		direct[groupItemsArgs]("obs-get-group-scene-items", "Get a list of all scene items in a group", "GetGroupSceneItemList"),
		custom("obs-create-scene-item", "Create a scene item for a source in a scene", "CreateSceneItem", buildCreateSceneItem),
		direct[sceneItemArgs]("obs-remove-scene-item", "Remove a scene item from a scene", "RemoveSceneItem"),
		direct[duplicateSceneItemArgs]("obs-duplicate-scene-item", "Duplicates a scene item, copying all transform and crop info", "DuplicateSceneItem"),
		direct[sceneItemArgs]("obs-get-scene-item-enabled", "Gets the enable state of a scene item", "GetSceneItemEnabled"),
		custom("obs-set-scene-item-enabled", "Show or hide a scene item", "SetSceneItemEnabled", buildSceneItemEnabled),
		direct[sceneItemArgs]("obs-get-scene-item-locked", "Gets the lock state of a scene item", "GetSceneItemLocked"),
		direct[sceneItemLockedArgs]("obs-set-scene-item-locked", "Sets the lock state of a scene item", "SetSceneItemLocked"),
		direct[sceneItemArgs]("obs-get-scene-item-index", "Gets the index position of a scene item in a scene", "GetSceneItemIndex"),
		custom("obs-set-scene-item-index", "Sets the index position of a scene item in a scene", "SetSceneItemIndex",
			validated(func(in sceneItemIndexArgs) error { return atLeast("sceneItemIndex", float64(in.SceneItemIndex), 0) })),
		direct[sceneItemArgs]("obs-get-scene-item-blend-mode", "Gets the blend mode of a scene item", "GetSceneItemBlendMode"),
		custom("obs-set-scene-item-blend-mode", "Sets the blend mode of a scene item", "SetSceneItemBlendMode",
			validated(func(in sceneItemBlendModeArgs) error {
				return oneOf("sceneItemBlendMode", in.SceneItemBlendMode, blendModes...)
			})),
		direct[sceneItemArgs]("obs-get-scene-item-transform", "Get the position, rotation, scale, or crop of a scene item", "GetSceneItemTransform"),
		custom("obs-set-scene-item-transform", "Set the position, rotation, scale, or crop of a scene item", "SetSceneItemTransform", buildSceneItemTransform),
		direct[sceneItemIDArgs]("obs-get-scene-item-id", "Get the ID of a scene item by its source name", "GetSceneItemId"),
	}
}
