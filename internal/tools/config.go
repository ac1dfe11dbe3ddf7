package tools

import "errors"

const (
	realmGlobal  = "OBS_WEBSOCKET_DATA_REALM_GLOBAL"
	realmProfile = "OBS_WEBSOCKET_DATA_REALM_PROFILE"
)

type getPersistentDataArgs struct {
	Realm    string `json:"realm" jsonschema:"The data realm to select. OBS_WEBSOCKET_DATA_REALM_GLOBAL or OBS_WEBSOCKET_DATA_REALM_PROFILE"`
	SlotName string `json:"slotName" jsonschema:"The name of the slot to retrieve data from"`
}

type setPersistentDataArgs struct {
	Realm     string `json:"realm" jsonschema:"The data realm to select. OBS_WEBSOCKET_DATA_REALM_GLOBAL or OBS_WEBSOCKET_DATA_REALM_PROFILE"`
	SlotName  string `json:"slotName" jsonschema:"The name of the slot to set data for"`
	SlotValue any    `json:"slotValue" jsonschema:"The value to apply to the slot"`
}

type sceneCollectionArgs struct {
	SceneCollectionName string `json:"sceneCollectionName" jsonschema:"Name of the scene collection"`
}

type profileArgs struct {
	ProfileName string `json:"profileName" jsonschema:"Name of the profile"`
}

type getProfileParameterArgs struct {
	ParameterCategory string `json:"parameterCategory" jsonschema:"Category of the parameter to get"`
	ParameterName     string `json:"parameterName" jsonschema:"Name of the parameter to get"`
}

type setProfileParameterArgs struct {
	ParameterCategory string  `json:"parameterCategory" jsonschema:"Category of the parameter to set"`
	ParameterName     string  `json:"parameterName" jsonschema:"Name of the parameter to set"`
	ParameterValue    *string `json:"parameterValue" jsonschema:"Value of the parameter to set. Use null to delete"`
}

type videoSettingsArgs struct {
	FpsNumerator   *float64 `json:"fpsNumerator,omitempty" jsonschema:"Numerator of the fractional FPS value"`
	FpsDenominator *float64 `json:"fpsDenominator,omitempty" jsonschema:"Denominator of the fractional FPS value"`
	BaseWidth      *float64 `json:"baseWidth,omitempty" jsonschema:"Width of the base (canvas) resolution in pixels"`
	BaseHeight     *float64 `json:"baseHeight,omitempty" jsonschema:"Height of the base (canvas) resolution in pixels"`
	OutputWidth    *float64 `json:"outputWidth,omitempty" jsonschema:"Width of the output resolution in pixels"`
	OutputHeight   *float64 `json:"outputHeight,omitempty" jsonschema:"Height of the output resolution in pixels"`
}

type streamServiceArgs struct {
	StreamServiceType     string         `json:"streamServiceType" jsonschema:"Type of stream service to apply. Example: rtmp_common or rtmp_custom"`
	StreamServiceSettings map[string]any `json:"streamServiceSettings" jsonschema:"Settings to apply to the service"`
}

type recordDirectoryArgs struct {
	RecordDirectory string `json:"recordDirectory" jsonschema:"Output directory"`
}

func checkRealm(realm string) error {
	return oneOf("realm", realm, realmGlobal, realmProfile)
}

func checkVideoSettings(in videoSettingsArgs) error {
	if in.FpsNumerator != nil {
		if err := atLeast("fpsNumerator", *in.FpsNumerator, 1); err != nil {
			return err
		}
	}
	if in.FpsDenominator != nil {
		if err := atLeast("fpsDenominator", *in.FpsDenominator, 1); err != nil {
			return err
		}
	}
	dims := []struct {
		field string
		v     *float64
	}{
		{"baseWidth", in.BaseWidth},
		{"baseHeight", in.BaseHeight},
		{"outputWidth", in.OutputWidth},
		{"outputHeight", in.OutputHeight},
	}
	for _, d := range dims {
		if d.v == nil {
			continue
		}
		if err := inRange(d.field, *d.v, 1, 4096); err != nil {
			return err
		}
	}
	if (in.FpsNumerator == nil) != (in.FpsDenominator == nil) {
		return errors.New("fpsNumerator and fpsDenominator must be set together")
	}
	return nil
}

func configTools() []tool {
	return []tool{
		custom("obs-get-persistent-data", "Gets the value of a slot from the selected persistent data realm", "GetPersistentData",
			validated(func(in getPersistentDataArgs) error { return checkRealm(in.Realm) })),
		custom("obs-set-persistent-data", "Sets the value of a slot from the selected persistent data realm", "SetPersistentData",
			validated(func(in setPersistentDataArgs) error { return checkRealm(in.Realm) })),
		simple("obs-get-scene-collection-list", "Gets an array of all scene collections", "GetSceneCollectionList"),
		direct[sceneCollectionArgs]("obs-set-current-scene-collection", "Switches to a scene collection", "SetCurrentSceneCollection"),
		direct[sceneCollectionArgs]("obs-create-scene-collection", "Creates a new scene collection, switching to it in the process", "CreateSceneCollection"),
		simple("obs-get-profile-list", "Gets an array of all profiles", "GetProfileList"),
		direct[profileArgs]("obs-set-current-profile", "Switches to a profile", "SetCurrentProfile"),
		direct[profileArgs]("obs-create-profile", "Creates a new profile, switching to it in the process", "CreateProfile"),
		direct[profileArgs]("obs-remove-profile", "Removes a profile. If the current profile is chosen, it will change to a different profile first", "RemoveProfile"),
		direct[getProfileParameterArgs]("obs-get-profile-parameter", "Gets a parameter from the current profile's configuration", "GetProfileParameter"),
		direct[setProfileParameterArgs]("obs-set-profile-parameter", "Sets the value of a parameter in the current profile's configuration", "SetProfileParameter"),
		simple("obs-get-video-settings", "Gets the current video settings", "GetVideoSettings"),
		custom("obs-set-video-settings", "Sets the current video settings", "SetVideoSettings", validated(checkVideoSettings)),
		simple("obs-get-stream-service-settings", "Gets the current stream service settings", "GetStreamServiceSettings"),
		direct[streamServiceArgs]("obs-set-stream-service-settings", "Sets the current stream service settings", "SetStreamServiceSettings"),
		simple("obs-get-record-directory", "Gets the current directory that the record output is set to", "GetRecordDirectory"),
		direct[recordDirectoryArgs]("obs-set-record-directory", "Sets the current directory that the record output writes files to", "SetRecordDirectory"),
	}
}
