package tools

import "errors"

type broadcastEventArgs struct {
	EventData map[string]any `json:"eventData" jsonschema:"Data payload to emit to all receivers"`
}

type vendorRequestArgs struct {
	VendorName  string         `json:"vendorName" jsonschema:"Name of the vendor to use"`
	RequestType string         `json:"requestType" jsonschema:"The request type to call"`
	RequestData map[string]any `json:"requestData,omitempty" jsonschema:"Object containing appropriate request data"`
}

type hotkeyByNameArgs struct {
	HotkeyName  string `json:"hotkeyName" jsonschema:"Name of the hotkey to trigger"`
	ContextName string `json:"contextName,omitempty" jsonschema:"Name of context of the hotkey to trigger"`
}

type keyModifiers struct {
	Shift   *bool `json:"shift,omitempty" jsonschema:"Press Shift"`
	Control *bool `json:"control,omitempty" jsonschema:"Press CTRL"`
	Alt     *bool `json:"alt,omitempty" jsonschema:"Press ALT"`
	Command *bool `json:"command,omitempty" jsonschema:"Press CMD (Mac)"`
}

type hotkeyBySequenceArgs struct {
	KeyID        string        `json:"keyId,omitempty" jsonschema:"The OBS key ID to use"`
	KeyModifiers *keyModifiers `json:"keyModifiers,omitempty" jsonschema:"Object containing key modifiers to apply"`
}

type sleepArgs struct {
	SleepMillis *float64 `json:"sleepMillis,omitempty" jsonschema:"Number of milliseconds to sleep for"`
	SleepFrames *float64 `json:"sleepFrames,omitempty" jsonschema:"Number of frames to sleep for"`
}

func generalTools() []tool {
	return []tool{
		simple("obs-get-version", "Gets data about the current plugin and RPC version", "GetVersion"),
		simple("obs-get-stats", "Gets statistics about OBS, obs-websocket, and the current session", "GetStats"),
		direct[broadcastEventArgs]("obs-broadcast-custom-event", "Broadcasts a CustomEvent to all WebSocket clients", "BroadcastCustomEvent"),
		direct[vendorRequestArgs]("obs-call-vendor-request", "Call a request registered to a vendor", "CallVendorRequest"),
		simple("obs-get-hotkey-list", "Gets an array of all hotkey names in OBS", "GetHotkeyList"),
		direct[hotkeyByNameArgs]("obs-trigger-hotkey-by-name", "Triggers a hotkey using its name", "TriggerHotkeyByName"),
		direct[hotkeyBySequenceArgs]("obs-trigger-hotkey-by-key-sequence", "Triggers a hotkey using a sequence of keys", "TriggerHotkeyByKeySequence"),
		custom("obs-sleep", "Sleeps for a time duration or number of frames", "Sleep", validated(func(in sleepArgs) error {
			if in.SleepMillis == nil && in.SleepFrames == nil {
				return errors.New("either sleepMillis or sleepFrames must be provided")
			}
			return nil
		})),
	}
}
