package tools

import "errors"

type sourceActiveArgs struct {
	SourceName string `json:"sourceName,omitempty" jsonschema:"Name of the source to get the active state of"`
	SourceUUID string `json:"sourceUuid,omitempty" jsonschema:"UUID of the source to get the active state of"`
}

type screenshotArgs struct {
	SourceName              string   `json:"sourceName,omitempty" jsonschema:"Name of the source to take a screenshot of"`
	SourceUUID              string   `json:"sourceUuid,omitempty" jsonschema:"UUID of the source to take a screenshot of"`
	ImageFormat             string   `json:"imageFormat" jsonschema:"Image compression format to use"`
	ImageWidth              *float64 `json:"imageWidth,omitempty" jsonschema:"Width to scale the screenshot to"`
	ImageHeight             *float64 `json:"imageHeight,omitempty" jsonschema:"Height to scale the screenshot to"`
	ImageCompressionQuality *float64 `json:"imageCompressionQuality,omitempty" jsonschema:"Compression quality to use (0-100, -1 for default)"`
}

type saveScreenshotArgs struct {
	SourceName              string   `json:"sourceName,omitempty" jsonschema:"Name of the source to take a screenshot of"`
	SourceUUID              string   `json:"sourceUuid,omitempty" jsonschema:"UUID of the source to take a screenshot of"`
	ImageFormat             string   `json:"imageFormat" jsonschema:"Image compression format to use"`
	ImageFilePath           string   `json:"imageFilePath" jsonschema:"Path to save the screenshot file to"`
	ImageWidth              *float64 `json:"imageWidth,omitempty" jsonschema:"Width to scale the screenshot to"`
	ImageHeight             *float64 `json:"imageHeight,omitempty" jsonschema:"Height to scale the screenshot to"`
	ImageCompressionQuality *float64 `json:"imageCompressionQuality,omitempty" jsonschema:"Compression quality to use (0-100, -1 for default)"`
}

func checkScreenshot(name, uuid, format string, quality *float64) error {
	if err := nameOrUUID("source", name, uuid); err != nil {
		return err
	}
	if format == "" {
		return errors.New("imageFormat is required")
	}
	if quality != nil {
		return inRange("imageCompressionQuality", *quality, -1, 100)
	}
	return nil
}

func sourceTools() []tool {
	return []tool{
		custom("obs-get-source-active", "Gets the active and show state of a source", "GetSourceActive",
			validated(func(in sourceActiveArgs) error { return nameOrUUID("source", in.SourceName, in.SourceUUID) })),
		custom("obs-get-source-screenshot", "Gets a Base64-encoded screenshot of a source", "GetSourceScreenshot",
			validated(func(in screenshotArgs) error {
				return checkScreenshot(in.SourceName, in.SourceUUID, in.ImageFormat, in.ImageCompressionQuality)
			})),
		custom("obs-save-source-screenshot", "Saves a screenshot of a source to the filesystem", "SaveSourceScreenshot",
			validated(func(in saveScreenshotArgs) error {
				if in.ImageFilePath == "" {
					return errors.New("imageFilePath is required")
				}
				return checkScreenshot(in.SourceName, in.SourceUUID, in.ImageFormat, in.ImageCompressionQuality)
			})),
	}
}
