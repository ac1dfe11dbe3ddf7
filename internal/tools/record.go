package tools

type recordChapterArgs struct {
	ChapterName string `json:"chapterName,omitempty" jsonschema:"Name of the new chapter"`
}

func recordTools() []tool {
	return []tool{
		simple("obs-get-record-status", "Gets the status of the record output", "GetRecordStatus"),
		simple("obs-toggle-record", "Toggles the status of the record output", "ToggleRecord"),
		simple("obs-start-record", "Starts the record output", "StartRecord"),
		simple("obs-stop-record", "Stops the record output", "StopRecord"),
		simple("obs-toggle-record-pause", "Toggles pause on the record output", "ToggleRecordPause"),
		simple("obs-pause-record", "Pauses the record output", "PauseRecord"),
		simple("obs-resume-record", "Resumes the record output", "ResumeRecord"),
		simple("obs-split-record-file", "Splits the current file being recorded into a new file", "SplitRecordFile"),
		direct[recordChapterArgs]("obs-create-record-chapter", "Adds a new chapter marker to the file currently being recorded", "CreateRecordChapter"),
	}
}
